package ontology

// NonPersonalCluster lists the data canonical names that form the
// "non-personal" cluster: relatedness between any of these and a personal
// datum is forced false regardless of what the lattice would otherwise
// say, and any two members of the cluster are forced related.
var NonPersonalCluster = map[string]bool{
	"non_personal_info": true,
	"aggregate":         true,
	"anonymous":         true,
	"pseudonymous":      true,
}

// DefaultDataDefinitions returns a representative subset of the data
// category vocabulary: personal information and its common specific
// subtypes, plus the non-personal cluster.
func DefaultDataDefinitions() []Definition {
	return []Definition{
		{Name: "personal_info", Patterns: []string{`\bpersonal (?:information|info|data)\b`, `\bpersonally identifiable information\b`, `\bpii\b`}},
		{Name: "email", Patterns: []string{`\be[- ]?mail address(?:es)?\b`, `\be[- ]?mail\b`}},
		{Name: "phone_number", Patterns: []string{`\bphone number\b`, `\btelephone number\b`, `\bmobile number\b`}},
		{Name: "location", Patterns: []string{`\blocation data\b`, `\bgeolocation\b`, `\bgps\b`}},
		{Name: "name", Patterns: []string{`\bfull name\b`, `\bfirst and last name\b`, `\byour name\b`}},
		{Name: "address", Patterns: []string{`\bmailing address\b`, `\bhome address\b`, `\bpostal address\b`}},
		{Name: "payment_info", Patterns: []string{`\bpayment (?:information|info|card)\b`, `\bcredit card\b`, `\bbank account\b`}},
		{Name: "device_id", Patterns: []string{`\bdevice identifier\b`, `\badvertising id\b`, `\bimei\b`}},
		{Name: "ip_address", Patterns: []string{`\bip address\b`}},
		{Name: "browsing_history", Patterns: []string{`\bbrowsing history\b`, `\bsearch history\b`}},
		{Name: "biometric", Patterns: []string{`\bbiometric data\b`, `\bfingerprint\b`, `\bfacial recognition\b`}},
		{Name: "health_info", Patterns: []string{`\bhealth information\b`, `\bmedical record\b`}},
		{Name: "cookies", Patterns: []string{`\bcookies?\b`, `\btracking pixel\b`}},
		{Name: "demographic", Patterns: []string{`\bdemographic information\b`, `\bage range\b`, `\bgender\b`}},
		{Name: "usage_data", Patterns: []string{`\busage data\b`, `\busage statistics\b`}},
		{Name: "non_personal_info", Patterns: []string{`\bnon[- ]personal (?:information|data)\b`}},
		{Name: "aggregate", Patterns: []string{`\baggregate(?:d)? (?:information|data)\b`, `\baggregated statistics\b`}},
		{Name: "anonymous", Patterns: []string{`\banonymous (?:information|data)\b`, `\banonymized data\b`}},
		{Name: "pseudonymous", Patterns: []string{`\bpseudonymous (?:information|data)\b`, `\bpseudonymized data\b`}},
	}
}

// DefaultDataRelations returns the is-a edges subordinating specific data
// categories to personal_info, and the non-personal cluster members to
// non_personal_info.
func DefaultDataRelations() []Edge {
	personal := []string{
		"email", "phone_number", "location", "name", "address",
		"payment_info", "device_id", "ip_address", "browsing_history",
		"biometric", "health_info", "cookies", "demographic", "usage_data",
	}
	edges := make([]Edge, 0, len(personal)+3)
	for _, m := range personal {
		edges = append(edges, Edge{Source: m, Target: "personal_info"})
	}
	edges = append(edges, Edge{Source: "aggregate", Target: "non_personal_info"})
	edges = append(edges, Edge{Source: "anonymous", Target: "non_personal_info"})
	edges = append(edges, Edge{Source: "pseudonymous", Target: "non_personal_info"})
	return edges
}
