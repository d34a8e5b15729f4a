package ontology

// DefaultEntityDefinitions returns a representative subset of the actor
// vocabulary a privacy policy names as a data collector: the first-party
// ("we"), the unspecified placeholder the language-model pipeline emits
// when a sentence names no actor, and the most common third-party
// categories and named platforms.
func DefaultEntityDefinitions() []Definition {
	return []Definition{
		{Name: "we", Patterns: []string{`\bwe\b`, `\bour\b`, `\bus\b`, `\bcompany\b`}},
		{Name: "unspecified", Patterns: []string{`\bunspecified entity\b`, `\bunspecified\b`}},
		{Name: "third_parties", Patterns: []string{`\bthird part(?:y|ies)\b`, `\bpartners?\b`}},
		{Name: "advertiser", Patterns: []string{`\badvertisers?\b`, `\bad network\b`}},
		{Name: "analytics", Patterns: []string{`\banalytics provider\b`, `\banalytics compan(?:y|ies)\b`}},
		{Name: "social_media", Patterns: []string{`\bsocial media\b`, `\bsocial network\b`}},
		{Name: "content_provider", Patterns: []string{`\bcontent provider\b`}},
		{Name: "auth_provider", Patterns: []string{`\bauthentication provider\b`, `\bidentity provider\b`}},
		{Name: "email_provider", Patterns: []string{`\bemail provider\b`, `\bemail service\b`}},
		{Name: "marketer", Patterns: []string{`\bmarketer\b`, `\bmarketing partner\b`}},
		{Name: "service_company", Patterns: []string{`\bservice provider\b`}},
		{Name: "financial_service", Patterns: []string{`\bfinancial service\b`, `\bpayment processor\b`}},
		{Name: "isp", Patterns: []string{`\binternet service provider\b`, `\bisp\b`}},
		{Name: "bank", Patterns: []string{`\bbank\b`}},
		{Name: "regulatory", Patterns: []string{`\bregulator(?:y|s)\b`, `\blaw enforcement\b`}},
		{Name: "government", Patterns: []string{`\bgovernment\b`, `\bgovernmental authority\b`}},
		{Name: "google", Patterns: []string{`\bgoogle\b`}},
		{Name: "facebook", Patterns: []string{`\bfacebook\b`}},
		{Name: "meta", Patterns: []string{`\bmeta platforms\b`, `\bmeta\b`}},
		{Name: "amazon", Patterns: []string{`\bamazon\b`}},
		{Name: "apple", Patterns: []string{`\bapple\b`}},
		{Name: "microsoft", Patterns: []string{`\bmicrosoft\b`}},
		{Name: "vendor", Patterns: []string{`\bvendors?\b`, `\bsuppliers?\b`}},
		{Name: "android", Patterns: []string{`\bandroid\b`}},
	}
}

// DefaultEntityRelations returns the is-a edges relating named
// third-party entities to the broad "third_parties" category.
func DefaultEntityRelations() []Edge {
	members := []string{
		"advertiser", "analytics", "social_media", "content_provider",
		"auth_provider", "email_provider", "marketer", "service_company",
		"financial_service", "isp", "regulatory", "government",
		"google", "facebook", "meta", "amazon", "apple", "microsoft", "vendor",
	}
	edges := make([]Edge, 0, len(members)+2)
	for _, m := range members {
		edges = append(edges, Edge{Source: m, Target: "third_parties"})
	}
	edges = append(edges, Edge{Source: "bank", Target: "financial_service"})
	edges = append(edges, Edge{Source: "android", Target: "google"})
	return edges
}

// ThirdPartyAliases returns every entity name except the first-party and
// unspecified placeholders, mirroring the source's third_party_alias list
// used by the resolver to detect a third-party flag in candidate evidence.
func ThirdPartyAliases(defs []Definition) []string {
	var out []string
	for _, d := range defs {
		if d.Name == "we" || d.Name == "unspecified" {
			continue
		}
		out = append(out, d.Name)
	}
	return out
}
