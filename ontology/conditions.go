package ontology

// NoCond is the canonical term rendered when no condition atoms remain
// after recognition and merging. The same "any_condition" string is used
// as the lattice term and in rendered claims; in free text the registry
// recognizes it from "any condition" or "not mentioned".
const NoCond = "any_condition"

// Voting buckets consulted by the normalize package's condition vote, in
// fixed enumeration order.
const (
	BucketChildren    = "children"
	BucketRegion      = "region"
	BucketUserAction  = "user_action"
	BucketThirdParty  = "third_party"
	BucketSecurity    = "security"
	BucketRetention   = "retention"
)

// VotingBuckets is the fixed enumeration order used when tallying votes
// and breaking argmax ties.
var VotingBuckets = []string{
	BucketChildren, BucketRegion, BucketUserAction,
	BucketThirdParty, BucketSecurity, BucketRetention,
}

// DefaultConditionDefinitions returns the condition vocabulary: the
// root "any condition", the broad categories the voting buckets target,
// and the finer conditions that merge rules fold into them.
func DefaultConditionDefinitions() []Definition {
	return []Definition{
		{Name: NoCond, Patterns: []string{`\bany condition\b`, `\bnot mentioned\b`}},
		{Name: "specific_audience", Patterns: []string{`\bspecific audience\b`, `\btargeted audience\b`}},
		{Name: BucketChildren, Patterns: []string{`\bchildren\b`, `\bminors?\b`, `\bunder the age of\b`}},
		{Name: BucketRegion, Patterns: []string{`\bregion\b`, `\bjurisdiction\b`, `\beuropean union\b`, `\bcalifornia\b`, `\bgdpr\b`, `\bccpa\b`}},
		{Name: "consent", Patterns: []string{`\bconsent\b`, `\bopt[- ]in\b`}},
		{Name: "input", Patterns: []string{`\byou provide\b`, `\buser input\b`, `\byou submit\b`}},
		{Name: "specific_operation", Patterns: []string{`\bspecific operation\b`, `\bwhen you (?:register|sign up|checkout)\b`}},
		{Name: BucketUserAction, Patterns: []string{`\buser action\b`}},
		{Name: "third_party_service", Patterns: []string{`\bthird[- ]party service\b`}},
		{Name: "data_sharing", Patterns: []string{`\bdata sharing\b`, `\bshared with\b`}},
		{Name: BucketThirdParty, Patterns: []string{`\bthird party\b`}},
		{Name: BucketSecurity, Patterns: []string{`\bsecurity purpose\b`, `\bfraud prevention\b`, `\bprotect (?:against|our users)\b`}},
		{Name: BucketRetention, Patterns: []string{`\bretention period\b`, `\bas long as\b`, `\bfor as long as necessary\b`}},
		{Name: "advertising", Patterns: []string{`\badvertising purpose\b`}},
		{Name: "analytics", Patterns: []string{`\banalytics purpose\b`}},
		{Name: "personalization", Patterns: []string{`\bpersonalization\b`, `\bpersonalized experience\b`}},
		{Name: "product_improvement", Patterns: []string{`\bimprove our (?:product|service)s?\b`}},
		{Name: "research", Patterns: []string{`\bresearch purposes?\b`}},
		{Name: "fraud_detection", Patterns: []string{`\bfraud detection\b`}},
		{Name: "government", Patterns: []string{`\blegal (?:obligation|requirement)\b`, `\bcompelled by law\b`}},
		{Name: "prohibited_use", Patterns: []string{`\bprohibited use\b`}},
	}
}

// DefaultConditionRelations returns the is-a edges: specific_audience
// subordinates children and region; user_action subordinates consent,
// input and specific_operation; third_party subordinates
// third_party_service and data_sharing; every condition ultimately rolls
// up to the "any condition" root.
func DefaultConditionRelations() []Edge {
	edges := []Edge{
		{Source: BucketChildren, Target: "specific_audience"},
		{Source: BucketRegion, Target: "specific_audience"},
		{Source: "consent", Target: BucketUserAction},
		{Source: "input", Target: BucketUserAction},
		{Source: "specific_operation", Target: BucketUserAction},
		{Source: "third_party_service", Target: BucketThirdParty},
		{Source: "data_sharing", Target: BucketThirdParty},
	}
	roots := []string{
		"specific_audience", BucketUserAction, BucketThirdParty,
		BucketSecurity, BucketRetention, "advertising", "analytics",
		"personalization", "product_improvement", "research",
		"fraud_detection", "government", "prohibited_use",
	}
	for _, r := range roots {
		edges = append(edges, Edge{Source: r, Target: NoCond})
	}
	return edges
}
