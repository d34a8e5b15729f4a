// Package claim defines the Claim record and its evidence-carrying
// variant: the normalized shape a collection-behavior statement takes
// once extracted from policy text, independent of how it was produced.
package claim

import "strings"

// Verb values a Claim's Verb field is normalized to.
const (
	VerbCollect    = "collect"
	VerbNotCollect = "not collect"
)

// Claim asserts that an entity does or does not collect a category of
// data under some condition.
type Claim struct {
	Entity    string
	Verb      string
	Data      string
	Condition string
	Text      string
	Evidence  []Evidence
}

// Evidence is the sentence, window context, and candidate-term sets that
// justify one occurrence of a claim.
type Evidence struct {
	Sentence           string
	Context            string
	CandidateEntity    string
	CandidateVerb      string
	CandidateData      string
	CandidateCondition string
}

// SentenceIntegrity reports whether the evidence's context is identical
// to its sentence, i.e. the sentence was extracted without surrounding
// window padding.
func (e Evidence) SentenceIntegrity() bool {
	return e.Sentence == e.Context
}

// EvidenceClaim is a single (pre-merge) extraction record: one claim as
// read off one tuple match, still carrying the raw candidate sets offered
// to the upstream language model and the sentence/context it came from.
type EvidenceClaim struct {
	Entity    string
	Verb      string
	Data      string
	Condition string

	CandidateEntities  []string
	CandidateVerb      string
	CandidateData      []string
	CandidateConditions []string

	Sentence string
	Context  string
}

// PrettyPrint renders a claim as "(entity, verb, data, condition[, text])",
// matching the source CollectionNode.pretty_print format exactly.
func (c Claim) PrettyPrint() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(c.Entity)
	b.WriteString(", ")
	b.WriteString(c.Verb)
	b.WriteString(", ")
	b.WriteString(c.Data)
	b.WriteString(", ")
	b.WriteString(c.Condition)
	if c.Text != "" {
		b.WriteString(", ")
		b.WriteString(c.Text)
	}
	b.WriteByte(')')
	return b.String()
}

// braced renders a string slice as "{a,b,c}", matching the source's
// candidateEntityStr = "{" + ",".join(...) + "}" convention.
func braced(items []string) string {
	return "{" + strings.Join(items, ",") + "}"
}

// ToEvidence converts an EvidenceClaim's candidate sets into the braced
// string form stored on a merged Claim's Evidence list.
func (ec EvidenceClaim) ToEvidence() Evidence {
	return Evidence{
		Sentence:           ec.Sentence,
		Context:            ec.Context,
		CandidateEntity:    braced(ec.CandidateEntities),
		CandidateVerb:      ec.CandidateVerb,
		CandidateData:      braced(ec.CandidateData),
		CandidateCondition: braced(ec.CandidateConditions),
	}
}

// NormalizeVerb coerces a raw verb string to VerbCollect or
// VerbNotCollect: any occurrence of "no" or "not" yields VerbNotCollect,
// else VerbCollect.
func NormalizeVerb(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if strings.Contains(lower, "no") || strings.Contains(lower, "not") {
		return VerbNotCollect
	}
	return VerbCollect
}
