// Package normalize turns a flat stream of evidence-claims into the
// deduplicated, condition-merged claim lists the rule engine consumes:
// one partition of "collect" claims, one of "not collect" claims.
package normalize

import (
	"sort"
	"strings"

	"github.com/bbiangul/policond/claim"
	"github.com/bbiangul/policond/negation"
	"github.com/bbiangul/policond/ontology"
)

// Normalizer holds the condition registry used to recognize and merge
// condition strings.
type Normalizer struct {
	Condition *ontology.Registry
}

// New constructs a Normalizer over the given condition registry.
func New(condition *ontology.Registry) *Normalizer {
	return &Normalizer{Condition: condition}
}

// Result is the normalizer's output: the two verb partitions after
// deduplication, negation filtering, and triple-merge voting.
type Result struct {
	Positives []claim.Claim
	Negatives []claim.Claim
}

// Normalize runs the full pipeline: partition by verb, dedupe within a
// (entity, verb, data, sentence) group, drop negative claims that fail
// the negation-cue check, then merge each (entity, verb, data) group's
// conditions by vote.
func (nz *Normalizer) Normalize(claims []claim.EvidenceClaim) Result {
	pos, neg := partition(claims)
	pos = nz.dedupeBySentence(pos)
	neg = nz.dedupeBySentence(neg)
	neg = filterNegation(neg)
	return Result{
		Positives: nz.mergeByTriple(pos),
		Negatives: nz.mergeByTriple(neg),
	}
}

// partition splits evidence-claims into collect/not-collect groups,
// dropping any claim whose verb does not normalize to either after
// trimming whitespace.
func partition(claims []claim.EvidenceClaim) (pos, neg []claim.EvidenceClaim) {
	for _, c := range claims {
		v := strings.ToLower(strings.TrimSpace(c.Verb))
		switch v {
		case claim.VerbCollect:
			pos = append(pos, c)
		case claim.VerbNotCollect:
			neg = append(neg, c)
		}
	}
	return pos, neg
}

type sentenceKey struct {
	entity, verb, data, sentence string
}

// dedupeBySentence groups evidence-claims by (entity, verb, data,
// sentence). A group of one is kept as-is. A larger group has its
// condition strings recognized, unioned, and rendered back through the
// bucket-merge renderer; one representative (the first member in
// encounter order) carries the merged condition and keeps its own
// sentence and context; the other members of the group are dropped.
func (nz *Normalizer) dedupeBySentence(claims []claim.EvidenceClaim) []claim.EvidenceClaim {
	order := make([]sentenceKey, 0)
	groups := make(map[sentenceKey][]claim.EvidenceClaim)
	for _, c := range claims {
		k := sentenceKey{entity: strings.ToLower(c.Entity), verb: c.Verb, data: strings.ToLower(c.Data), sentence: c.Sentence}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], c)
	}
	out := make([]claim.EvidenceClaim, 0, len(order))
	for _, k := range order {
		g := groups[k]
		rep := g[0]
		if len(g) >= 2 {
			union := make(map[string]bool)
			for _, m := range g {
				for atom := range nz.Condition.RecognizeAll(m.Condition) {
					union[atom] = true
				}
			}
			rep.Condition = renderBuckets(nz.Condition, union)
		}
		out = append(out, rep)
	}
	return out
}

// filterNegation drops a negative claim unless its verb string contains
// "not" and its window context contains at least one negation cue,
// removing hallucinated "not collect" extractions attached to
// affirmative sentences.
func filterNegation(claims []claim.EvidenceClaim) []claim.EvidenceClaim {
	out := make([]claim.EvidenceClaim, 0, len(claims))
	for _, c := range claims {
		if !strings.Contains(strings.ToLower(c.Verb), "not") {
			continue
		}
		if !negation.HasNegation(c.Context) {
			continue
		}
		out = append(out, c)
	}
	return out
}

type tripleKey struct {
	entity, verb, data string
}

// mergeByTriple groups evidence-claims by (entity, verb, data),
// irrespective of condition, and produces one merged Claim per group
// via the voted-condition algorithm.
func (nz *Normalizer) mergeByTriple(claims []claim.EvidenceClaim) []claim.Claim {
	order := make([]tripleKey, 0)
	groups := make(map[tripleKey][]claim.EvidenceClaim)
	for _, c := range claims {
		k := tripleKey{entity: strings.ToLower(c.Entity), verb: c.Verb, data: strings.ToLower(c.Data)}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], c)
	}
	out := make([]claim.Claim, 0, len(order))
	for _, k := range order {
		g := groups[k]
		out = append(out, nz.mergeGroup(k, g))
	}
	return out
}

func (nz *Normalizer) mergeGroup(k tripleKey, g []claim.EvidenceClaim) claim.Claim {
	merged := claim.Claim{Entity: g[0].Entity, Verb: k.verb, Data: g[0].Data}
	for _, m := range g {
		merged.Evidence = append(merged.Evidence, m.ToEvidence())
	}
	sort.Slice(merged.Evidence, func(i, j int) bool {
		return merged.Evidence[i].Sentence < merged.Evidence[j].Sentence
	})

	if len(g) == 1 {
		merged.Condition = g[0].Condition
		return merged
	}
	merged.Condition = nz.voteCondition(g)
	return merged
}

// voteCondition implements the merge rule's bucket-vote:
//
//   - valid = members whose condition does not recognize as "any
//     condition"
//   - if the "any condition" members make up more than 2/3 of the
//     group, the vote collapses to "any condition"
//     (majority-any override)
//   - otherwise each valid member's condition atoms are mapped to one of
//     the fixed voting buckets, and a bucket is emitted if its count
//     exceeds 1/3 of |valid|
//   - if no bucket qualifies, the highest-count bucket is emitted if its
//     count exceeds 1/4 of |valid| (ties broken by bucket enumeration
//     order)
//   - otherwise the vote resolves to "any condition"
func (nz *Normalizer) voteCondition(g []claim.EvidenceClaim) string {
	var valid []claim.EvidenceClaim
	for _, m := range g {
		atoms := nz.Condition.RecognizeAll(m.Condition)
		if len(atoms) == 1 && atoms[ontology.NoCond] {
			continue
		}
		valid = append(valid, m)
	}
	anyCount := len(g) - len(valid)
	if float64(anyCount) > (2.0/3.0)*float64(len(g)) {
		return ontology.NoCond
	}
	if len(valid) == 0 {
		return ontology.NoCond
	}

	bucketCounts := make(map[string]int)
	for _, m := range valid {
		touched := make(map[string]bool)
		for atom := range nz.Condition.RecognizeAll(m.Condition) {
			b := bucketFor(nz.Condition, atom)
			if b != "" {
				touched[b] = true
			}
		}
		for b := range touched {
			bucketCounts[b]++
		}
	}

	var emitted []string
	for _, b := range ontology.VotingBuckets {
		if float64(bucketCounts[b]) > (1.0/3.0)*float64(len(valid)) {
			emitted = append(emitted, b)
		}
	}
	if len(emitted) > 0 {
		return strings.Join(emitted, " and ")
	}

	best, bestCount := "", -1
	for _, b := range ontology.VotingBuckets {
		if bucketCounts[b] > bestCount {
			best, bestCount = b, bucketCounts[b]
		}
	}
	if best != "" && float64(bestCount) > (1.0/4.0)*float64(len(valid)) {
		return best
	}
	return ontology.NoCond
}

// bucketFor maps a recognized condition atom to one of the fixed voting
// buckets: the atom itself if it is a bucket, else the first bucket it
// is a lattice descendant of, in enumeration order.
func bucketFor(reg *ontology.Registry, atom string) string {
	for _, b := range ontology.VotingBuckets {
		if atom == b {
			return b
		}
	}
	for _, b := range ontology.VotingBuckets {
		if reg.IsLower(atom, b) {
			return b
		}
	}
	return ""
}

// renderBuckets renders a union of recognized condition atoms by
// mapping each to a bucket and joining the present buckets in
// enumeration order; an empty or all-"any condition" union renders as
// "any condition".
func renderBuckets(reg *ontology.Registry, atoms map[string]bool) string {
	present := make(map[string]bool)
	for atom := range atoms {
		if atom == ontology.NoCond {
			continue
		}
		if b := bucketFor(reg, atom); b != "" {
			present[b] = true
		}
	}
	var ordered []string
	for _, b := range ontology.VotingBuckets {
		if present[b] {
			ordered = append(ordered, b)
		}
	}
	if len(ordered) == 0 {
		return ontology.NoCond
	}
	return strings.Join(ordered, " and ")
}
