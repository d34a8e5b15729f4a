// Package resolver runs the two post-analysis passes over an already
// produced report: rewriting claims whose entity was left unspecified
// by extraction, and synthesizing claims the extraction pipeline likely
// missed from the candidate term sets each claim's evidence recorded.
package resolver

import (
	"strings"

	"github.com/bbiangul/policond/claim"
	"github.com/bbiangul/policond/ontology"
	"github.com/bbiangul/policond/report"
)

const (
	firstParty = "we"
	thirdParty = "third_parties"
	android    = "android"
)

// Resolver holds the entity and data registries consulted while
// resolving unspecified entities and synthesizing missing claims.
type Resolver struct {
	Entity *ontology.Registry
	Data   *ontology.Registry
}

// New constructs a Resolver over the given entity and data registries.
func New(entity, data *ontology.Registry) *Resolver {
	return &Resolver{Entity: entity, Data: data}
}

func unbrace(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func rebuildTuple(n report.NodeRecord) string {
	if n.Condition != "" {
		return "(" + n.Entity + ", " + n.Verb + ", " + n.Data + ", " + n.Condition + ")"
	}
	return "(" + n.Entity + ", " + n.Verb + ", " + n.Data + ")"
}

// Resolve runs both post-analysis passes over rep and returns the
// rewritten report. The input report is not mutated.
func (r *Resolver) Resolve(rep report.Report) report.Report {
	out := rep
	out.Nodes = append([]report.NodeRecord(nil), rep.Nodes...)

	firstPartyCollected := make(map[string]bool)
	for _, n := range rep.Nodes {
		if n.Entity == firstParty && n.Verb == claim.VerbCollect {
			firstPartyCollected[n.Data] = true
		}
	}

	thirdPartyAliases := ontology.ThirdPartyAliases(entityDefinitionsFrom(r.Entity))

	var rule1 []string
	kept := make([]report.NodeRecord, 0, len(out.Nodes))
	for _, n := range out.Nodes {
		if !strings.Contains(strings.ToLower(n.Entity), "unspecified") {
			kept = append(kept, n)
			continue
		}
		resolved := r.resolveUnspecified(n, thirdPartyAliases, firstPartyCollected)
		resolved.Tuple = rebuildTuple(resolved)
		rule1 = append(rule1, resolved.Tuple)
		kept = append(kept, resolved)
	}
	out.Nodes = kept
	out.Rule1 = rule1

	out.Rule2 = r.inferMissingClaims(out.Nodes)
	return out
}

func (r *Resolver) resolveUnspecified(n report.NodeRecord, thirdPartyAliases []string, firstPartyCollected map[string]bool) report.NodeRecord {
	hasThirdPartyFlag := false
	for _, ev := range n.Evidence {
		candidates := unbrace(ev.CandidateEntity)
		for _, c := range candidates {
			cl := strings.ToLower(c)
			for _, alias := range thirdPartyAliases {
				if strings.Contains(cl, alias) {
					hasThirdPartyFlag = true
					break
				}
			}
			if hasThirdPartyFlag {
				break
			}
		}
		if hasThirdPartyFlag {
			break
		}
	}

	switch {
	case hasThirdPartyFlag:
		n.Entity = thirdParty
	case firstPartyCollected[n.Data]:
		n.Entity = thirdParty
	default:
		n.Entity = firstParty
	}
	return n
}

// inferMissingClaims scans the candidate entity/data sets recorded on
// every non-unspecified "collect" node's evidence, plus any additional
// data terms recognized in the evidence context, and synthesizes a
// claim for every (entity, data) pair not already present, applying the
// not-collect exclusion per entity class.
func (r *Resolver) inferMissingClaims(nodes []report.NodeRecord) []string {
	existing := make(map[string]bool)
	firstPartyNotCollect := make(map[string]bool)
	thirdPartyNotCollect := make(map[string]bool)
	for _, n := range nodes {
		existing[n.Entity+"\x00"+n.Data] = true
		if n.Verb == claim.VerbNotCollect {
			if n.Entity == firstParty {
				firstPartyNotCollect[n.Data] = true
			} else {
				thirdPartyNotCollect[n.Data] = true
			}
		}
	}

	var synthesized []string
	seen := make(map[string]bool)
	for _, n := range nodes {
		if strings.Contains(strings.ToLower(n.Entity), "unspecified") || n.Verb != claim.VerbCollect {
			continue
		}
		for _, ev := range n.Evidence {
			entities := unbrace(ev.CandidateEntity)
			dataTerms := unbrace(ev.CandidateData)
			for atom := range r.Data.RecognizeAll(ev.Context) {
				dataTerms = append(dataTerms, atom)
			}
			for _, e := range entities {
				for _, d := range dataTerms {
					claimTuple := r.synthesizeClaim(e, d, existing, firstPartyNotCollect, thirdPartyNotCollect)
					if claimTuple == "" {
						continue
					}
					if seen[claimTuple] {
						continue
					}
					seen[claimTuple] = true
					synthesized = append(synthesized, claimTuple)
				}
			}
		}
	}
	return synthesized
}

func (r *Resolver) synthesizeClaim(entity, data string, existing, firstPartyNotCollect, thirdPartyNotCollect map[string]bool) string {
	entity = strings.TrimSpace(entity)
	data = strings.TrimSpace(data)
	if data == "" {
		return ""
	}

	normalizedEntity := strings.ToLower(entity)
	isFirstParty := entity == "" || normalizedEntity == firstParty || normalizedEntity == android
	effectiveEntity := entity
	if isFirstParty {
		effectiveEntity = firstParty
	}

	if existing[effectiveEntity+"\x00"+data] {
		return ""
	}

	if isFirstParty {
		if firstPartyNotCollect[data] {
			return ""
		}
		return "(" + firstParty + ", " + claim.VerbCollect + ", " + data + ")"
	}

	if thirdPartyNotCollect[data] {
		return ""
	}
	return "(" + thirdParty + ", " + claim.VerbCollect + ", " + data + ")"
}

// entityDefinitionsFrom reconstructs the definition list a registry's
// Terms() names, for callers (like ThirdPartyAliases) that only need
// the name field.
func entityDefinitionsFrom(reg *ontology.Registry) []ontology.Definition {
	terms := reg.Terms()
	defs := make([]ontology.Definition, 0, len(terms))
	for _, t := range terms {
		defs = append(defs, ontology.Definition{Name: t})
	}
	return defs
}
