package resolver

import (
	"testing"

	"github.com/bbiangul/policond/claim"
	"github.com/bbiangul/policond/ontology"
	"github.com/bbiangul/policond/report"
)

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	entity := ontology.New("entity", nil)
	entity.Load(ontology.DefaultEntityDefinitions(), ontology.DefaultEntityRelations())
	data := ontology.New("data", nil)
	data.Load(ontology.DefaultDataDefinitions(), ontology.DefaultDataRelations())
	return New(entity, data)
}

func TestResolveUnspecifiedWithThirdPartyFlag(t *testing.T) {
	r := newResolver(t)
	rep := report.Report{
		Nodes: []report.NodeRecord{
			{
				Entity: "unspecified", Verb: claim.VerbCollect, Data: "email", Condition: ontology.NoCond,
				Evidence: []report.EvidenceRecord{{CandidateEntity: "{we,advertiser}"}},
			},
		},
	}
	out := r.Resolve(rep)
	if out.Nodes[0].Entity != thirdParty {
		t.Fatalf("Entity = %q, want %q", out.Nodes[0].Entity, thirdParty)
	}
}

func TestResolveUnspecifiedDefaultsToFirstParty(t *testing.T) {
	r := newResolver(t)
	rep := report.Report{
		Nodes: []report.NodeRecord{
			{Entity: "unspecified", Verb: claim.VerbCollect, Data: "phone_number", Condition: ontology.NoCond},
		},
	}
	out := r.Resolve(rep)
	if out.Nodes[0].Entity != firstParty {
		t.Fatalf("Entity = %q, want %q", out.Nodes[0].Entity, firstParty)
	}
}

func TestResolveUnspecifiedAlreadyClaimedByFirstParty(t *testing.T) {
	r := newResolver(t)
	rep := report.Report{
		Nodes: []report.NodeRecord{
			{Entity: "we", Verb: claim.VerbCollect, Data: "email", Condition: ontology.NoCond},
			{Entity: "unspecified", Verb: claim.VerbCollect, Data: "email", Condition: ontology.NoCond},
		},
	}
	out := r.Resolve(rep)
	var got string
	for _, n := range out.Nodes {
		if n.Data == "email" && n.Verb == claim.VerbCollect && n.Entity != firstParty {
			got = n.Entity
		}
	}
	if got != thirdParty {
		t.Fatalf("expected already-claimed-by-first-party data to resolve unspecified to third party, got %q", got)
	}
}

func TestInferMissingClaimsSynthesizesFirstPartyCandidate(t *testing.T) {
	r := newResolver(t)
	rep := report.Report{
		Nodes: []report.NodeRecord{
			{
				Entity: "we", Verb: claim.VerbCollect, Data: "email", Condition: ontology.NoCond,
				Evidence: []report.EvidenceRecord{{CandidateEntity: "{we}", CandidateData: "{email,phone_number}"}},
			},
		},
	}
	out := r.Resolve(rep)
	found := false
	for _, t2 := range out.Rule2 {
		if t2 == "(we, collect, phone_number)" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected synthesized first-party phone_number claim, got %v", out.Rule2)
	}
}
