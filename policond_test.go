package policond

import (
	"testing"

	"github.com/bbiangul/policond/claim"
)

func TestAnalyzeDetectsSameScopeContradiction(t *testing.T) {
	e := New(nil)
	claims := []claim.EvidenceClaim{
		{
			Entity: "we", Verb: claim.VerbCollect, Data: "email", Condition: "any_condition",
			Sentence: "We collect your email.", Context: "We collect your email.",
		},
		{
			Entity: "we", Verb: claim.VerbNotCollect, Data: "email", Condition: "any_condition",
			Sentence: "We do not collect your email.", Context: "We do not collect your email.",
		},
	}
	rep := e.Analyze(claims, "test-policy", 100, 2)
	if rep.BasicInfo.NumContradictions == 0 {
		t.Fatalf("expected at least one contradiction, got report: %+v", rep)
	}
}

func TestPostProcessResolvesUnspecifiedEntity(t *testing.T) {
	e := New(nil)
	claims := []claim.EvidenceClaim{
		{
			Entity: "unspecified", Verb: claim.VerbCollect, Data: "email", Condition: "any_condition",
			Sentence: "Your email may be collected by advertisers.",
			Context:  "Your email may be collected by advertisers.",
			CandidateEntities: []string{"we", "advertiser"},
		},
	}
	rep := e.Analyze(claims, "test-policy", 50, 1)
	rep = e.PostProcess(rep)
	if len(rep.Nodes) != 1 {
		t.Fatalf("expected one resolved node, got %d", len(rep.Nodes))
	}
	if rep.Nodes[0].Entity == "unspecified" {
		t.Fatalf("expected unspecified entity to be resolved")
	}
}
