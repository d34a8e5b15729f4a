package ruleengine

import (
	"testing"

	"github.com/bbiangul/policond/claim"
	"github.com/bbiangul/policond/ontology"
)

func newLattices() Lattices {
	entity := ontology.New("entity", nil)
	entity.Load(ontology.DefaultEntityDefinitions(), ontology.DefaultEntityRelations())
	data := ontology.New("data", nil)
	data.Load(ontology.DefaultDataDefinitions(), ontology.DefaultDataRelations())
	cond := ontology.New("condition", nil)
	cond.Load(ontology.DefaultConditionDefinitions(), ontology.DefaultConditionRelations())
	return Lattices{Entity: entity, Data: data, Condition: cond}
}

func TestNoConditionSameEntitySameDataIsContradiction(t *testing.T) {
	l := newLattices()
	e := New(l, nil)
	p := claim.Claim{Entity: "we", Verb: claim.VerbCollect, Data: "email", Condition: ontology.NoCond}
	n := claim.Claim{Entity: "we", Verb: claim.VerbNotCollect, Data: "email", Condition: ontology.NoCond}
	res := e.Run([]claim.Claim{p}, []claim.Claim{n})
	if len(res.Contradictions) != 1 {
		t.Fatalf("expected 1 contradiction, got %d", len(res.Contradictions))
	}
	if len(res.Narrowings) != 0 {
		t.Fatalf("expected 0 narrowings, got %d", len(res.Narrowings))
	}
}

func TestUnrelatedEntitiesShortCircuit(t *testing.T) {
	l := newLattices()
	e := New(l, nil)
	p := claim.Claim{Entity: "we", Verb: claim.VerbCollect, Data: "email", Condition: ontology.NoCond}
	n := claim.Claim{Entity: "third_parties", Verb: claim.VerbNotCollect, Data: "email", Condition: ontology.NoCond}
	res := e.Run([]claim.Claim{p}, []claim.Claim{n})
	if len(res.Contradictions) != 0 || len(res.Narrowings) != 0 {
		t.Fatalf("expected no pairs for unrelated entities, got %+v", res)
	}
}

func TestLowerConditionBranchYieldsContradictions(t *testing.T) {
	l := newLattices()
	e := New(l, nil)
	p := claim.Claim{Entity: "we", Verb: claim.VerbCollect, Data: "email", Condition: "children"}
	n := claim.Claim{Entity: "we", Verb: claim.VerbNotCollect, Data: "email", Condition: ontology.NoCond}
	res := e.Run([]claim.Claim{p}, []claim.Claim{n})
	if len(res.Contradictions) != 1 {
		t.Fatalf("expected exactly 1 contradiction when positive's condition is narrower than negative's, got %d", len(res.Contradictions))
	}
	if len(res.Narrowings) != 0 {
		t.Fatalf("expected no narrowings in lower-condition branch, got %d", len(res.Narrowings))
	}
}

func TestHigherConditionBranchYieldsNarrowings(t *testing.T) {
	l := newLattices()
	e := New(l, nil)
	p := claim.Claim{Entity: "we", Verb: claim.VerbCollect, Data: "email", Condition: ontology.NoCond}
	n := claim.Claim{Entity: "we", Verb: claim.VerbNotCollect, Data: "email", Condition: "children"}
	res := e.Run([]claim.Claim{p}, []claim.Claim{n})
	if len(res.Narrowings) != 1 {
		t.Fatalf("expected exactly 1 narrowing when positive's condition is broader than negative's, got %d", len(res.Narrowings))
	}
	if len(res.Contradictions) != 0 {
		t.Fatalf("expected no contradictions in higher-condition branch, got %d", len(res.Contradictions))
	}
}

func TestNoConditionDataHigherIsNarrowing(t *testing.T) {
	l := newLattices()
	e := New(l, nil)
	p := claim.Claim{Entity: "we", Verb: claim.VerbCollect, Data: "personal information", Condition: ontology.NoCond}
	n := claim.Claim{Entity: "we", Verb: claim.VerbNotCollect, Data: "email", Condition: ontology.NoCond}
	res := e.Run([]claim.Claim{p}, []claim.Claim{n})
	if len(res.Narrowings) != 1 {
		t.Fatalf("expected exactly 1 narrowing (n1: same entity, positive data broader), got %d", len(res.Narrowings))
	}
	if len(res.Contradictions) != 0 {
		t.Fatalf("expected no contradictions, got %d", len(res.Contradictions))
	}
}

func TestNonPersonalClusterForcesDataUnrelated(t *testing.T) {
	l := newLattices()
	if l.DataRelated("personal information", "aggregated data") {
		t.Fatalf("personal_info and aggregate should not be related")
	}
	if !l.DataRelated("aggregated data", "anonymized data") {
		t.Fatalf("two non-personal cluster members should be related")
	}
}

func TestPairString(t *testing.T) {
	p := Pair{
		Positive: claim.Claim{Entity: "we", Verb: claim.VerbCollect, Data: "email", Condition: ontology.NoCond},
		Negative: claim.Claim{Entity: "we", Verb: claim.VerbNotCollect, Data: "email", Condition: ontology.NoCond},
	}
	want := "(we, collect, email, any_condition) vs (we, not collect, email, any_condition)"
	if got := p.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
