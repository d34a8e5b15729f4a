package ontology

import "testing"

func newConditionRegistry(t *testing.T) *Registry {
	t.Helper()
	r := New("condition", nil)
	r.Load(DefaultConditionDefinitions(), DefaultConditionRelations())
	return r
}

func TestConditionClosureIsHigherAnyCondition(t *testing.T) {
	r := newConditionRegistry(t)
	if !r.IsHigher(NoCond, BucketChildren) {
		t.Fatalf("expected any_condition to be higher than children")
	}
	if !r.IsLower(BucketChildren, NoCond) {
		t.Fatalf("expected children to be lower than any_condition")
	}
}

func TestConditionIsRelatedSymmetric(t *testing.T) {
	r := newConditionRegistry(t)
	for _, pair := range [][2]string{
		{BucketChildren, "specific_audience"},
		{"consent", BucketUserAction},
		{BucketThirdParty, NoCond},
	} {
		a, b := pair[0], pair[1]
		if r.IsRelated(a, b) != r.IsRelated(b, a) {
			t.Fatalf("is_related not symmetric for %s, %s", a, b)
		}
		if !r.IsRelated(a, b) {
			t.Fatalf("expected %s related to %s", a, b)
		}
	}
}

func TestConditionUnrelatedTerms(t *testing.T) {
	r := newConditionRegistry(t)
	if r.IsRelated(BucketChildren, BucketSecurity) {
		t.Fatalf("children and security should not be related")
	}
}

func TestRecognizeLowerDropsAncestor(t *testing.T) {
	r := newConditionRegistry(t)
	recognized := r.RecognizeLower("this applies to children under the age of 13 and any condition")
	if recognized[NoCond] {
		t.Fatalf("any_condition should be dropped when children is also recognized: %v", recognized)
	}
	if !recognized[BucketChildren] {
		t.Fatalf("expected children to be recognized: %v", recognized)
	}
}

func TestRecognizeAllSupersetOfRecognizeLower(t *testing.T) {
	r := newConditionRegistry(t)
	text := "we only do this with your consent and for security purpose"
	all := r.RecognizeAll(text)
	lower := r.RecognizeLower(text)
	for term := range lower {
		if !all[term] {
			t.Fatalf("recognize_lower produced term %q not in recognize_all", term)
		}
	}
}

func TestDataNonPersonalClusterIsTagged(t *testing.T) {
	for _, name := range []string{"non_personal_info", "aggregate", "anonymous", "pseudonymous"} {
		if !NonPersonalCluster[name] {
			t.Fatalf("expected %s to be tagged non-personal", name)
		}
	}
}

func TestEntityClosure(t *testing.T) {
	r := New("entity", nil)
	r.Load(DefaultEntityDefinitions(), DefaultEntityRelations())
	if !r.IsLower("advertiser", "third_parties") {
		t.Fatalf("expected advertiser to be lower than third_parties")
	}
	if !r.IsLower("bank", "third_parties") {
		t.Fatalf("expected bank to transitively reach third_parties via financial_service")
	}
	if r.IsRelated("we", "third_parties") {
		t.Fatalf("we and third_parties should not be related")
	}
}
