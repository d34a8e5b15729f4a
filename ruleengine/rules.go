package ruleengine

import "github.com/bbiangul/policond/claim"

// entityPos and dataPos classify a pair's relative entity/data
// specificity once relatedness has already been confirmed by the
// short-circuit filters.
type entityPos int

const (
	entitySame entityPos = iota
	entityHigher
	entityLower
)

type dataPos int

const (
	dataSame dataPos = iota
	dataHigher
	dataLower
)

func classifyEntity(l Lattices, p, n string) entityPos {
	switch {
	case l.EntityHigher(p, n):
		return entityHigher
	case l.EntityLower(p, n):
		return entityLower
	default:
		return entitySame
	}
}

func classifyData(l Lattices, p, n string) dataPos {
	switch {
	case l.DataHigher(p, n):
		return dataHigher
	case l.DataLower(p, n):
		return dataLower
	default:
		return dataSame
	}
}

// noConditionRule dispatches a pair whose conditions are string-equal
// after merging. Of the nine entity x data combinations, five count as
// contradictions (c1-c5) and four as narrowings (n1-n4): a positive
// claim that is entity-same-or-narrower but data-same-or-narrower than
// the negative directly contradicts it; a positive claim whose data is
// broader than the negative's, with the negative entity-same-or-lower,
// only narrows the negative's scope.
func noConditionRule(l Lattices, p, n claim.Claim) (contradictions, narrowings []Pair) {
	ep := classifyEntity(l, p.Entity, n.Entity)
	dp := classifyData(l, p.Data, n.Data)
	pair := Pair{Positive: p, Negative: n}

	switch {
	case ep == entitySame && dp == dataSame: // c1
		contradictions = append(contradictions, pair)
	case ep == entitySame && dp == dataHigher: // n1
		narrowings = append(narrowings, pair)
	case ep == entitySame && dp == dataLower: // c2
		contradictions = append(contradictions, pair)
	case ep == entityLower && dp == dataSame: // c3
		contradictions = append(contradictions, pair)
	case ep == entityLower && dp == dataHigher: // n2
		narrowings = append(narrowings, pair)
	case ep == entityLower && dp == dataLower: // c4
		contradictions = append(contradictions, pair)
	case ep == entityHigher && dp == dataSame: // n3
		narrowings = append(narrowings, pair)
	case ep == entityHigher && dp == dataHigher: // n4
		narrowings = append(narrowings, pair)
	case ep == entityHigher && dp == dataLower: // c5
		contradictions = append(contradictions, pair)
	}
	return contradictions, narrowings
}

// lowerConditionRule dispatches a pair where the positive claim's
// condition is strictly narrower than the negative's. The negative's
// broader "we do not collect" wins regardless of entity/data
// specificity: exactly one of the nine guarded cells (c1-c9) matches
// the pair's classified entity/data position, and that cell always
// contradicts, since the dispatcher already confirmed
// condition_lower(p.condition, n.condition).
func lowerConditionRule(l Lattices, p, n claim.Claim) []Pair {
	ep := classifyEntity(l, p.Entity, n.Entity)
	dp := classifyData(l, p.Data, n.Data)
	pair := Pair{Positive: p, Negative: n}

	switch {
	case ep == entitySame && dp == dataSame, // c1
		ep == entityHigher && dp == dataSame, // c2
		ep == entityLower && dp == dataSame, // c3
		ep == entitySame && dp == dataHigher, // c4
		ep == entityHigher && dp == dataHigher, // c5
		ep == entityLower && dp == dataHigher, // c6
		ep == entitySame && dp == dataLower, // c7
		ep == entityHigher && dp == dataLower, // c8
		ep == entityLower && dp == dataLower: // c9
		return []Pair{pair}
	}
	return nil
}

// higherConditionRule dispatches a pair where the positive claim's
// condition is strictly broader than the negative's. The positive
// over-claims relative to the narrower negative but does not strictly
// contradict it: exactly one of the nine guarded cells (n1-n9) matches
// the pair's classified entity/data position, and that cell always
// narrows, since the dispatcher already confirmed
// condition_higher(p.condition, n.condition).
func higherConditionRule(l Lattices, p, n claim.Claim) []Pair {
	ep := classifyEntity(l, p.Entity, n.Entity)
	dp := classifyData(l, p.Data, n.Data)
	pair := Pair{Positive: p, Negative: n}

	switch {
	case ep == entitySame && dp == dataSame, // n1
		ep == entityHigher && dp == dataSame, // n2
		ep == entityLower && dp == dataSame, // n3
		ep == entitySame && dp == dataHigher, // n4
		ep == entityHigher && dp == dataHigher, // n5
		ep == entityLower && dp == dataHigher, // n6
		ep == entitySame && dp == dataLower, // n7
		ep == entityHigher && dp == dataLower, // n8
		ep == entityLower && dp == dataLower: // n9
		return []Pair{pair}
	}
	return nil
}
