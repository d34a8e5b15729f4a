// Package ruleengine implements the contradiction/narrowing detection
// rules: relational predicates over entity, data, and condition strings,
// and the 27 cross-product rules that classify a (positive, negative)
// claim pair once those predicates confirm the pair is comparable.
package ruleengine

import (
	"strings"

	"github.com/bbiangul/policond/negation"
	"github.com/bbiangul/policond/ontology"
)

// Lattices bundles the three term registries the predicates consult.
type Lattices struct {
	Entity    *ontology.Registry
	Data      *ontology.Registry
	Condition *ontology.Registry
}

func firstTerm(reg *ontology.Registry, s string) (string, bool) {
	return reg.RecognizeFirst(s)
}

// EntityRelated, EntityLower and EntityHigher compare entity strings by
// their first recognized lattice term.
func (l Lattices) EntityRelated(a, b string) bool {
	ta, oka := firstTerm(l.Entity, a)
	tb, okb := firstTerm(l.Entity, b)
	if !oka || !okb {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	return l.Entity.IsRelated(ta, tb)
}

func (l Lattices) EntityLower(a, b string) bool {
	ta, oka := firstTerm(l.Entity, a)
	tb, okb := firstTerm(l.Entity, b)
	if !oka || !okb {
		return false
	}
	return l.Entity.IsLower(ta, tb)
}

func (l Lattices) EntityHigher(a, b string) bool {
	return l.EntityLower(b, a)
}

// dataComplement returns the non-personal complement term name when s
// reads as a negated personal-data reference ("not personal info"),
// mirroring the source's treatment of negated data strings as
// referring to the non-personal cluster instead of their literal term.
func dataComplement(reg *ontology.Registry, s string) (string, bool) {
	if !negation.HasNegation(s) {
		return "", false
	}
	term, ok := firstTerm(reg, s)
	if !ok {
		return "", false
	}
	if term == "personal_info" || reg.IsLower(term, "personal_info") {
		return "non_personal_info", true
	}
	return "", false
}

// dataTerm resolves the effective lattice term for a data string,
// applying the negated-data complement rule before falling back to
// ordinary recognition.
func dataTerm(reg *ontology.Registry, s string) (string, bool) {
	if t, ok := dataComplement(reg, s); ok {
		return t, true
	}
	return firstTerm(reg, s)
}

// DataRelated, DataLower and DataHigher compare data strings, forcing
// the non-personal cluster (aggregate, anonymous, pseudonymous,
// non_personal_info) to be mutually related and unrelated to any
// personal-data term regardless of what the lattice alone would say.
func (l Lattices) DataRelated(a, b string) bool {
	ta, oka := dataTerm(l.Data, a)
	tb, okb := dataTerm(l.Data, b)
	if !oka || !okb {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	if ontology.NonPersonalCluster[ta] != ontology.NonPersonalCluster[tb] {
		return false
	}
	if ontology.NonPersonalCluster[ta] && ontology.NonPersonalCluster[tb] {
		return true
	}
	return l.Data.IsRelated(ta, tb)
}

func (l Lattices) DataLower(a, b string) bool {
	ta, oka := dataTerm(l.Data, a)
	tb, okb := dataTerm(l.Data, b)
	if !oka || !okb {
		return false
	}
	if ontology.NonPersonalCluster[ta] || ontology.NonPersonalCluster[tb] {
		return false
	}
	return l.Data.IsLower(ta, tb)
}

func (l Lattices) DataHigher(a, b string) bool {
	return l.DataLower(b, a)
}

// splitConditionAtoms splits a composite condition string on " and "
// (the word surrounded by spaces), so words that merely contain "and"
// (e.g. "brand") stay whole. Each resulting atom is trimmed and
// recognized to its lattice term via the condition registry;
// "any_condition" is dropped whenever another atom is also recognized.
func splitConditionAtoms(reg *ontology.Registry, s string) []string {
	parts := strings.Split(s, " and ")
	seen := make(map[string]bool)
	var atoms []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		term, ok := reg.RecognizeFirst(p)
		if !ok {
			term = strings.ToLower(p)
		}
		if !seen[term] {
			seen[term] = true
			atoms = append(atoms, term)
		}
	}
	if len(atoms) > 1 {
		filtered := atoms[:0]
		for _, a := range atoms {
			if a != ontology.NoCond {
				filtered = append(filtered, a)
			}
		}
		if len(filtered) > 0 {
			atoms = filtered
		}
	}
	if len(atoms) == 0 {
		atoms = []string{ontology.NoCond}
	}
	return atoms
}

// ConditionRelated reports whether two condition strings are comparable:
// if both decompose to a single atom, delegate to the lattice's
// is_related; otherwise every atom of the smaller set must be lattice-
// related to some atom of the larger set.
func (l Lattices) ConditionRelated(a, b string) bool {
	atomsA := splitConditionAtoms(l.Condition, a)
	atomsB := splitConditionAtoms(l.Condition, b)
	if len(atomsA) == 1 && len(atomsB) == 1 {
		return l.Condition.IsRelated(atomsA[0], atomsB[0])
	}
	more, less := atomsA, atomsB
	if len(less) > len(more) {
		more, less = less, more
	}
	for _, la := range less {
		found := false
		for _, ma := range more {
			if l.Condition.IsRelated(la, ma) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ConditionLower reports whether a is a strictly narrower condition than
// b: either both are singletons and a is_lower b, or b's atom set is a
// strict subset of a's (more atoms is stricter), or a has at least as
// many atoms as b and every atom of b has a lattice-lower counterpart
// in a.
func (l Lattices) ConditionLower(a, b string) bool {
	atomsA := splitConditionAtoms(l.Condition, a)
	atomsB := splitConditionAtoms(l.Condition, b)
	if len(atomsA) == 1 && len(atomsB) == 1 {
		return l.Condition.IsLower(atomsA[0], atomsB[0])
	}
	if isStrictSubset(atomsB, atomsA) {
		return true
	}
	if len(atomsA) >= len(atomsB) {
		allLower := true
		for _, bb := range atomsB {
			matched := false
			for _, aa := range atomsA {
				if l.Condition.IsLower(aa, bb) || aa == bb {
					matched = true
					break
				}
			}
			if !matched {
				allLower = false
				break
			}
		}
		return allLower
	}
	return false
}

// ConditionHigher is the dual of ConditionLower.
func (l Lattices) ConditionHigher(a, b string) bool {
	return l.ConditionLower(b, a)
}

func isStrictSubset(sub, sup []string) bool {
	if len(sub) >= len(sup) {
		return false
	}
	supSet := make(map[string]bool, len(sup))
	for _, s := range sup {
		supSet[s] = true
	}
	for _, s := range sub {
		if !supSet[s] {
			return false
		}
	}
	return true
}
