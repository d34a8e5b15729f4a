package ruleengine

import (
	"log/slog"

	"github.com/bbiangul/policond/claim"
)

// Pair is one (positive claim, negative claim) comparison that survived
// the short-circuit relatedness filters and was classified by a rule
// branch.
type Pair struct {
	Positive claim.Claim
	Negative claim.Claim
}

// String renders a pair as "lhs vs rhs", matching the report writer's
// pair rendering convention.
func (p Pair) String() string {
	return p.Positive.PrettyPrint() + " vs " + p.Negative.PrettyPrint()
}

// Engine evaluates the contradiction/narrowing rules over the three
// term lattices.
type Engine struct {
	Lattices Lattices
	Logger   *slog.Logger
}

// New constructs an Engine over the given lattices.
func New(l Lattices, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{Lattices: l, Logger: logger}
}

// Result is the engine's output: every contradiction and narrowing pair
// found across the full P x N comparison, in discovery order and with
// duplicates left in place.
type Result struct {
	Contradictions []Pair
	Narrowings     []Pair
}

// Run compares every positive claim against every negative claim, in
// P x N insertion order, and classifies related pairs into
// contradictions or narrowings. An error recovered from a single pair's
// evaluation is logged and that pair is skipped; the scan continues.
func (e *Engine) Run(positives, negatives []claim.Claim) Result {
	var res Result
	for _, p := range positives {
		for _, n := range negatives {
			e.evaluatePair(p, n, &res)
		}
	}
	return res
}

func (e *Engine) evaluatePair(p, n claim.Claim, res *Result) {
	defer func() {
		if r := recover(); r != nil {
			e.Logger.Warn("ruleengine: recovered from panic evaluating pair",
				"positive", p.PrettyPrint(), "negative", n.PrettyPrint(), "panic", r)
		}
	}()

	l := e.Lattices
	if !l.EntityRelated(p.Entity, n.Entity) {
		return
	}
	if !l.DataRelated(p.Data, n.Data) {
		return
	}
	if !l.ConditionRelated(p.Condition, n.Condition) {
		return
	}

	switch {
	case p.Condition == n.Condition:
		c, w := noConditionRule(l, p, n)
		res.Contradictions = append(res.Contradictions, c...)
		res.Narrowings = append(res.Narrowings, w...)
	case l.ConditionHigher(p.Condition, n.Condition):
		res.Narrowings = append(res.Narrowings, higherConditionRule(l, p, n)...)
	case l.ConditionLower(p.Condition, n.Condition):
		res.Contradictions = append(res.Contradictions, lowerConditionRule(l, p, n)...)
	}
}
