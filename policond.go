// Package policond detects contradictions and narrowings between
// collection claims extracted from a privacy policy: statements that a
// first- or third-party entity does or does not collect some category
// of data, optionally qualified by a condition.
package policond

import (
	"log/slog"

	"github.com/bbiangul/policond/claim"
	"github.com/bbiangul/policond/normalize"
	"github.com/bbiangul/policond/ontology"
	"github.com/bbiangul/policond/report"
	"github.com/bbiangul/policond/resolver"
	"github.com/bbiangul/policond/ruleengine"
)

// Engine is the main entry point for claim normalization, contradiction
// detection, and post-analysis resolution.
type Engine interface {
	// Analyze normalizes a batch of evidence-claims, runs the rule
	// engine over the result, and returns the assembled report.
	Analyze(claims []claim.EvidenceClaim, policyName string, policyLength, numSentences int) report.Report

	// PostProcess runs the unspecified-entity and missing-claim
	// resolution passes over an already-produced report.
	PostProcess(rep report.Report) report.Report
}

// Lattices bundles the three term registries an Engine uses for
// recognition, relatedness, and voting.
type Lattices struct {
	Entity    *ontology.Registry
	Data      *ontology.Registry
	Condition *ontology.Registry
}

// DefaultLattices builds the three registries from their built-in
// vocabulary.
func DefaultLattices(logger *slog.Logger) Lattices {
	entity := ontology.New("entity", logger)
	entity.Load(ontology.DefaultEntityDefinitions(), ontology.DefaultEntityRelations())

	data := ontology.New("data", logger)
	data.Load(ontology.DefaultDataDefinitions(), ontology.DefaultDataRelations())

	condition := ontology.New("condition", logger)
	condition.Load(ontology.DefaultConditionDefinitions(), ontology.DefaultConditionRelations())

	return Lattices{Entity: entity, Data: data, Condition: condition}
}

type engine struct {
	lattices  Lattices
	normalize *normalize.Normalizer
	rules     *ruleengine.Engine
	resolve   *resolver.Resolver
	logger    *slog.Logger
}

// New constructs an Engine over the built-in ontology vocabulary. A nil
// logger defaults to slog.Default().
func New(logger *slog.Logger) Engine {
	if logger == nil {
		logger = slog.Default()
	}
	lattices := DefaultLattices(logger)
	return &engine{
		lattices: lattices,
		normalize: normalize.New(lattices.Condition),
		rules: ruleengine.New(ruleengine.Lattices{
			Entity: lattices.Entity, Data: lattices.Data, Condition: lattices.Condition,
		}, logger),
		resolve: resolver.New(lattices.Entity, lattices.Data),
		logger:  logger,
	}
}

func (e *engine) Analyze(claims []claim.EvidenceClaim, policyName string, policyLength, numSentences int) report.Report {
	normalized := e.normalize.Normalize(claims)
	result := e.rules.Run(normalized.Positives, normalized.Negatives)
	return report.Build(policyName, policyLength, numSentences, normalized.Positives, normalized.Negatives, result)
}

func (e *engine) PostProcess(rep report.Report) report.Report {
	return e.resolve.Resolve(rep)
}
