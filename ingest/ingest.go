// Package ingest is the language-model prompting pipeline: it turns a
// sentence window into an extraction-input record by asking a chat
// model to name the entities, data categories, and conditions a
// sentence's collection claim involves.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bbiangul/policond/llm"
	"github.com/bbiangul/policond/ontology"
)

const temperature = 0.2

const systemPrompt = `You are extracting data-collection claims from a privacy policy sentence.
Read the sentence and its surrounding context, then respond with zero or more
tuples of the exact form (entity, verb, data, condition), one per line, where
verb is either "collect" or "not collect". Use "unspecified" for entity when
no actor is named. Use "any_condition" for condition when none is stated.
Do not explain your answer; emit only the tuples.`

// Window is one sentence and its surrounding context to be sent to the
// language model, alongside the candidate term sets recognized from it.
type Window struct {
	Sentence string
	Context  string
}

// Record is the extraction-input record produced for one window: the
// sentence/context pair, the candidate term sets offered as hints, and
// the model's raw tuple response.
type Record struct {
	Sentence            string   `json:"sentence"`
	Context             string   `json:"context"`
	CandidateEntities   []string `json:"candidate_entities"`
	CandidateData       []string `json:"candidate_data"`
	CandidateConditions []string `json:"candidate_conditions"`
	Response            string   `json:"response"`
}

// Pipeline wraps a chat-capable provider and the ontology registries
// used to compute candidate-term hints.
type Pipeline struct {
	Provider  llm.Provider
	Model     string
	Entity    *ontology.Registry
	Data      *ontology.Registry
	Condition *ontology.Registry
	Workers   int
	Logger    *slog.Logger
}

// New constructs a Pipeline. Workers defaults to 1 if non-positive.
func New(provider llm.Provider, model string, entity, data, condition *ontology.Registry, workers int, logger *slog.Logger) *Pipeline {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Provider: provider, Model: model,
		Entity: entity, Data: data, Condition: condition,
		Workers: workers, Logger: logger,
	}
}

func termKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// candidates computes the candidate_entities/candidate_data/candidate_conditions
// hint arrays for a window by recognizing terms in its context.
func (p *Pipeline) candidates(w Window) ([]string, []string, []string) {
	return termKeys(p.Entity.RecognizeAll(w.Context)),
		termKeys(p.Data.RecognizeAll(w.Context)),
		termKeys(p.Condition.RecognizeAll(w.Context))
}

// Ingest issues one chat completion for w and returns the extraction-input
// record. ctx governs the request's timeout/cancellation.
func (p *Pipeline) Ingest(ctx context.Context, w Window) (Record, error) {
	entities, data, conditions := p.candidates(w)
	req := llm.ChatRequest{
		Model:       p.Model,
		Temperature: temperature,
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Sentence: %s\nContext: %s\nCandidate entities: %v\nCandidate data: %v\nCandidate conditions: %v",
				w.Sentence, w.Context, entities, data, conditions)},
		},
	}
	resp, err := p.Provider.Chat(ctx, req)
	if err != nil {
		return Record{}, fmt.Errorf("ingest: chat completion failed: %w", err)
	}
	return Record{
		Sentence:            w.Sentence,
		Context:              w.Context,
		CandidateEntities:   entities,
		CandidateData:       data,
		CandidateConditions: conditions,
		Response:            resp.Content,
	}, nil
}

// IngestBatch runs Ingest over windows concurrently, bounded by
// p.Workers, returning records in the same order as windows. A window
// whose request errors is logged and omitted from the result.
func (p *Pipeline) IngestBatch(ctx context.Context, windows []Window) []Record {
	results := make([]*Record, len(windows))
	sem := make(chan struct{}, p.Workers)
	var wg sync.WaitGroup
	for i, w := range windows {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, w Window) {
			defer wg.Done()
			defer func() { <-sem }()
			rec, err := p.Ingest(ctx, w)
			if err != nil {
				p.Logger.Warn("ingest: skipping window after error", "sentence", w.Sentence, "error", err)
				return
			}
			results[i] = &rec
		}(i, w)
	}
	wg.Wait()

	out := make([]Record, 0, len(windows))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// MarshalLines serializes records as newline-delimited JSON, matching
// the extraction-input format extract.ParseLines reads.
func MarshalLines(records []Record) ([]byte, error) {
	var buf []byte
	for _, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("ingest: marshaling record: %w", err)
		}
		buf = append(buf, b...)
		buf = append(buf, '\n')
	}
	return buf, nil
}
