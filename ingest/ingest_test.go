package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/bbiangul/policond/llm"
	"github.com/bbiangul/policond/ontology"
)

type stubProvider struct {
	response string
	err      error
}

func (s stubProvider) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.ChatResponse{Content: s.response}, nil
}

func (s stubProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, nil
}

func newPipeline(t *testing.T, provider llm.Provider) *Pipeline {
	t.Helper()
	entity := ontology.New("entity", nil)
	entity.Load(ontology.DefaultEntityDefinitions(), ontology.DefaultEntityRelations())
	data := ontology.New("data", nil)
	data.Load(ontology.DefaultDataDefinitions(), ontology.DefaultDataRelations())
	cond := ontology.New("condition", nil)
	cond.Load(ontology.DefaultConditionDefinitions(), ontology.DefaultConditionRelations())
	return New(provider, "test-model", entity, data, cond, 2, nil)
}

func TestIngestReturnsRecordWithCandidates(t *testing.T) {
	p := newPipeline(t, stubProvider{response: "(we, collect, email, any_condition)"})
	rec, err := p.Ingest(context.Background(), Window{Sentence: "We collect your email.", Context: "We collect your email."})
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if rec.Response == "" {
		t.Fatalf("expected non-empty response")
	}
	found := false
	for _, e := range rec.CandidateEntities {
		if e == "we" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 'we' among candidate entities, got %v", rec.CandidateEntities)
	}
}

func TestIngestBatchPreservesOrderAndSkipsErrors(t *testing.T) {
	okProvider := stubProvider{response: "(we, collect, email, any_condition)"}
	p := newPipeline(t, okProvider)
	windows := []Window{
		{Sentence: "We collect your email.", Context: "We collect your email."},
		{Sentence: "We do not collect your phone number.", Context: "We do not collect your phone number."},
	}
	records := p.IngestBatch(context.Background(), windows)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for i := range windows {
		if records[i].Sentence != windows[i].Sentence {
			t.Fatalf("records[%d].Sentence = %q, want %q", i, records[i].Sentence, windows[i].Sentence)
		}
	}

	failing := newPipeline(t, stubProvider{err: errors.New("boom")})
	if got := failing.IngestBatch(context.Background(), windows); len(got) != 0 {
		t.Fatalf("expected failed windows to be skipped, got %d records", len(got))
	}
}

func TestMarshalLinesProducesNDJSON(t *testing.T) {
	records := []Record{
		{Sentence: "a", Context: "a", Response: "r1"},
		{Sentence: "b", Context: "b", Response: "r2"},
	}
	b, err := MarshalLines(records)
	if err != nil {
		t.Fatalf("MarshalLines() error = %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("expected non-empty output")
	}
}
