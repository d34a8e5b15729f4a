// Command ingest loads a policy document, sends each sentence window to
// a language-model provider, and writes the resulting extraction-input
// JSONL file that cmd/analyze consumes.
//
// Usage:
//
//	go run ./cmd/ingest \
//	  --policy ./data/policy.pdf \
//	  --output ./data/policy.extraction.jsonl \
//	  --chat-provider groq --chat-model openai/gpt-oss-120b \
//	  --workers 4
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/bbiangul/policond/docload"
	"github.com/bbiangul/policond/ingest"
	"github.com/bbiangul/policond/llm"
	"github.com/bbiangul/policond/ontology"
)

func main() {
	var (
		policyPath   = flag.String("policy", "", "Path to the policy document (pdf, docx, xlsx, pptx, txt, html)")
		outputPath   = flag.String("output", "", "Path to write the extraction-input JSONL file")
		chatProvider = flag.String("chat-provider", "groq", "Chat LLM provider")
		chatModel    = flag.String("chat-model", "openai/gpt-oss-120b", "Chat model name")
		chatBaseURL  = flag.String("chat-base-url", "", "Chat provider base URL override")
		chatAPIKey   = flag.String("chat-api-key", "", "Chat provider API key (default: from env)")
		workers      = flag.Int("workers", 4, "Maximum concurrent chat requests")
	)
	flag.Parse()

	if *policyPath == "" {
		log.Fatal("--policy is required")
	}
	if *outputPath == "" {
		log.Fatal("--output is required")
	}

	apiKey := *chatAPIKey
	if apiKey == "" {
		apiKey = resolveAPIKeyFromEnv(*chatProvider)
	}

	provider, err := llm.NewProvider(llm.Config{
		Provider: *chatProvider,
		Model:    *chatModel,
		BaseURL:  *chatBaseURL,
		APIKey:   apiKey,
	})
	if err != nil {
		log.Fatalf("ingest: constructing llm provider: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	loader := docload.New()
	doc, err := loader.Load(context.Background(), *policyPath)
	if err != nil {
		log.Fatalf("ingest: loading policy document: %v", err)
	}

	entity := ontology.New("entity", logger)
	entity.Load(ontology.DefaultEntityDefinitions(), ontology.DefaultEntityRelations())
	data := ontology.New("data", logger)
	data.Load(ontology.DefaultDataDefinitions(), ontology.DefaultDataRelations())
	condition := ontology.New("condition", logger)
	condition.Load(ontology.DefaultConditionDefinitions(), ontology.DefaultConditionRelations())

	pipeline := ingest.New(provider, *chatModel, entity, data, condition, *workers, logger)
	records := pipeline.IngestBatch(context.Background(), doc.Windows)
	logger.Info("ingest: completed", "windows", len(doc.Windows), "records", len(records))

	body, err := ingest.MarshalLines(records)
	if err != nil {
		log.Fatalf("ingest: marshaling records: %v", err)
	}
	if err := os.WriteFile(*outputPath, body, 0o644); err != nil {
		log.Fatalf("ingest: writing output: %v", err)
	}
}

func resolveAPIKeyFromEnv(provider string) string {
	switch provider {
	case "openrouter":
		return os.Getenv("OPENROUTER_API_KEY")
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "groq":
		return os.Getenv("GROQ_API_KEY")
	case "gemini":
		return os.Getenv("GEMINI_API_KEY")
	case "xai":
		return os.Getenv("XAI_API_KEY")
	default:
		return ""
	}
}
