// Command analyze runs contradiction/narrowing detection over an
// extraction-input file and writes a report.
//
// Single-file usage:
//
//	go run ./cmd/analyze --single \
//	  --jsonl ./data/policy.extraction.jsonl \
//	  --policy ./data/policy.txt \
//	  --output ./data/policy.report.json
//
// Batch usage (one report per *.jsonl file in a directory):
//
//	go run ./cmd/analyze --batch \
//	  --jsonl ./data/extractions/ \
//	  --output ./data/reports/
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	policond "github.com/bbiangul/policond"
	"github.com/bbiangul/policond/docload"
	"github.com/bbiangul/policond/extract"
	"github.com/bbiangul/policond/report"
)

func main() {
	var (
		single     = flag.Bool("single", false, "Analyze a single extraction-input file")
		batch      = flag.Bool("batch", false, "Analyze every *.jsonl file in --jsonl's directory")
		jsonlPath  = flag.String("jsonl", "", "Path to an extraction-input JSONL file, or a directory in --batch mode")
		policyPath = flag.String("policy", "", "Path to the source policy document (used for the policyLength statistic)")
		outputPath = flag.String("output", "", "Path to write the report (file in --single mode, directory in --batch mode)")
		name       = flag.String("name", "", "Policy name recorded in the report's basic info (default: derived from --jsonl)")
	)
	flag.Parse()

	if *single == *batch {
		log.Fatal("exactly one of --single or --batch is required")
	}
	if *jsonlPath == "" {
		log.Fatal("--jsonl is required")
	}
	if *outputPath == "" {
		log.Fatal("--output is required")
	}
	for _, p := range []string{*jsonlPath, *policyPath} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			log.Fatalf("analyze: %v", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	engine := policond.New(logger)

	if *single {
		if err := analyzeOne(engine, *jsonlPath, *policyPath, *outputPath, *name); err != nil {
			log.Fatalf("analyze: %v", err)
		}
		return
	}

	entries, err := os.ReadDir(*jsonlPath)
	if err != nil {
		log.Fatalf("analyze: reading --jsonl directory: %v", err)
	}
	if err := os.MkdirAll(*outputPath, 0o755); err != nil {
		log.Fatalf("analyze: creating --output directory: %v", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jsonl") {
			continue
		}
		in := filepath.Join(*jsonlPath, e.Name())
		out := filepath.Join(*outputPath, strings.TrimSuffix(e.Name(), ".jsonl")+".report.json")
		if err := analyzeOne(engine, in, *policyPath, out, ""); err != nil {
			logger.Error("analyze: skipping file after error", "file", in, "error", err)
		}
	}
}

func analyzeOne(engine policond.Engine, jsonlPath, policyPath, outputPath, name string) error {
	f, err := os.Open(jsonlPath)
	if err != nil {
		return err
	}
	defer f.Close()

	claims := extract.ParseLines(f, nil)

	policyLength := 0
	numSentences := 0
	if policyPath != "" {
		loader := docload.New()
		doc, err := loader.Load(context.Background(), policyPath)
		if err == nil {
			policyLength = doc.Length
			numSentences = len(doc.Windows)
		}
	}

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(jsonlPath), filepath.Ext(jsonlPath))
	}

	rep := engine.Analyze(claims, name, policyLength, numSentences)

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()
	return report.Write(out, rep)
}
