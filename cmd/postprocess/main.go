// Command postprocess runs the unspecified-entity and missing-claim
// resolution passes over an already-produced report.
//
// Single-file usage:
//
//	go run ./cmd/postprocess --single --input ./data/policy.report.json
//
// Batch usage (rewrites every *.report.json file in a directory):
//
//	go run ./cmd/postprocess --batch --input ./data/reports/
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	policond "github.com/bbiangul/policond"
	"github.com/bbiangul/policond/report"
)

func main() {
	var (
		single    = flag.Bool("single", false, "Post-process a single report file")
		batch     = flag.Bool("batch", false, "Post-process every *.report.json file in --input")
		inputPath = flag.String("input", "", "Path to a report file, or a directory in --batch mode")
	)
	flag.Parse()

	if *single == *batch {
		log.Fatal("exactly one of --single or --batch is required")
	}
	if *inputPath == "" {
		log.Fatal("--input is required")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	engine := policond.New(logger)

	if *single {
		if err := postprocessOne(engine, *inputPath); err != nil {
			log.Fatalf("postprocess: %v", err)
		}
		return
	}

	entries, err := os.ReadDir(*inputPath)
	if err != nil {
		log.Fatalf("postprocess: reading --input directory: %v", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".report.json") {
			continue
		}
		path := filepath.Join(*inputPath, e.Name())
		if err := postprocessOne(engine, path); err != nil {
			logger.Error("postprocess: skipping file after error", "file", path, "error", err)
		}
	}
}

func postprocessOne(engine policond.Engine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	rep, err := report.Read(f)
	f.Close()
	if err != nil {
		return err
	}

	rep = engine.PostProcess(rep)

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return report.Write(out, rep)
}
