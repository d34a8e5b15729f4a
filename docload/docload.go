// Package docload turns a policy document file into the ordered
// sentence/context windows the ingestion pipeline sends to a language
// model, reusing the document parsers and the legal/structural chunker
// idiom kept from the document-understanding pipeline this module grew
// out of.
package docload

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	prose "github.com/tsawler/prose/v3"

	"github.com/bbiangul/policond/chunker"
	"github.com/bbiangul/policond/ingest"
	"github.com/bbiangul/policond/parser"
)

// sentenceScale keeps segments small enough that each one, once
// re-split, yields individual sentences rather than whole paragraphs.
const sentenceScale = 320

// Document is a loaded policy document: its ordered sentence windows
// and its total parsed content length, used for the report's
// policyLength statistic.
type Document struct {
	Name    string
	Windows []ingest.Window
	Length  int
}

// Loader resolves a parser.Parser per file extension and chunks its
// output into sentence-scale segments.
type Loader struct {
	registry *parser.Registry
	chunker  *chunker.Chunker
}

// New constructs a Loader with the built-in document parsers and a
// sentence-scale chunker.
func New() *Loader {
	return &Loader{
		registry: parser.NewRegistry(),
		chunker:  chunker.New(chunker.Config{MaxTokens: sentenceScale}),
	}
}

// Load parses path, chunks it into segments, and splits each segment's
// content into sentence windows. HTML and plain text are handled by
// docload directly; every other supported extension is delegated to
// the shared parser registry.
func (l *Loader) Load(ctx context.Context, path string) (Document, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	var sections []parser.Section
	switch ext {
	case "html", "htm":
		sec, err := loadHTML(path)
		if err != nil {
			return Document{}, err
		}
		sections = []parser.Section{sec}
	case "txt":
		result, err := (&parser.TextParser{}).Parse(ctx, path)
		if err != nil {
			return Document{}, fmt.Errorf("docload: parsing %s: %w", path, err)
		}
		sections = result.Sections
	default:
		p, err := l.registry.Get(ext)
		if err != nil {
			return Document{}, fmt.Errorf("docload: %w", err)
		}
		result, err := p.Parse(ctx, path)
		if err != nil {
			return Document{}, fmt.Errorf("docload: parsing %s: %w", path, err)
		}
		sections = result.Sections
	}

	segments := l.chunker.Chunk(sections)

	var windows []ingest.Window
	length := 0
	for _, sec := range sections {
		length += utf8.RuneCountInString(sec.Content)
	}
	for _, seg := range segments {
		for _, clause := range chunker.SplitByClauses(seg.Content) {
			for _, sentence := range splitSentences(clause) {
				sentence = strings.TrimSpace(sentence)
				if sentence == "" || chunker.IsHeading(sentence) {
					continue
				}
				windows = append(windows, ingest.Window{Sentence: sentence, Context: seg.Content})
			}
		}
	}

	return Document{
		Name:    filepath.Base(path),
		Windows: windows,
		Length:  length,
	}, nil
}

// splitSentences splits a block of text into sentences using a
// statistical sentence tokenizer; a regex-based fallback is used if the
// tokenizer cannot build a document or yields no sentences. Empty input
// returns nil without consulting either.
func splitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithTagging(false))
	if err != nil {
		return fallbackSplitSentences(text)
	}
	sentences := doc.Sentences()
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, s.Text)
	}
	if len(out) == 0 {
		return fallbackSplitSentences(text)
	}
	return out
}

var sentenceSplitPattern = regexp.MustCompile(`(?s)(?:[.!?;:()\x{2026}]|[\x{3002}\x{ff01}\x{ff1f}])\s+`)

func fallbackSplitSentences(text string) []string {
	parts := sentenceSplitPattern.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

var tagPattern = regexp.MustCompile(`(?s)<[^>]*>`)

// loadHTML strips tags from an HTML file down to a single text section,
// enough for sentence extraction; it does not attempt layout-aware
// HTML-to-text conversion.
func loadHTML(path string) (parser.Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return parser.Section{}, fmt.Errorf("docload: reading html file: %w", err)
	}
	text := tagPattern.ReplaceAllString(string(data), "\n")
	text = html.UnescapeString(text)
	lines := strings.Split(text, "\n")
	var kept []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return parser.Section{
		Heading: filepath.Base(path),
		Content: strings.Join(kept, "\n"),
		Level:   1,
		Type:    "paragraph",
	}, nil
}
