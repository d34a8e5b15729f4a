package docload

import (
	"os"
	"path/filepath"
	"testing"

	"context"
)

func TestLoadPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.txt")
	content := "We collect your email address. We do not collect your location."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	l := New()
	doc, err := l.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Windows) == 0 {
		t.Fatalf("expected at least one sentence window")
	}
	if doc.Length == 0 {
		t.Fatalf("expected non-zero policy length")
	}
}

func TestLoadHTMLStripsTags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.html")
	content := "<html><body><h1>Policy</h1><p>We collect your email address.</p></body></html>"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	l := New()
	doc, err := l.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	found := false
	for _, w := range doc.Windows {
		if w.Sentence == "We collect your email address." {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected stripped sentence among windows, got %+v", doc.Windows)
	}
}

func TestSplitSentencesHandlesEmptyInput(t *testing.T) {
	if got := splitSentences(""); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}
