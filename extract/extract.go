// Package extract parses the upstream extraction-input format: one JSON
// object per line carrying a sentence, its window context, the candidate
// term sets offered to the language model, and the model's raw response
// text containing zero or more collection-claim tuples.
package extract

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/bbiangul/policond/claim"
)

// tuplePattern matches "(entity, verb, data, condition)" or
// "(entity; verb; data; condition)" expressions embedded in a response
// string, exactly as the upstream LM pipeline is expected to emit them.
var tuplePattern = regexp.MustCompile(`\((.*?)[;,](.*?)[;,](.*?)[;,](.*?)\)`)

// Line is one upstream extraction-input JSON record.
type Line struct {
	Sentence            string   `json:"sentence"`
	Context             string   `json:"context"`
	CandidateEntities   []string `json:"candidate_entities"`
	CandidateData       []string `json:"candidate_data"`
	CandidateConditions []string `json:"candidate_conditions"`
	Response            string   `json:"response"`
}

// ParseLines reads one JSON record per line from r, and for each record
// extracts the tuple matches in its Response field into EvidenceClaims.
// A malformed JSON line is logged and skipped; the reader continues.
func ParseLines(r io.Reader, logger *slog.Logger) []claim.EvidenceClaim {
	if logger == nil {
		logger = slog.Default()
	}
	var out []claim.EvidenceClaim
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var line Line
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			logger.Warn("extract: malformed extraction line, skipping", "line", lineNo, "error", err)
			continue
		}
		out = append(out, tuplesFromLine(line)...)
	}
	if err := scanner.Err(); err != nil {
		logger.Warn("extract: error scanning extraction input", "error", err)
	}
	return out
}

// tuplesFromLine extracts every tuple expression from line.Response and
// pairs it with the line's sentence/context/candidate fields.
func tuplesFromLine(line Line) []claim.EvidenceClaim {
	matches := tuplePattern.FindAllStringSubmatch(line.Response, -1)
	out := make([]claim.EvidenceClaim, 0, len(matches))
	for _, m := range matches {
		if len(m) != 5 {
			continue
		}
		entity := strings.TrimSpace(m[1])
		verb := claim.NormalizeVerb(m[2])
		data := strings.TrimSpace(m[3])
		condition := strings.TrimSpace(m[4])
		out = append(out, claim.EvidenceClaim{
			Entity:              entity,
			Verb:                verb,
			Data:                data,
			Condition:           condition,
			CandidateEntities:   line.CandidateEntities,
			CandidateVerb:       "None",
			CandidateData:       line.CandidateData,
			CandidateConditions: line.CandidateConditions,
			Sentence:            line.Sentence,
			Context:             line.Context,
		})
	}
	return out
}

// FindTuples extracts raw (entity, verb, data, condition) string tuples
// from response text without attaching any sentence/context/candidate
// metadata. ParseSingleTuple is built on it.
func FindTuples(response string) [][4]string {
	matches := tuplePattern.FindAllStringSubmatch(response, -1)
	out := make([][4]string, 0, len(matches))
	for _, m := range matches {
		if len(m) != 5 {
			continue
		}
		out = append(out, [4]string{
			strings.TrimSpace(m[1]),
			strings.TrimSpace(m[2]),
			strings.TrimSpace(m[3]),
			strings.TrimSpace(m[4]),
		})
	}
	return out
}

// ErrNoTuples is returned by ParseSingleTuple when response contains no
// recognizable tuple expression.
var ErrNoTuples = fmt.Errorf("extract: no tuple expression found")

// ParseSingleTuple extracts the first tuple expression from response, for
// callers that only expect one claim per line.
func ParseSingleTuple(response string) ([4]string, error) {
	tuples := FindTuples(response)
	if len(tuples) == 0 {
		return [4]string{}, ErrNoTuples
	}
	return tuples[0], nil
}
