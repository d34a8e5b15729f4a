// Package report assembles claims, evidence, contradictions, and
// narrowings into the stable, sorted document the command-line
// launchers serialize and the resolver later rewrites.
package report

import (
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/bbiangul/policond/claim"
	"github.com/bbiangul/policond/ruleengine"
)

// BasicInfo summarizes a report's scale for quick inspection.
type BasicInfo struct {
	PolicyName         string    `json:"policyName"`
	PolicyLength       int       `json:"policyLength"`
	NumSentences       int       `json:"numSentences"`
	NumClaims          int       `json:"numClaims"`
	NumPositiveClaims  int       `json:"numPositiveClaims"`
	NumNegativeClaims  int       `json:"numNegativeClaims"`
	NumEntities        int       `json:"numEntities"`
	NumDataTypes       int       `json:"numDataTypes"`
	NumConditions      int       `json:"numConditions"`
	NumContradictions  int       `json:"numContradictions"`
	NumNarrowings      int       `json:"numNarrowings"`
	NumTuples          int       `json:"numTuples"`
	GeneratedAt        time.Time `json:"generatedAt"`
}

// EvidenceRecord is the serialized form of one claim.Evidence.
type EvidenceRecord struct {
	Sentence           string `json:"sentence"`
	Context            string `json:"context"`
	CandidateEntity    string `json:"candidateEntity"`
	CandidateVerb      string `json:"candidateVerb"`
	CandidateData      string `json:"candidateData"`
	CandidateCondition string `json:"candidateCondition"`
}

// NodeRecord is one merged claim, pretty-printed and carrying its full
// evidence list.
type NodeRecord struct {
	Entity    string           `json:"entity"`
	Verb      string           `json:"verb"`
	Data      string           `json:"data"`
	Condition string           `json:"condition"`
	Tuple     string           `json:"tuple"`
	Evidence  []EvidenceRecord `json:"evidence"`
}

// Report is the full analysis document.
type Report struct {
	BasicInfo          BasicInfo    `json:"basicInfo"`
	Tuples             []string     `json:"tuples"`
	Nodes              []NodeRecord `json:"nodes"`
	ContradictionPairs []string     `json:"contradictionPairs"`
	NarrowingPairs     []string     `json:"narrowingPairs"`
	Rule1              []string     `json:"rule1,omitempty"`
	Rule2              []string     `json:"rule2,omitempty"`
}

func toEvidenceRecord(e claim.Evidence) EvidenceRecord {
	return EvidenceRecord{
		Sentence:           e.Sentence,
		Context:            e.Context,
		CandidateEntity:    e.CandidateEntity,
		CandidateVerb:      e.CandidateVerb,
		CandidateData:      e.CandidateData,
		CandidateCondition: e.CandidateCondition,
	}
}

func toNodeRecord(c claim.Claim) NodeRecord {
	nr := NodeRecord{
		Entity:    c.Entity,
		Verb:      c.Verb,
		Data:      c.Data,
		Condition: c.Condition,
		Tuple:     c.PrettyPrint(),
	}
	for _, e := range c.Evidence {
		nr.Evidence = append(nr.Evidence, toEvidenceRecord(e))
	}
	return nr
}

// Build assembles a Report from the normalized claim lists and the rule
// engine's result. numSentences is the count of distinct sentences seen
// during ingestion, used only for the basic-info statistic.
func Build(policyName string, policyLength, numSentences int, positives, negatives []claim.Claim, result ruleengine.Result) Report {
	all := make([]claim.Claim, 0, len(positives)+len(negatives))
	all = append(all, positives...)
	all = append(all, negatives...)

	entities := make(map[string]bool)
	data := make(map[string]bool)
	conditions := make(map[string]bool)
	tupleSet := make(map[string]bool)
	nodes := make([]NodeRecord, 0, len(all))
	for _, c := range all {
		entities[c.Entity] = true
		data[c.Data] = true
		conditions[c.Condition] = true
		tupleSet[c.PrettyPrint()] = true
		nodes = append(nodes, toNodeRecord(c))
	}

	tuples := make([]string, 0, len(tupleSet))
	for t := range tupleSet {
		tuples = append(tuples, t)
	}
	sort.Strings(tuples)

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Tuple < nodes[j].Tuple })

	contradictions := pairStrings(result.Contradictions)
	narrowings := pairStrings(result.Narrowings)

	return Report{
		BasicInfo: BasicInfo{
			PolicyName:        policyName,
			PolicyLength:      policyLength,
			NumSentences:      numSentences,
			NumClaims:         len(all),
			NumPositiveClaims: len(positives),
			NumNegativeClaims: len(negatives),
			NumEntities:       len(entities),
			NumDataTypes:      len(data),
			NumConditions:     len(conditions),
			NumContradictions: len(contradictions),
			NumNarrowings:     len(narrowings),
			NumTuples:         len(tuples),
			GeneratedAt:       time.Now().UTC(),
		},
		Tuples:             tuples,
		Nodes:              nodes,
		ContradictionPairs: contradictions,
		NarrowingPairs:     narrowings,
	}
}

// pairStrings renders each pair and deduplicates on the rendered string,
// since the rule engine deliberately does not dedupe (spec's contract
// puts that obligation on the report writer).
func pairStrings(pairs []ruleengine.Pair) []string {
	seen := make(map[string]bool, len(pairs))
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		s := p.String()
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Write serializes the report as JSON with two-space indentation.
func Write(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Read deserializes a report previously written by Write.
func Read(r io.Reader) (Report, error) {
	var rep Report
	dec := json.NewDecoder(r)
	err := dec.Decode(&rep)
	return rep, err
}
