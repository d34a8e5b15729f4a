// Package negation detects explicit negation cues in free text: the
// window-context check that distinguishes a genuine "we do not collect X"
// statement from a language-model hallucination attached to an otherwise
// affirmative sentence.
package negation

import (
	"regexp"
	"strings"
)

// lexicon is the set of negation cue words and phrases. Mixed-length
// entries are matched as whole words/phrases via word boundaries.
var lexicon = []string{
	"not", "no", "never", "none", "cannot", "can't", "won't", "don't",
	"doesn't", "didn't", "isn't", "aren't", "wasn't", "weren't",
	"hasn't", "haven't", "hadn't", "wouldn't", "shouldn't", "couldn't",
	"ain't", "nor", "neither", "nothing", "nobody", "nowhere",
	"seldom", "rarely", "hardly", "barely", "scarcely", "without",
	"lack of", "refrain from", "unable to", "n't",
}

var cueRes []*regexp.Regexp

func init() {
	for _, w := range lexicon {
		if w == "n't" {
			cueRes = append(cueRes, regexp.MustCompile(`n't\b`))
			continue
		}
		cueRes = append(cueRes, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(w)+`\b`))
	}
}

// HasNegation reports whether text contains at least one negation cue.
func HasNegation(text string) bool {
	for _, re := range cueRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// FindAll returns every negation cue literally present in text, in the
// order the lexicon declares them (not text order), deduplicated.
func FindAll(text string) []string {
	var out []string
	for i, re := range cueRes {
		if re.MatchString(text) {
			out = append(out, lexicon[i])
		}
	}
	return out
}

// IsNegation reports whether a single token/phrase is itself a lexicon
// entry, case-insensitively.
func IsNegation(token string) bool {
	t := strings.ToLower(strings.TrimSpace(token))
	for _, w := range lexicon {
		if w == t {
			return true
		}
	}
	return false
}
