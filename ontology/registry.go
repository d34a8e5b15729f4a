// Package ontology implements the three subsumption lattices (entities,
// data categories, conditions) used to recognize and relate terms found in
// privacy-policy claim extractions.
package ontology

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Definition describes one term of a family: its canonical name, the
// regular expressions that recognize it in free text, and optional
// whole-word synonym literals.
type Definition struct {
	Name     string
	Patterns []string
	Synonyms []string
}

// Edge is a directed "child is-a parent" relation: Source is more specific
// than Target.
type Edge struct {
	Source string
	Target string
}

type termPattern struct {
	term    string
	pattern string
	re      *regexp.Regexp
}

// Registry holds one family's recognized terms, their compiled patterns,
// and the precomputed transitive closure of its is-a relation.
type Registry struct {
	family string
	logger *slog.Logger

	patterns   map[string][]string
	synonyms   map[string][]string
	aliases    map[string]string
	subMapping map[string][]string

	exprOrder []termPattern
	synOrder  []termPattern

	cache *lru.Cache[string, map[string]bool]
}

// New constructs an empty registry for the given family name ("entity",
// "data", "condition"), used only for logging context.
func New(family string, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	cache, _ := lru.New[string, map[string]bool](300)
	return &Registry{
		family:     family,
		logger:     logger,
		patterns:   make(map[string][]string),
		synonyms:   make(map[string][]string),
		aliases:    make(map[string]string),
		subMapping: make(map[string][]string),
		cache:      cache,
	}
}

// Load installs definitions and relation edges into the registry,
// compiling every pattern and synonym and computing the transitive
// closure of the relation. Invalid regexes and edges naming unknown terms
// are logged and skipped rather than treated as fatal.
func (r *Registry) Load(defs []Definition, edges []Edge) {
	for _, d := range defs {
		name := strings.ToLower(strings.TrimSpace(d.Name))
		if name == "" {
			r.logger.Warn("ontology: skipping definition with empty name", "family", r.family)
			continue
		}
		for _, p := range d.Patterns {
			pat := strings.ToLower(p)
			re, err := regexp.Compile("(?i)" + pat)
			if err != nil {
				r.logger.Warn("ontology: invalid pattern, skipping", "family", r.family, "term", name, "pattern", pat, "error", err)
				continue
			}
			r.patterns[name] = append(r.patterns[name], pat)
			r.exprOrder = append(r.exprOrder, termPattern{term: name, pattern: pat, re: re})
		}
		for _, s := range d.Synonyms {
			syn := strings.ToLower(s)
			re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(syn) + `\b`)
			if err != nil {
				r.logger.Warn("ontology: invalid synonym, skipping", "family", r.family, "term", name, "synonym", syn, "error", err)
				continue
			}
			r.synonyms[name] = append(r.synonyms[name], syn)
			r.synOrder = append(r.synOrder, termPattern{term: name, pattern: syn, re: re})
		}
		if _, ok := r.subMapping[name]; !ok {
			r.subMapping[name] = nil
		}
	}

	// Deterministic iteration: sorted by term name, pattern order within
	// a term preserved as declared.
	sort.SliceStable(r.exprOrder, func(i, j int) bool { return r.exprOrder[i].term < r.exprOrder[j].term })
	sort.SliceStable(r.synOrder, func(i, j int) bool { return r.synOrder[i].term < r.synOrder[j].term })

	for _, e := range edges {
		src := strings.ToLower(strings.TrimSpace(e.Source))
		tgt := strings.ToLower(strings.TrimSpace(e.Target))
		if src == "" || tgt == "" {
			r.logger.Warn("ontology: skipping malformed edge", "family", r.family, "source", e.Source, "target", e.Target)
			continue
		}
		_, srcKnown := r.subMapping[src]
		_, tgtKnown := r.subMapping[tgt]
		if !srcKnown || !tgtKnown {
			r.logger.Warn("ontology: skipping edge naming unknown term", "family", r.family, "source", src, "target", tgt)
			continue
		}
		r.subMapping[src] = append(r.subMapping[src], tgt)
	}

	closure(r.subMapping)
}

// SetAliases installs hard-coded raw-string-to-term aliases, applied
// before pattern matching in RecognizeFirst.
func (r *Registry) SetAliases(aliases map[string]string) {
	for k, v := range aliases {
		r.aliases[strings.ToLower(k)] = strings.ToLower(v)
	}
}

// Terms returns every canonical term name known to the registry, sorted.
func (r *Registry) Terms() []string {
	names := make([]string, 0, len(r.subMapping))
	for k := range r.subMapping {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// IsLower reports whether a is a descendant of (more specific than) b.
func (r *Registry) IsLower(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == "" || b == "" {
		return false
	}
	for _, t := range r.subMapping[a] {
		if t == b {
			return true
		}
	}
	return false
}

// IsHigher reports whether a is an ancestor of (more general than) b.
func (r *Registry) IsHigher(a, b string) bool {
	return r.IsLower(b, a)
}

// IsRelated reports whether a and b are the same term or one subsumes the
// other.
func (r *Registry) IsRelated(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == "" || b == "" {
		return false
	}
	return a == b || r.IsLower(a, b) || r.IsHigher(a, b)
}

// RecognizeFirst returns the first term that matches input, checking
// patterns before synonyms, in deterministic (term name, then pattern)
// order. Aliases are consulted before any regex.
func (r *Registry) RecognizeFirst(input string) (string, bool) {
	text := strings.ToLower(input)
	if alias, ok := r.aliases[text]; ok {
		return alias, true
	}
	for _, tp := range r.exprOrder {
		if tp.re.MatchString(text) {
			return tp.term, true
		}
	}
	for _, tp := range r.synOrder {
		if tp.re.MatchString(text) {
			return tp.term, true
		}
	}
	return "", false
}

// RecognizeOrigin returns the set of literal substrings that matched,
// across both patterns and synonyms.
func (r *Registry) RecognizeOrigin(input string) map[string]bool {
	text := strings.ToLower(input)
	ret := make(map[string]bool)
	for _, tp := range r.exprOrder {
		if m := tp.re.FindString(text); m != "" {
			ret[m] = true
		}
	}
	for _, tp := range r.synOrder {
		if m := tp.re.FindString(text); m != "" {
			ret[m] = true
		}
	}
	return ret
}

// RecognizeAll returns the set of all terms matching input.
func (r *Registry) RecognizeAll(input string) map[string]bool {
	text := strings.ToLower(input)
	ret := make(map[string]bool)
	for _, tp := range r.exprOrder {
		if tp.re.MatchString(text) {
			ret[tp.term] = true
		}
	}
	for _, tp := range r.synOrder {
		if tp.re.MatchString(text) {
			ret[tp.term] = true
		}
	}
	return ret
}

// RecognizeLower returns RecognizeAll(input) with any term dropped that is
// an ancestor of another matched term (specificity reduction). Results are
// memoized in a bounded LRU cache keyed by the raw input.
func (r *Registry) RecognizeLower(input string) map[string]bool {
	if cached, ok := r.cache.Get(input); ok {
		return cached
	}
	candidates := r.RecognizeAll(input)
	terms := make([]string, 0, len(candidates))
	for t := range candidates {
		terms = append(terms, t)
	}
	toRemove := make(map[string]bool)
	for i := 0; i < len(terms); i++ {
		for j := i + 1; j < len(terms); j++ {
			a, b := terms[i], terms[j]
			if r.IsLower(a, b) {
				toRemove[b] = true
			} else if r.IsLower(b, a) {
				toRemove[a] = true
			}
		}
	}
	result := make(map[string]bool)
	for t := range candidates {
		if !toRemove[t] {
			result[t] = true
		}
	}
	r.cache.Add(input, result)
	return result
}

// IsWhich reports whether input matches the given term specifically
// (patterns then synonyms for that term only).
func (r *Registry) IsWhich(input, term string) bool {
	text := strings.ToLower(input)
	term = strings.ToLower(term)
	for _, pat := range r.patterns[term] {
		re, err := regexp.Compile("(?i)" + pat)
		if err == nil && re.MatchString(text) {
			return true
		}
	}
	for _, syn := range r.synonyms[term] {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(syn) + `\b`)
		if err == nil && re.MatchString(text) {
			return true
		}
	}
	return false
}

// ExpressionMatch pairs a recognized term with the literal text that
// produced the match.
type ExpressionMatch struct {
	Term string
	Text string
}

// FindAllExpression finds every occurrence of term's patterns and
// synonyms within input.
func (r *Registry) FindAllExpression(input, term string) []ExpressionMatch {
	text := strings.ToLower(input)
	term = strings.ToLower(term)
	var ret []ExpressionMatch
	for _, pat := range r.patterns[term] {
		re, err := regexp.Compile("(?i)" + pat)
		if err != nil {
			continue
		}
		for _, m := range re.FindAllString(text, -1) {
			ret = append(ret, ExpressionMatch{Term: term, Text: m})
		}
	}
	for _, syn := range r.synonyms[term] {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(syn) + `\b`)
		if err == nil && re.MatchString(text) {
			ret = append(ret, ExpressionMatch{Term: term, Text: syn})
		}
	}
	return ret
}
