package ontology

// closure computes, in place, the transitive closure of a is-a relation
// expressed as src -> []parents. The expansion walks each source's
// parents breadth-first using a slice-backed queue and a visited set,
// the same shape as the BFS used to walk entity-relationship edges during
// graph traversal elsewhere in this codebase, adapted here to a
// string-keyed relation computed once at load time instead of per query.
func closure(subMapping map[string][]string) {
	sources := make([]string, 0, len(subMapping))
	for src := range subMapping {
		sources = append(sources, src)
	}

	for _, src := range sources {
		visited := make(map[string]bool)
		queue := append([]string(nil), subMapping[src]...)

		for len(queue) > 0 {
			tgt := queue[0]
			queue = queue[1:]
			if visited[tgt] {
				continue
			}
			visited[tgt] = true
			if !containsStr(subMapping[src], tgt) {
				subMapping[src] = append(subMapping[src], tgt)
			}
			if parents, ok := subMapping[tgt]; ok {
				queue = append(queue, parents...)
			}
		}

		subMapping[src] = dedupeStr(subMapping[src])
	}
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func dedupeStr(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, v := range list {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
