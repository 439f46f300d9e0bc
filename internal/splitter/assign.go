package splitter

// AssignCandidates builds, for every delivery type in the catalog, the
// multiset of basket items that type is allowed to carry. Every delivery type
// is present in the result even when it can carry nothing. Items missing from
// the catalog contribute to no delivery type.
func AssignCandidates(catalog *Catalog, basket []string) CandidateMap {
	if catalog == nil {
		return CandidateMap{}
	}

	universe := catalog.Universe()
	candidates := make(CandidateMap, len(universe))
	for _, t := range universe {
		candidates[t] = NewMultiset()
	}

	for _, item := range basket {
		for _, t := range catalog.products[item] {
			candidates[t].Add(item)
		}
	}

	return candidates
}
