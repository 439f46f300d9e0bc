package splitter

// Partition assigns every basket item instance to exactly one delivery type
// of restricted.
//
// The delivery type with the largest candidate multiset claims all of its
// items first. Each following step picks the remaining type with the most
// unclaimed candidates and claims those. Ties resolve to the lexicographically
// smallest type name. Item lists keep basket order and types that end up
// claiming nothing are left out of the result.
func Partition(basket []string, restricted CandidateMap) Assignment {
	result := Assignment{}
	if len(restricted) == 0 {
		return result
	}

	remaining := restricted.Types()
	assigned := NewMultiset()
	for len(remaining) > 0 {
		pos := largestResidual(remaining, restricted, assigned)
		current := remaining[pos]
		remaining = append(remaining[:pos], remaining[pos+1:]...)

		claim := restricted[current].Subtract(assigned)
		if claim.Len() == 0 {
			continue
		}
		result[current] = inBasketOrder(basket, claim)
		assigned.AddAll(claim)
	}

	return result
}

// largestResidual returns the index in types of the delivery type with the
// most candidates not yet assigned. types must be sorted.
func largestResidual(types []string, candidates CandidateMap, assigned *Multiset) int {
	best, bestLen := 0, -1
	for i, t := range types {
		if n := candidates[t].Subtract(assigned).Len(); n > bestLen {
			best, bestLen = i, n
		}
	}
	return best
}

// inBasketOrder lists the occurrences held by claim following the order in
// which they appear in basket. Occurrences absent from basket go last.
func inBasketOrder(basket []string, claim *Multiset) []string {
	pending := claim.Clone()
	out := make([]string, 0, claim.Len())
	for _, item := range basket {
		if pending.Remove(item) {
			out = append(out, item)
		}
	}
	return append(out, pending.Items()...)
}
