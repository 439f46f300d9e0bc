package splitter

// SelectBest picks, among equally small covers, the one containing the
// delivery type with the largest candidate multiset. Groups are scanned in
// order and types within a group in sorted order; the first maximum wins.
// It returns an empty group when groups is empty or no type carries anything.
func SelectBest(groups []DeliveryGroup, candidates CandidateMap) DeliveryGroup {
	best := DeliveryGroup{}
	bestSize := 0
	for _, group := range groups {
		for _, t := range group {
			if n := candidates[t].Len(); n > bestSize {
				best, bestSize = group, n
			}
		}
	}

	out := make(DeliveryGroup, len(best))
	copy(out, best)
	return out
}
