package splitter

import "context"

// MaxSearchWidth is the widest delivery type universe the cover search accepts.
const MaxSearchWidth = 63

// ctxCheckInterval controls how many subsets are visited between context checks.
const ctxCheckInterval = 1024

// FindMinimalGroups returns every smallest set of delivery types whose
// candidates jointly cover each distinct basket item.
//
// Subsets of the candidate map's delivery types are visited by increasing
// size and, within a size, in lexicographic order of the sorted type names.
// The search stops after the first size that produces a cover, so the result
// is ordered and every group has the same length. An empty basket is covered
// by the empty group. A basket that cannot be covered yields no groups.
//
// The search is exhaustive and exponential in the number of delivery types.
func FindMinimalGroups(ctx context.Context, basket []string, candidates CandidateMap) ([]DeliveryGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	universe := candidates.Types()
	if len(universe) > MaxSearchWidth {
		return nil, ErrTooManyDeliveryTypes
	}

	required := NewMultiset(basket...).Distinct()

	// coverage[item] has bit i set when universe[i] can carry item.
	coverage := make(map[string]uint64, len(required))
	for i, t := range universe {
		for _, item := range candidates[t].Distinct() {
			coverage[item] |= 1 << uint(i)
		}
	}
	for _, item := range required {
		if coverage[item] == 0 {
			return nil, nil
		}
	}

	var groups []DeliveryGroup
	visited := 0
	for size := 0; size <= len(universe); size++ {
		err := forEachCombination(len(universe), size, func(idx []int) error {
			visited++
			if visited%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}

			var mask uint64
			for _, i := range idx {
				mask |= 1 << uint(i)
			}
			for _, item := range required {
				if coverage[item]&mask == 0 {
					return nil
				}
			}

			group := make(DeliveryGroup, len(idx))
			for j, i := range idx {
				group[j] = universe[i]
			}
			groups = append(groups, group)
			return nil
		})
		if err != nil {
			return nil, err
		}
		if len(groups) > 0 {
			return groups, nil
		}
	}

	return groups, nil
}

// forEachCombination calls fn with every k-element subset of [0, n) as
// ascending indices, in lexicographic order. The slice passed to fn is reused
// between calls. A non-nil error from fn stops the walk.
func forEachCombination(n, k int, fn func(idx []int) error) error {
	if k < 0 || k > n {
		return nil
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		if err := fn(idx); err != nil {
			return err
		}

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
