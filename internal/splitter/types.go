package splitter

import "sort"

// CandidateMap holds, per delivery type, the basket items that type may carry.
type CandidateMap map[string]*Multiset

// Types returns the delivery types present in the map, sorted.
func (c CandidateMap) Types() []string {
	out := make([]string, 0, len(c))
	for t := range c {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Restrict returns a copy of c holding only the delivery types in group.
// The multisets are cloned so the result can be consumed independently.
func (c CandidateMap) Restrict(group DeliveryGroup) CandidateMap {
	out := make(CandidateMap, len(group))
	for _, t := range group {
		if items, ok := c[t]; ok {
			out[t] = items.Clone()
		}
	}
	return out
}

// DeliveryGroup is a sorted set of delivery types considered as a cover.
type DeliveryGroup []string

// Contains reports whether t belongs to the group.
func (g DeliveryGroup) Contains(t string) bool {
	i := sort.SearchStrings(g, t)
	return i < len(g) && g[i] == t
}

// Assignment maps each used delivery type to the items it ships, in basket order.
type Assignment map[string][]string

// Types returns the delivery types used by the assignment, sorted.
func (a Assignment) Types() []string {
	out := make([]string, 0, len(a))
	for t := range a {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// ItemCount returns the number of item instances across all delivery types.
func (a Assignment) ItemCount() int {
	total := 0
	for _, items := range a {
		total += len(items)
	}
	return total
}

// Dominant returns the delivery type carrying the most items.
// Ties resolve to the lexicographically smallest name.
func (a Assignment) Dominant() string {
	best := ""
	bestLen := 0
	for _, t := range a.Types() {
		if n := len(a[t]); n > bestLen {
			best, bestLen = t, n
		}
	}
	return best
}
