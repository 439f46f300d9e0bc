package splitter

// Multiset is a counted collection of items. Keys iterate in first-insertion
// order so that every walk over a multiset is reproducible.
type Multiset struct {
	counts map[string]int
	keys   []string
	total  int
}

// NewMultiset returns a multiset holding one occurrence per element of items.
func NewMultiset(items ...string) *Multiset {
	m := &Multiset{counts: make(map[string]int, len(items))}
	for _, item := range items {
		m.Add(item)
	}
	return m
}

// Add records one more occurrence of item.
func (m *Multiset) Add(item string) {
	m.AddN(item, 1)
}

// AddN records n more occurrences of item. Non-positive n is ignored.
func (m *Multiset) AddN(item string, n int) {
	if n <= 0 {
		return
	}
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	if _, ok := m.counts[item]; !ok {
		m.keys = append(m.keys, item)
	}
	m.counts[item] += n
	m.total += n
}

// Remove drops one occurrence of item and reports whether one was held.
func (m *Multiset) Remove(item string) bool {
	if m.Count(item) == 0 {
		return false
	}
	m.counts[item]--
	m.total--
	return true
}

// AddAll merges every occurrence held by other into m.
func (m *Multiset) AddAll(other *Multiset) {
	if other == nil {
		return
	}
	for _, item := range other.keys {
		m.AddN(item, other.counts[item])
	}
}

// Count returns how many occurrences of item are held.
func (m *Multiset) Count(item string) int {
	if m == nil {
		return 0
	}
	return m.counts[item]
}

// Len returns the number of occurrences including duplicates.
func (m *Multiset) Len() int {
	if m == nil {
		return 0
	}
	return m.total
}

// Distinct returns each held item once, in insertion order.
func (m *Multiset) Distinct() []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, len(m.keys))
	for _, item := range m.keys {
		if m.counts[item] > 0 {
			out = append(out, item)
		}
	}
	return out
}

// Items expands the multiset into a flat slice, duplicates adjacent.
func (m *Multiset) Items() []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, m.total)
	for _, item := range m.keys {
		for i := 0; i < m.counts[item]; i++ {
			out = append(out, item)
		}
	}
	return out
}

// Subtract returns a new multiset holding m's occurrences minus other's,
// clamped at zero per item. Neither operand is modified.
func (m *Multiset) Subtract(other *Multiset) *Multiset {
	out := &Multiset{counts: make(map[string]int)}
	if m == nil {
		return out
	}
	for _, item := range m.keys {
		out.AddN(item, m.counts[item]-other.Count(item))
	}
	return out
}

// Clone returns an independent copy.
func (m *Multiset) Clone() *Multiset {
	out := &Multiset{counts: make(map[string]int)}
	out.AddAll(m)
	return out
}
