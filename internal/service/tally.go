package service

import "slices"

// Entry is one row of a frequency table.
type Entry struct {
	Key   string
	Count int
}

// Tally counts string occurrences and remembers first-seen order.
type Tally struct {
	keys   []string
	counts map[string]int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Inc adds one to key. Empty keys are ignored.
func (t *Tally) Inc(key string) {
	if key == "" {
		return
	}
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.counts[key]++
}

func (t *Tally) Count(key string) int {
	if t == nil {
		return 0
	}
	return t.counts[key]
}

func (t *Tally) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Entries returns all counts in first-seen order.
func (t *Tally) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.keys))
	for i, k := range t.keys {
		out[i] = Entry{Key: k, Count: t.counts[k]}
	}
	return out
}

// TopN returns the n highest counts, descending. Equal counts keep
// first-seen order.
func TopN(t *Tally, n int) []Entry {
	if n <= 0 || t.Len() == 0 {
		return []Entry{}
	}
	entries := t.Entries()
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Count - a.Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
