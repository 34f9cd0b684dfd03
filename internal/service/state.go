package service

import "sync"

// State is the UI-facing application state: the current snapshot plus the
// active search text and sort key. It is safe for concurrent use.
type State struct {
	mu       sync.RWMutex
	snapshot *Snapshot
	search   string
	sort     SortKey
}

func NewState(search string, sort SortKey) *State {
	if sort == "" {
		sort = SortQualityDesc
	}
	return &State{search: search, sort: sort}
}

// Snapshot returns the last successfully loaded snapshot, or nil.
func (s *State) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Replace swaps in a fully built snapshot.
func (s *State) Replace(snap *Snapshot) {
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}

func (s *State) SetSearch(search string) {
	s.mu.Lock()
	s.search = search
	s.mu.Unlock()
}

func (s *State) SetSort(sort SortKey) {
	s.mu.Lock()
	s.sort = sort
	s.mu.Unlock()
}

func (s *State) Search() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search
}

func (s *State) Sort() SortKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sort
}

// Visible returns the professors of the current snapshot after applying the
// active search and sort.
func (s *State) Visible() []ProfessorAggregate {
	s.mu.RLock()
	snap, search, sort := s.snapshot, s.search, s.sort
	s.mu.RUnlock()

	if snap == nil {
		return []ProfessorAggregate{}
	}
	return Query(snap.Professors, search, sort)
}

// Find looks up a professor in the current snapshot by exact name.
func (s *State) Find(name string) (ProfessorAggregate, bool) {
	snap := s.Snapshot()
	if snap == nil {
		return ProfessorAggregate{}, false
	}
	for _, p := range snap.Professors {
		if p.Name == name {
			return p, true
		}
	}
	return ProfessorAggregate{}, false
}
