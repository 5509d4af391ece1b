package entity

import "sort"

// State is the whole mutable game: street ownership, commercial holdings and ledgers.
// It has no locking of its own; the owner serializes access.
type State struct {
	Properties OwnershipMap
	Holdings   OwnershipMap
	Ledger     Ledger
}

// NewState returns an empty state.
func NewState() *State {
	return &State{
		Properties: make(OwnershipMap),
		Holdings:   make(OwnershipMap),
		Ledger:     make(Ledger),
	}
}

// Reset clears every record and transaction.
func (s *State) Reset() {
	s.Properties = make(OwnershipMap)
	s.Holdings = make(OwnershipMap)
	s.Ledger = make(Ledger)
}

// IsEmpty reports whether nothing has been recorded since the last reset.
func (s *State) IsEmpty() bool {
	return len(s.Properties) == 0 && len(s.Holdings) == 0 && len(s.Ledger) == 0
}

// Players returns every player referenced by an ownership record, a holding
// or a ledger, sorted by name.
func (s *State) Players() []string {
	seen := make(map[string]struct{})
	for p := range s.Properties {
		seen[p] = struct{}{}
	}
	for p := range s.Holdings {
		seen[p] = struct{}{}
	}
	for p := range s.Ledger {
		seen[p] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep copy that shares nothing with s.
func (s *State) Clone() *State {
	return &State{
		Properties: s.Properties.Clone(),
		Holdings:   s.Holdings.Clone(),
		Ledger:     s.Ledger.Clone(),
	}
}
