package calendar

import "sort"

// Set is a set of calendar days keyed by their ISO string.
type Set map[string]struct{}

func NewSet(days ...Date) Set {
	s := make(Set, len(days))
	for _, d := range days {
		s.Add(d)
	}
	return s
}

func (s Set) Add(d Date) {
	s[d.String()] = struct{}{}
}

func (s Set) Has(d Date) bool {
	_, ok := s[d.String()]
	return ok
}

func (s Set) Len() int { return len(s) }

// IntersectsRange reports whether any occupied night of r is in the set.
func (s Set) IntersectsRange(r Range) bool {
	for _, d := range r.Days() {
		if s.Has(d) {
			return true
		}
	}
	return false
}

// Strings returns the day strings in ascending order.
func (s Set) Strings() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SetFromStrings rebuilds a set from ISO day strings, skipping malformed entries.
func SetFromStrings(days []string) Set {
	s := make(Set, len(days))
	for _, raw := range days {
		if d, err := Parse(raw); err == nil {
			s.Add(d)
		}
	}
	return s
}
