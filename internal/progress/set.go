package progress

import (
	"encoding/json"
	"sort"
)

// Set is an unordered collection of catalog item ids. It serializes as a
// sorted JSON array.
type Set map[string]struct{}

func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle adds id when absent and removes it when present. It reports
// whether id is a member afterwards.
func (s *Set) Toggle(id string) bool {
	if *s == nil {
		*s = make(Set)
	}
	if _, ok := (*s)[id]; ok {
		delete(*s, id)
		return false
	}
	(*s)[id] = struct{}{}
	return true
}

// Slice returns the members in ascending order.
func (s Set) Slice() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewSet(ids...)
	return nil
}
