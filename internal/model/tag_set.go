package model

import "slices"

// TagSet — unordered set of capability tokens ("grasp", "armor", "left_hand", ...).
// Items declare the tags they require; body parts declare the tags they provide.
type TagSet map[string]struct{}

// NewTagSet builds a fresh set from the given tags.
// Always allocates, even for zero tags, so two parts never alias one container.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Add inserts a tag into the set.
func (s TagSet) Add(tag string) {
	s[tag] = struct{}{}
}

// Remove deletes a tag from the set (no-op if absent).
func (s TagSet) Remove(tag string) {
	delete(s, tag)
}

// Has returns true if the tag is present.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// ContainsAll returns true if every tag in required is present in s.
// An empty or nil required set is trivially satisfied.
func (s TagSet) ContainsAll(required TagSet) bool {
	for t := range required {
		if !s.Has(t) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (s TagSet) Clone() TagSet {
	c := make(TagSet, len(s))
	for t := range s {
		c[t] = struct{}{}
	}
	return c
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int {
	return len(s)
}

// Values returns the tags sorted alphabetically (stable order for logs and tests).
func (s TagSet) Values() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
