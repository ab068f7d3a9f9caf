package domain

import (
	"errors"
	"strings"
)

var ErrNoCategories = errors.New("category set is empty")

// CategorySet is the caller-supplied set of allowed expense categories. Membership is
// case-insensitive; the configured spelling is the canonical one.
type CategorySet struct {
	names []string
}

func NewCategorySet(names ...string) CategorySet {
	var s CategorySet
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || s.Contains(n) {
			continue
		}
		s.names = append(s.names, n)
	}
	return s
}

func (s CategorySet) Validate() error {
	if len(s.names) == 0 {
		return ErrNoCategories
	}
	return nil
}

// Canonical returns the configured spelling of name and whether name is a member.
func (s CategorySet) Canonical(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, n := range s.names {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}

func (s CategorySet) Contains(name string) bool {
	_, ok := s.Canonical(name)
	return ok
}

func (s CategorySet) Names() []string {
	return append([]string(nil), s.names...)
}

func (s CategorySet) Len() int { return len(s.names) }
