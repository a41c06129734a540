// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package locale

import (
	"errors"
	"fmt"
	"slices"
)

// ErrConfiguration is returned when a Set cannot be built from the given locales.
var ErrConfiguration = errors.New("locale: invalid configuration")

// Set is the immutable collection of locales a deployment serves.
// It is built once at startup and shared by pointer.
type Set struct {
	index map[Tag]struct{}
	def   Tag
	tags  []Tag
}

// NewSet builds a Set from tags with def as the default locale.
// Duplicate tags are collapsed, keeping the first position.
func NewSet(tags []Tag, def Tag) (*Set, error) {
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: no supported locales", ErrConfiguration)
	}

	s := &Set{
		index: make(map[Tag]struct{}, len(tags)),
		def:   def,
		tags:  make([]Tag, 0, len(tags)),
	}
	for _, tag := range tags {
		if tag == "" {
			return nil, fmt.Errorf("%w: empty locale", ErrConfiguration)
		}
		if _, dup := s.index[tag]; dup {
			continue
		}
		s.index[tag] = struct{}{}
		s.tags = append(s.tags, tag)
	}

	if _, ok := s.index[def]; !ok {
		return nil, fmt.Errorf("%w: default locale %q is not supported", ErrConfiguration, def)
	}

	return s, nil
}

// ParseSet canonicalizes raw and def with Parse and calls NewSet.
func ParseSet(raw []string, def string) (*Set, error) {
	tags := make([]Tag, 0, len(raw))
	for _, r := range raw {
		tags = append(tags, Parse(r))
	}
	return NewSet(tags, Parse(def))
}

// Contains reports whether tag is supported.
func (s *Set) Contains(tag Tag) bool {
	_, ok := s.index[tag]
	return ok
}

// Default returns the configured default locale.
func (s *Set) Default() Tag {
	return s.def
}

// Tags returns the supported locales in configured order.
func (s *Set) Tags() []Tag {
	return slices.Clone(s.tags)
}
