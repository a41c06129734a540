// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package locale

import "strings"

// Classification is the outcome of inspecting the first path segment.
type Classification struct {
	// Tag is the canonical form of the first segment, supported or not.
	Tag Tag
	// Rest is the path after the locale segment, always starting with "/".
	// It is only meaningful when Guarded is true.
	Rest    string
	Guarded bool
}

// Classify reports whether path starts with a supported locale segment.
func (s *Set) Classify(path string) Classification {
	trimmed := strings.TrimPrefix(path, "/")
	segment, rest, _ := strings.Cut(trimmed, "/")

	tag := Parse(segment)
	if !s.Contains(tag) {
		return Classification{Tag: tag}
	}

	return Classification{
		Tag:     tag,
		Rest:    "/" + rest,
		Guarded: true,
	}
}
