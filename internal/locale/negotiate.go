// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package locale

import (
	"iter"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength bounds the work done for a single header.
const maxAcceptLanguageLength = 4096

// Entry is one unit of an Accept-Language header.
type Entry struct {
	Raw     string
	Tag     Tag
	Quality float64
}

// ParseAcceptLanguage yields the entries of an Accept-Language header in the
// order the client listed them. Empty units and units with an unparsable or
// out-of-range quality are skipped.
func ParseAcceptLanguage(header string) iter.Seq[Entry] {
	header = truncateAcceptLanguage(header)

	return func(yield func(Entry) bool) {
		for unit := range strings.SplitSeq(header, ",") {
			raw, params, _ := strings.Cut(unit, ";")
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}

			q, ok := parseQuality(params)
			if !ok {
				continue
			}

			if !yield(Entry{Raw: raw, Tag: Parse(raw), Quality: q}) {
				return
			}
		}
	}
}

// truncateAcceptLanguage cuts header to maxAcceptLanguageLength bytes and
// drops the entry the cut went through, so no entry loses its quality or
// part of its tag.
func truncateAcceptLanguage(header string) string {
	if len(header) <= maxAcceptLanguageLength {
		return header
	}
	if header[maxAcceptLanguageLength] == ',' {
		return header[:maxAcceptLanguageLength]
	}
	cut := header[:maxAcceptLanguageLength]
	i := strings.LastIndexByte(cut, ',')
	if i < 0 {
		return ""
	}
	return cut[:i]
}

// parseQuality extracts the q parameter from the part of a unit after the
// first ";". A missing q means 1.0.
func parseQuality(params string) (float64, bool) {
	for param := range strings.SplitSeq(params, ";") {
		key, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}

		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || q < 0 || q > 1 {
			return 0, false
		}
		return q, true
	}
	return 1.0, true
}

// Negotiate picks the supported locale the client prefers most.
//
// The highest quality wins and ties go to the entry listed first. A supported
// entry with quality 1.0 ends the scan. Entries with quality 0 are rejections
// and never match. The boolean is false when the header names no supported
// locale at all.
func Negotiate(header string, set *Set) (Tag, bool) {
	var (
		best    Tag
		bestQ   float64
		matched bool
	)

	for entry := range ParseAcceptLanguage(header) {
		if entry.Quality == 0 || !set.Contains(entry.Tag) {
			continue
		}
		if entry.Quality == 1.0 {
			return entry.Tag, true
		}
		if !matched || entry.Quality > bestQ {
			best, bestQ, matched = entry.Tag, entry.Quality, true
		}
	}

	return best, matched
}

// Resolve is Negotiate with a fallback to the default locale of set.
func Resolve(header string, set *Set) Tag {
	if tag, ok := Negotiate(header, set); ok {
		return tag
	}
	return set.Default()
}
