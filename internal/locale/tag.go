// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package locale resolves the language of a request from its path prefix and
// the Accept-Language header.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Tag is a canonical primary language subtag such as "en" or "fr".
type Tag string

// Writing directions used for the HTML dir attribute.
const (
	LTR = "ltr"
	RTL = "rtl"
)

type tagInfo struct {
	name string
	dir  string
}

// known is the single mapping table from tags to display metadata.
var known = map[Tag]tagInfo{
	"ar": {"العربية", RTL},
	"de": {"Deutsch", LTR},
	"en": {"English", LTR},
	"es": {"Español", LTR},
	"fa": {"فارسی", RTL},
	"fr": {"Français", LTR},
	"he": {"עברית", RTL},
	"it": {"Italiano", LTR},
	"ja": {"日本語", LTR},
	"nl": {"Nederlands", LTR},
	"pl": {"Polski", LTR},
	"pt": {"Português", LTR},
	"ru": {"Русский", LTR},
	"uk": {"Українська", LTR},
	"zh": {"中文", LTR},
}

// Parse canonicalizes raw into a Tag. Everything after the first "-" is
// discarded and the result is lower-cased. Parse never fails; whether the
// tag is supported is decided by a Set.
func Parse(raw string) Tag {
	primary, _, _ := strings.Cut(strings.TrimSpace(raw), "-")
	return Tag(strings.ToLower(primary))
}

func (t Tag) String() string {
	return string(t)
}

// Name returns the endonym of the language, or the code itself when unknown.
func (t Tag) Name() string {
	if info, ok := known[t]; ok {
		return info.name
	}
	return string(t)
}

// Dir returns the writing direction of the language.
func (t Tag) Dir() string {
	if info, ok := known[t]; ok {
		return info.dir
	}
	return LTR
}

// Language converts the tag for use with golang.org/x/text based libraries.
// Tags that x/text cannot parse map to language.Und.
func (t Tag) Language() language.Tag {
	tag, err := language.Parse(string(t))
	if err != nil {
		return language.Und
	}
	return tag
}
