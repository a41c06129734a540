// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package locale_test

import (
	"testing"

	"codeberg.org/oliverandrich/polyglot/internal/locale"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw      string
		expected locale.Tag
	}{
		{"en", "en"},
		{"EN", "en"},
		{"en-US", "en"},
		{"zh-Hant-TW", "zh"},
		{"Fr-ca", "fr"},
		{" de ", "de"},
		{"xx", "xx"},
		{"*", "*"},
		{"", ""},
		{"-US", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, locale.Parse(tt.raw))
		})
	}
}

func TestParse_EqualityIgnoresRegion(t *testing.T) {
	assert.Equal(t, locale.Parse("en-GB"), locale.Parse("en-US"))
}

func TestTag_Name(t *testing.T) {
	assert.Equal(t, "Français", locale.Tag("fr").Name())
	assert.Equal(t, "xx", locale.Tag("xx").Name())
}

func TestTag_Dir(t *testing.T) {
	assert.Equal(t, locale.RTL, locale.Tag("he").Dir())
	assert.Equal(t, locale.LTR, locale.Tag("en").Dir())
	assert.Equal(t, locale.LTR, locale.Tag("xx").Dir())
}

func TestTag_Language(t *testing.T) {
	assert.Equal(t, language.German, locale.Tag("de").Language())
	assert.Equal(t, language.Und, locale.Tag("!!").Language())
}
