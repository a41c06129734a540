// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package locale_test

import (
	"context"
	"testing"

	"codeberg.org/oliverandrich/polyglot/internal/locale"
	"github.com/stretchr/testify/assert"
)

func TestContext(t *testing.T) {
	ctx := locale.NewContext(context.Background(), "fr")

	tag, ok := locale.FromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, locale.Tag("fr"), tag)
}

func TestFromContext_Missing(t *testing.T) {
	tag, ok := locale.FromContext(context.Background())

	assert.False(t, ok)
	assert.Empty(t, tag)
}
