// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"errors"
	"testing"

	"codeberg.org/oliverandrich/polyglot/internal/models"
	"codeberg.org/oliverandrich/polyglot/internal/repository"
	"codeberg.org/oliverandrich/polyglot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.DB())
}

func TestPing(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	assert.NoError(t, repo.Ping(context.Background()))
}

func TestInTx(t *testing.T) {
	errAbort := errors.New("abort")

	tests := []struct {
		name    string
		err     error
		visible bool
	}{
		{"commit", nil, true},
		{"rollback", errAbort, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, repo := testutil.NewTestDB(t)
			ctx := context.Background()

			err := repo.InTx(ctx, func(tx *repository.Repository) error {
				page := &models.Page{Locale: "en", Slug: "pricing", Title: "Pricing"}
				require.NoError(t, tx.UpsertPage(ctx, page))
				_, err := tx.GetPage(ctx, "en", "pricing")
				require.NoError(t, err)
				return tt.err
			})
			assert.ErrorIs(t, err, tt.err)

			_, err = repo.GetPage(ctx, "en", "pricing")
			if tt.visible {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, repository.ErrNotFound)
			}
		})
	}
}
