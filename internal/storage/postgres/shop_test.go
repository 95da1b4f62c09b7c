package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyxi/pethatch/internal/game/item"
	"github.com/tinyxi/pethatch/internal/storage/postgres"
	"github.com/tinyxi/pethatch/internal/testutil"
)

func TestShopRepository_SeedAndCatalog(t *testing.T) {
	repo := postgres.NewShopRepository(testutil.NewPool(t))
	ctx := context.Background()

	stock := item.DefaultCatalog().Items()
	require.NoError(t, repo.Seed(ctx, stock))

	got, err := repo.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, stock, got, "catalog must come back in seed order")
}

func TestShopRepository_SeedIsIdempotent(t *testing.T) {
	repo := postgres.NewShopRepository(testutil.NewPool(t))
	ctx := context.Background()

	stock := item.DefaultCatalog().Items()
	require.NoError(t, repo.Seed(ctx, stock))

	// Reseeding with a changed price updates in place.
	stock[0].Price = 12
	require.NoError(t, repo.Seed(ctx, stock))

	got, err := repo.Catalog(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(stock))
	assert.Equal(t, 12, got[0].Price)
}

func TestShopRepository_EmptyCatalog(t *testing.T) {
	repo := postgres.NewShopRepository(testutil.NewPool(t))

	got, err := repo.Catalog(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
