package integration

import (
	"context"
	"testing"
	"time"

	"dining-planner/internal/ingest"
	"dining-planner/internal/model"
	"dining-planner/internal/repository"
	"dining-planner/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedCatalog_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := repository.NewCachedCatalog(repository.NewCatalogRepository(testDB.Pool, logger), client, time.Minute, logger)

	t.Run("listing is served from the cache until a write", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		mr.FlushAll()
		SeedCatalog(t, testDB.Pool)

		items, err := repo.GetCatalog(ctx, "Grill House")
		require.NoError(t, err)
		assert.Len(t, items, 5)
		assert.True(t, mr.Exists("catalog:location:grill house"))

		// A write behind the cache's back is not visible yet.
		_, err = testDB.Pool.Exec(ctx, "DELETE FROM food_items WHERE id = 'salad'")
		require.NoError(t, err)

		items, err = repo.GetCatalog(ctx, "Grill House")
		require.NoError(t, err)
		assert.Len(t, items, 5)

		deleted, err := repo.Delete(ctx, "tofu")
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.False(t, mr.Exists("catalog:location:grill house"))

		items, err = repo.GetCatalog(ctx, "Grill House")
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("import through the service evicts cached listings", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		mr.FlushAll()

		items, err := repo.GetCatalog(ctx, "Cafe Ventanas")
		require.NoError(t, err)
		assert.Empty(t, items)

		importService := service.NewImportService(ingest.NewImporter(ingest.NewFileLoader(logger), nil, logger), repo, 0, logger)
		reports, err := importService.Import(ctx, &model.ImportRequest{
			Files: []string{WriteExport(t, "cafe_ventanas.tsv", cafeExport)},
		})
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, 2, reports[0].Stored)

		items, err = repo.GetCatalog(ctx, "Cafe Ventanas")
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("plan items resolve through the cached repository", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		mr.FlushAll()
		SeedCatalog(t, testDB.Pool)

		planRepo := repository.NewPlanRepository(testDB.Pool, logger)
		profileRepo := repository.NewProfileRepository(testDB.Pool, logger)
		planService := service.NewPlanService(planRepo, repo, profileRepo, logger)

		saved, err := planService.Save(ctx, &model.SavePlanRequest{UserID: "u1", Date: "2026-03-02", Items: []string{"steak", "latte"}})
		require.NoError(t, err)
		assert.Equal(t, 18.25, saved.Totals.Cost)

		got, err := planService.Get(ctx, "u1", "2026-03-02")
		require.NoError(t, err)
		assert.Equal(t, []string{"steak", "latte"}, itemIDs(got.Items))
	})
}
