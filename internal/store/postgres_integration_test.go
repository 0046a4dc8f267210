//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/RaviKishore94/hofvidz-3.0project/internal/store"
	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("hofvidz_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	require.NoError(t, s.Migrate(ctx))
	// Second run is a no-op.
	require.NoError(t, s.Migrate(ctx))

	return s
}

func createHall(t *testing.T, s *store.PostgresStore, title, owner string) *domain.Hall {
	t.Helper()
	h := &domain.Hall{Title: title, Owner: owner}
	require.NoError(t, s.CreateHall(context.Background(), h))
	return h
}

func TestPostgresStore(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))

	t.Run("create and get hall", func(t *testing.T) {
		h := createHall(t, s, "Best of Jazz", "ravi")
		assert.NotEmpty(t, h.ID)
		assert.False(t, h.CreatedAt.IsZero())

		got, err := s.GetHall(ctx, h.ID)
		require.NoError(t, err)
		assert.Equal(t, "Best of Jazz", got.Title)
		assert.Equal(t, "ravi", got.Owner)
		assert.Empty(t, got.Videos)
	})

	t.Run("get missing hall", func(t *testing.T) {
		_, err := s.GetHall(ctx, "00000000-0000-0000-0000-000000000000")
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.GetHall(ctx, "not-a-uuid")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update hall", func(t *testing.T) {
		h := createHall(t, s, "Old", "ann")
		h.Title = "New"
		h.Owner = "someone else"
		require.NoError(t, s.UpdateHall(ctx, h))
		assert.Equal(t, "ann", h.Owner)

		got, err := s.GetHall(ctx, h.ID)
		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)

		err = s.UpdateHall(ctx, &domain.Hall{ID: "00000000-0000-0000-0000-000000000000", Title: "x"})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("videos", func(t *testing.T) {
		h := createHall(t, s, "Videos", "ravi")

		v1 := &domain.Video{
			HallID:    h.ID,
			URL:       domain.WatchURL("dQw4w9WgXcQ"),
			YouTubeID: "dQw4w9WgXcQ",
			Title:     "Never Gonna Give You Up",
		}
		require.NoError(t, s.AddVideo(ctx, v1))
		v2 := &domain.Video{HallID: h.ID, URL: domain.WatchURL("9bZkp7q19f0"), YouTubeID: "9bZkp7q19f0"}
		require.NoError(t, s.AddVideo(ctx, v2))

		videos, err := s.ListVideos(ctx, h.ID)
		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, v1.ID, videos[0].ID)

		got, err := s.GetHall(ctx, h.ID)
		require.NoError(t, err)
		assert.Len(t, got.Videos, 2)

		untitled, err := s.ListUntitledVideos(ctx, 10)
		require.NoError(t, err)
		require.NotEmpty(t, untitled)
		ids := make([]string, 0, len(untitled))
		for _, v := range untitled {
			ids = append(ids, v.ID)
		}
		assert.Contains(t, ids, v2.ID)
		assert.NotContains(t, ids, v1.ID)

		require.NoError(t, s.UpdateVideoTitle(ctx, v2.ID, "Gangnam Style"))
		untitled, err = s.ListUntitledVideos(ctx, 10)
		require.NoError(t, err)
		for _, v := range untitled {
			assert.NotEqual(t, v2.ID, v.ID)
		}

		require.NoError(t, s.DeleteVideo(ctx, h.ID, v1.ID))
		require.ErrorIs(t, s.DeleteVideo(ctx, h.ID, v1.ID), store.ErrNotFound)
	})

	t.Run("checked untitled videos go to the back", func(t *testing.T) {
		h := createHall(t, s, "Backfill", "ravi")

		older := &domain.Video{HallID: h.ID, URL: domain.WatchURL("gone0000001"), YouTubeID: "gone0000001"}
		require.NoError(t, s.AddVideo(ctx, older))
		newer := &domain.Video{HallID: h.ID, URL: domain.WatchURL("jNQXAC9IVRw"), YouTubeID: "jNQXAC9IVRw"}
		require.NoError(t, s.AddVideo(ctx, newer))

		require.NoError(t, s.MarkTitlesChecked(ctx, []string{older.ID}))
		require.NoError(t, s.MarkTitlesChecked(ctx, nil))

		untitled, err := s.ListUntitledVideos(ctx, 100)
		require.NoError(t, err)
		pos := map[string]int{}
		for i, v := range untitled {
			pos[v.ID] = i
		}
		require.Contains(t, pos, older.ID)
		require.Contains(t, pos, newer.ID)
		assert.Less(t, pos[newer.ID], pos[older.ID])
	})

	t.Run("add video to missing hall", func(t *testing.T) {
		err := s.AddVideo(ctx, &domain.Video{
			HallID:    "00000000-0000-0000-0000-000000000000",
			URL:       domain.WatchURL("dQw4w9WgXcQ"),
			YouTubeID: "dQw4w9WgXcQ",
		})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list halls", func(t *testing.T) {
		for _, title := range []string{"a", "b", "c", "d"} {
			createHall(t, s, title, "lister")
		}

		owner := "lister"
		halls, total, err := s.ListHalls(ctx, &store.HallQuery{Owner: &owner})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		require.Len(t, halls, 4)
		assert.Equal(t, "d", halls[0].Title)

		recent, _, err := s.ListHalls(ctx, &store.HallQuery{Limit: 3})
		require.NoError(t, err)
		assert.Len(t, recent, 3)
	})

	t.Run("delete hall cascades", func(t *testing.T) {
		h := createHall(t, s, "Doomed", "ravi")
		v := &domain.Video{HallID: h.ID, URL: domain.WatchURL("dQw4w9WgXcQ"), YouTubeID: "dQw4w9WgXcQ"}
		require.NoError(t, s.AddVideo(ctx, v))

		require.NoError(t, s.DeleteHall(ctx, h.ID))
		require.ErrorIs(t, s.DeleteHall(ctx, h.ID), store.ErrNotFound)
		require.ErrorIs(t, s.UpdateVideoTitle(ctx, v.ID, "x"), store.ErrNotFound)
	})
}
