// Package store defines the datastore abstraction for hofvidz.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"

	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

// ErrNotFound is returned when a hall or video does not exist.
var ErrNotFound = errors.New("not found")

// HallQuery defines optional filters for listing halls.
type HallQuery struct {
	Owner   *string
	Limit   int // default 50
	Offset  int
	OrderBy string // "created_at", "updated_at", "title"
}

// Store defines all data access operations for hofvidz.
type Store interface {
	// Halls
	CreateHall(ctx context.Context, h *domain.Hall) error
	GetHall(ctx context.Context, id string) (*domain.Hall, error)
	ListHalls(ctx context.Context, q *HallQuery) ([]domain.Hall, int, error)
	UpdateHall(ctx context.Context, h *domain.Hall) error
	DeleteHall(ctx context.Context, id string) error

	// Videos
	AddVideo(ctx context.Context, v *domain.Video) error
	ListVideos(ctx context.Context, hallID string) ([]domain.Video, error)
	DeleteVideo(ctx context.Context, hallID, id string) error
	ListUntitledVideos(ctx context.Context, limit int) ([]domain.Video, error)
	UpdateVideoTitle(ctx context.Context, id, title string) error
	MarkTitlesChecked(ctx context.Context, ids []string) error

	// Health
	Ping(ctx context.Context) error
}
