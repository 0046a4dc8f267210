package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

// PostgreSQL error codes.
const (
	foreignKeyViolation       = "23503"
	invalidTextRepresentation = "22P02" // malformed UUID
)

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling. The
// pool size comes from pool_max_conns in connString.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateHall inserts a hall and fills in its generated fields.
func (s *PostgresStore) CreateHall(ctx context.Context, h *domain.Hall) error {
	args := pgx.NamedArgs{
		"title": h.Title,
		"owner": h.Owner,
	}

	if err := s.pool.QueryRow(ctx, queryCreateHall, args).Scan(
		&h.ID, &h.CreatedAt, &h.UpdatedAt,
	); err != nil {
		return fmt.Errorf("creating hall: %w", err)
	}
	return nil
}

// GetHall retrieves a hall and its videos.
func (s *PostgresStore) GetHall(ctx context.Context, id string) (*domain.Hall, error) {
	h := &domain.Hall{}
	err := s.pool.QueryRow(ctx, queryGetHall, id).Scan(
		&h.ID, &h.Title, &h.Owner, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(fmt.Sprintf("hall %s", id), err)
	}

	videos, err := s.ListVideos(ctx, id)
	if err != nil {
		return nil, err
	}
	h.Videos = videos
	return h, nil
}

// ListHalls queries halls with optional filters, returning results and total
// count. Videos are not loaded.
func (s *PostgresStore) ListHalls(ctx context.Context, q *HallQuery) ([]domain.Hall, int, error) {
	if q == nil {
		q = &HallQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting halls: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying halls: %w", err)
	}
	defer rows.Close()

	var halls []domain.Hall
	for rows.Next() {
		var h domain.Hall
		if err := rows.Scan(&h.ID, &h.Title, &h.Owner, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scanning hall: %w", err)
		}
		halls = append(halls, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating halls: %w", err)
	}

	return halls, total, nil
}

// UpdateHall renames a hall. Owner and creation time are read back into h.
func (s *PostgresStore) UpdateHall(ctx context.Context, h *domain.Hall) error {
	args := pgx.NamedArgs{
		"id":    h.ID,
		"title": h.Title,
	}

	if err := s.pool.QueryRow(ctx, queryUpdateHall, args).Scan(
		&h.Owner, &h.CreatedAt, &h.UpdatedAt,
	); err != nil {
		return notFound(fmt.Sprintf("hall %s", h.ID), err)
	}
	return nil
}

// DeleteHall removes a hall and, by cascade, its videos.
func (s *PostgresStore) DeleteHall(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteHall, id)
	if err != nil {
		return notFound(fmt.Sprintf("hall %s", id), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("hall %s: %w", id, ErrNotFound)
	}
	return nil
}

// AddVideo inserts a video into its hall and fills in the generated fields.
func (s *PostgresStore) AddVideo(ctx context.Context, v *domain.Video) error {
	args := pgx.NamedArgs{
		"hall_id":    v.HallID,
		"url":        v.URL,
		"youtube_id": v.YouTubeID,
		"title":      v.Title,
	}

	if err := s.pool.QueryRow(ctx, queryAddVideo, args).Scan(&v.ID, &v.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return fmt.Errorf("hall %s: %w", v.HallID, ErrNotFound)
		}
		return notFound(fmt.Sprintf("hall %s", v.HallID), err)
	}
	return nil
}

// ListVideos returns a hall's videos, oldest first.
func (s *PostgresStore) ListVideos(ctx context.Context, hallID string) ([]domain.Video, error) {
	rows, err := s.pool.Query(ctx, queryListVideos, hallID)
	if err != nil {
		return nil, notFound(fmt.Sprintf("hall %s", hallID), err)
	}
	videos, err := collectVideos(rows)
	if err != nil {
		return nil, notFound(fmt.Sprintf("hall %s", hallID), err)
	}
	return videos, nil
}

// DeleteVideo removes a video from a hall.
func (s *PostgresStore) DeleteVideo(ctx context.Context, hallID, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteVideo, hallID, id)
	if err != nil {
		return notFound(fmt.Sprintf("video %s", id), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("video %s in hall %s: %w", id, hallID, ErrNotFound)
	}
	return nil
}

// ListUntitledVideos returns up to limit videos whose title lookup has not
// succeeded yet. Videos never looked up come first, then those checked least
// recently, so unknown videos do not hold back newer ones.
func (s *PostgresStore) ListUntitledVideos(ctx context.Context, limit int) ([]domain.Video, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.pool.Query(ctx, queryListUntitledVideos, limit)
	if err != nil {
		return nil, fmt.Errorf("querying untitled videos: %w", err)
	}
	return collectVideos(rows)
}

// UpdateVideoTitle sets a video's title.
func (s *PostgresStore) UpdateVideoTitle(ctx context.Context, id, title string) error {
	tag, err := s.pool.Exec(ctx, queryUpdateVideoTitle, id, title)
	if err != nil {
		return notFound(fmt.Sprintf("video %s", id), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("video %s: %w", id, ErrNotFound)
	}
	return nil
}

// MarkTitlesChecked records a title lookup attempt for the given videos.
func (s *PostgresStore) MarkTitlesChecked(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := s.pool.Exec(ctx, queryMarkTitlesChecked, ids); err != nil {
		return fmt.Errorf("marking %d videos checked: %w", len(ids), err)
	}
	return nil
}

func collectVideos(rows pgx.Rows) ([]domain.Video, error) {
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		var v domain.Video
		if err := rows.Scan(&v.ID, &v.HallID, &v.URL, &v.YouTubeID, &v.Title, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning video: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating videos: %w", err)
	}
	return videos, nil
}

// notFound maps missing rows and malformed ids to ErrNotFound and wraps
// everything else with what.
func notFound(what string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}
