package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RaviKishore94/hofvidz-3.0project/internal/api/handlers"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/store"
	storeMocks "github.com/RaviKishore94/hofvidz-3.0project/internal/store/mocks"
	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

const hallID = "7d2f9c1e-4b7a-4c1e-9f0a-3e2b1c0d9a8f"

func newHallsAPI(t *testing.T, s store.Store) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterHallRoutes(api, handlers.NewHallsHandler(s))
	return api
}

func TestHallsHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "no filters returns halls",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListHalls(mock.Anything, mock.MatchedBy(func(q *store.HallQuery) bool {
						return q.Owner == nil && q.Limit == 50
					})).
					Return([]domain.Hall{{ID: hallID, Title: "Best of Jazz"}}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name:  "owner filter",
			query: "?owner=ravi",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListHalls(mock.Anything, mock.MatchedBy(func(q *store.HallQuery) bool {
						return q.Owner != nil && *q.Owner == "ravi"
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"halls":[]`,
		},
		{
			name:  "pagination params",
			query: "?limit=10&offset=20&order_by=title",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListHalls(mock.Anything, mock.MatchedBy(func(q *store.HallQuery) bool {
						return q.Limit == 10 && q.Offset == 20 && q.OrderBy == "title"
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"limit":10`,
		},
		{
			name:       "limit out of range returns 422",
			query:      "?limit=1000",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown order_by returns 422",
			query:      "?order_by=views",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "store error returns 500",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListHalls(mock.Anything, mock.Anything).
					Return(nil, 0, assert.AnError).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "hall query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockStore := storeMocks.NewMockStore(t)
			tt.setupMock(mockStore)

			resp := newHallsAPI(t, mockStore).Get("/api/v1/halls" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHallsHandler_Recent(t *testing.T) {
	t.Parallel()

	mockStore := storeMocks.NewMockStore(t)
	mockStore.EXPECT().
		ListHalls(mock.Anything, mock.MatchedBy(func(q *store.HallQuery) bool {
			return q.Limit == 3 && q.Owner == nil
		})).
		Return([]domain.Hall{{ID: "h3"}, {ID: "h2"}, {ID: "h1"}}, 7, nil).
		Once()

	resp := newHallsAPI(t, mockStore).Get("/api/v1/halls/recent")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"id":"h3"`)
}

func TestHallsHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found returns hall with videos",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetHall(mock.Anything, hallID).
					Return(&domain.Hall{
						ID:    hallID,
						Title: "Best of Jazz",
						Videos: []domain.Video{
							{ID: "v1", YouTubeID: "dQw4w9WgXcQ", Title: "So What"},
						},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"youtube_id":"dQw4w9WgXcQ"`,
		},
		{
			name: "not found returns 404",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetHall(mock.Anything, hallID).
					Return(nil, store.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "hall not found",
		},
		{
			name: "store error returns 500",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetHall(mock.Anything, hallID).
					Return(nil, assert.AnError).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockStore := storeMocks.NewMockStore(t)
			tt.setupMock(mockStore)

			resp := newHallsAPI(t, mockStore).Get("/api/v1/halls/" + hallID)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHallsHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid hall returns 201",
			body: map[string]any{"title": "Best of Jazz", "owner": "ravi"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateHall(mock.Anything, mock.MatchedBy(func(h *domain.Hall) bool {
						return h.Title == "Best of Jazz" && h.Owner == "ravi"
					})).
					Run(func(_ context.Context, h *domain.Hall) {
						h.ID = hallID
					}).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   hallID,
		},
		{
			name:       "empty title returns 422",
			body:       map[string]any{"title": ""},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "expected length >= 1",
		},
		{
			name:       "missing title returns 422",
			body:       map[string]any{"owner": "ravi"},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store error returns 500",
			body: map[string]any{"title": "x"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateHall(mock.Anything, mock.Anything).
					Return(assert.AnError).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockStore := storeMocks.NewMockStore(t)
			tt.setupMock(mockStore)

			resp := newHallsAPI(t, mockStore).Post("/api/v1/halls", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHallsHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("renames hall", func(t *testing.T) {
		t.Parallel()

		mockStore := storeMocks.NewMockStore(t)
		mockStore.EXPECT().
			UpdateHall(mock.Anything, mock.MatchedBy(func(h *domain.Hall) bool {
				return h.ID == hallID && h.Title == "Cool Jazz"
			})).
			Return(nil).
			Once()

		resp := newHallsAPI(t, mockStore).Put("/api/v1/halls/"+hallID, map[string]any{"title": "Cool Jazz"})
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"title":"Cool Jazz"`)
	})

	t.Run("missing hall returns 404", func(t *testing.T) {
		t.Parallel()

		mockStore := storeMocks.NewMockStore(t)
		mockStore.EXPECT().
			UpdateHall(mock.Anything, mock.Anything).
			Return(store.ErrNotFound).
			Once()

		resp := newHallsAPI(t, mockStore).Put("/api/v1/halls/"+hallID, map[string]any{"title": "Cool Jazz"})
		require.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestHallsHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted returns 204", wantStatus: http.StatusNoContent},
		{name: "missing returns 404", err: store.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "store error returns 500", err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockStore := storeMocks.NewMockStore(t)
			mockStore.EXPECT().DeleteHall(mock.Anything, hallID).Return(tt.err).Once()

			resp := newHallsAPI(t, mockStore).Delete("/api/v1/halls/" + hallID)
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}
