package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RaviKishore94/hofvidz-3.0project/internal/store"
	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

// recentHalls is how many halls the home page shows.
const recentHalls = 3

// HallsHandler handles hall CRUD endpoints.
type HallsHandler struct {
	store store.Store
}

// NewHallsHandler creates a new HallsHandler.
func NewHallsHandler(s store.Store) *HallsHandler {
	return &HallsHandler{store: s}
}

// --- Input/Output types ---

// ListHallsInput is the input for listing halls.
type ListHallsInput struct {
	Owner   string `query:"owner"    doc:"Only halls owned by this user"`
	Limit   int    `query:"limit"    doc:"Number of results" default:"50" minimum:"1" maximum:"500"`
	Offset  int    `query:"offset"   doc:"Pagination offset"              minimum:"0"`
	OrderBy string `query:"order_by" doc:"Sort field"                     enum:"created_at,updated_at,title,"`
}

// ListHallsOutput is the response for listing halls.
type ListHallsOutput struct {
	Body struct {
		Halls  []domain.Hall `json:"halls"`
		Total  int           `json:"total"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
}

// RecentHallsOutput is the response for the recent halls endpoint.
type RecentHallsOutput struct {
	Body struct {
		Halls []domain.Hall `json:"halls"`
	}
}

// HallIDInput identifies a hall.
type HallIDInput struct {
	ID string `path:"id" doc:"Hall UUID"`
}

// HallOutput is the response for a single hall.
type HallOutput struct {
	Body domain.Hall
}

// CreateHallInput is the request body for creating a hall.
type CreateHallInput struct {
	Body struct {
		Title string `json:"title"           minLength:"1" maxLength:"255" doc:"Hall title" example:"Best of Jazz"`
		Owner string `json:"owner,omitempty" maxLength:"150"               doc:"Owning user"`
	}
}

// UpdateHallInput is the request for renaming a hall.
type UpdateHallInput struct {
	ID   string `path:"id" doc:"Hall UUID"`
	Body struct {
		Title string `json:"title" minLength:"1" maxLength:"255" doc:"New hall title"`
	}
}

// --- Handlers ---

// ListHalls returns halls, newest first, optionally filtered by owner.
func (h *HallsHandler) ListHalls(ctx context.Context, input *ListHallsInput) (*ListHallsOutput, error) {
	q := &store.HallQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}
	if input.Owner != "" {
		q.Owner = &input.Owner
	}

	halls, total, err := h.store.ListHalls(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("hall query failed: " + err.Error())
	}
	if halls == nil {
		halls = []domain.Hall{}
	}

	resp := &ListHallsOutput{}
	resp.Body.Halls = halls
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// RecentHalls returns the three newest halls.
func (h *HallsHandler) RecentHalls(ctx context.Context, _ *struct{}) (*RecentHallsOutput, error) {
	halls, _, err := h.store.ListHalls(ctx, &store.HallQuery{Limit: recentHalls})
	if err != nil {
		return nil, huma.Error500InternalServerError("hall query failed: " + err.Error())
	}
	if halls == nil {
		halls = []domain.Hall{}
	}

	resp := &RecentHallsOutput{}
	resp.Body.Halls = halls
	return resp, nil
}

// GetHall returns a hall with its videos.
func (h *HallsHandler) GetHall(ctx context.Context, input *HallIDInput) (*HallOutput, error) {
	hall, err := h.store.GetHall(ctx, input.ID)
	if err != nil {
		return nil, storeError("hall", err)
	}
	return &HallOutput{Body: *hall}, nil
}

// CreateHall creates an empty hall.
func (h *HallsHandler) CreateHall(ctx context.Context, input *CreateHallInput) (*HallOutput, error) {
	hall := &domain.Hall{
		Title: input.Body.Title,
		Owner: input.Body.Owner,
	}
	if err := h.store.CreateHall(ctx, hall); err != nil {
		return nil, huma.Error500InternalServerError("creating hall: " + err.Error())
	}
	return &HallOutput{Body: *hall}, nil
}

// UpdateHall renames a hall.
func (h *HallsHandler) UpdateHall(ctx context.Context, input *UpdateHallInput) (*HallOutput, error) {
	hall := &domain.Hall{ID: input.ID, Title: input.Body.Title}
	if err := h.store.UpdateHall(ctx, hall); err != nil {
		return nil, storeError("hall", err)
	}
	return &HallOutput{Body: *hall}, nil
}

// DeleteHall removes a hall and its videos.
func (h *HallsHandler) DeleteHall(ctx context.Context, input *HallIDInput) (*struct{}, error) {
	if err := h.store.DeleteHall(ctx, input.ID); err != nil {
		return nil, storeError("hall", err)
	}
	return nil, nil
}

// storeError maps store errors to problem responses.
func storeError(what string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return huma.Error404NotFound(what + " not found")
	}
	return huma.Error500InternalServerError(what + " query failed: " + err.Error())
}

// RegisterHallRoutes registers hall endpoints with the Huma API.
func RegisterHallRoutes(api huma.API, h *HallsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-halls",
		Method:      http.MethodGet,
		Path:        "/api/v1/halls",
		Summary:     "List halls",
		Description: "Returns halls newest first, optionally filtered by owner.",
		Tags:        []string{"halls"},
	}, h.ListHalls)

	huma.Register(api, huma.Operation{
		OperationID: "recent-halls",
		Method:      http.MethodGet,
		Path:        "/api/v1/halls/recent",
		Summary:     "List recent halls",
		Description: "Returns the three most recently created halls.",
		Tags:        []string{"halls"},
	}, h.RecentHalls)

	huma.Register(api, huma.Operation{
		OperationID: "get-hall",
		Method:      http.MethodGet,
		Path:        "/api/v1/halls/{id}",
		Summary:     "Get a hall",
		Description: "Returns a hall with its videos.",
		Tags:        []string{"halls"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetHall)

	huma.Register(api, huma.Operation{
		OperationID:   "create-hall",
		Method:        http.MethodPost,
		Path:          "/api/v1/halls",
		Summary:       "Create a hall",
		Tags:          []string{"halls"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateHall)

	huma.Register(api, huma.Operation{
		OperationID: "update-hall",
		Method:      http.MethodPut,
		Path:        "/api/v1/halls/{id}",
		Summary:     "Rename a hall",
		Tags:        []string{"halls"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateHall)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-hall",
		Method:        http.MethodDelete,
		Path:          "/api/v1/halls/{id}",
		Summary:       "Delete a hall",
		Description:   "Deletes a hall and every video in it.",
		Tags:          []string{"halls"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteHall)
}
