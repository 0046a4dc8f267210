package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RaviKishore94/hofvidz-3.0project/internal/store"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/youtube"
	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

// InvalidVideoURLMessage is returned when an added URL is not a YouTube video.
const InvalidVideoURLMessage = "Needs to be a valid YouTube Url"

// VideoAdder adds a video to a hall by URL.
type VideoAdder interface {
	AddVideo(ctx context.Context, hallID, rawURL string) (*domain.Video, error)
}

// TitleBackfiller fills in missing video titles.
type TitleBackfiller interface {
	BackfillTitles(ctx context.Context) (int, error)
}

// VideosHandler handles the videos in a hall.
type VideosHandler struct {
	store    store.Store
	adder    VideoAdder
	backfill TitleBackfiller
}

// NewVideosHandler creates a new VideosHandler.
func NewVideosHandler(s store.Store, a VideoAdder, b TitleBackfiller) *VideosHandler {
	return &VideosHandler{store: s, adder: a, backfill: b}
}

// --- Input/Output types ---

// AddVideoInput is the request for adding a video to a hall.
type AddVideoInput struct {
	ID   string `path:"id" doc:"Hall UUID"`
	Body struct {
		URL string `json:"url" minLength:"1" maxLength:"200" doc:"YouTube watch URL" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
	}
}

// VideoOutput is the response for a single video.
type VideoOutput struct {
	Body domain.Video
}

// ListVideosOutput is the response for listing a hall's videos.
type ListVideosOutput struct {
	Body struct {
		Videos []domain.Video `json:"videos"`
	}
}

// DeleteVideoInput identifies a video in a hall.
type DeleteVideoInput struct {
	ID      string `path:"id"       doc:"Hall UUID"`
	VideoID string `path:"video_id" doc:"Video UUID"`
}

// BackfillOutput is the response for the title backfill trigger.
type BackfillOutput struct {
	Body struct {
		Status string `json:"status" example:"backfill completed" doc:"Backfill status"`
		Filled int    `json:"filled" example:"3"                  doc:"Titles filled in"`
	}
}

// --- Handlers ---

// AddVideo adds the video at the given URL to the hall.
func (h *VideosHandler) AddVideo(ctx context.Context, input *AddVideoInput) (*VideoOutput, error) {
	v, err := h.adder.AddVideo(ctx, input.ID, input.Body.URL)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, huma.Error404NotFound("hall not found")
		case errors.Is(err, youtube.ErrInvalidURL):
			return nil, huma.Error422UnprocessableEntity(InvalidVideoURLMessage)
		default:
			return nil, huma.Error500InternalServerError("adding video: " + err.Error())
		}
	}
	return &VideoOutput{Body: *v}, nil
}

// ListVideos returns a hall's videos, oldest first.
func (h *VideosHandler) ListVideos(ctx context.Context, input *HallIDInput) (*ListVideosOutput, error) {
	if _, err := h.store.GetHall(ctx, input.ID); err != nil {
		return nil, storeError("hall", err)
	}
	videos, err := h.store.ListVideos(ctx, input.ID)
	if err != nil {
		return nil, storeError("hall", err)
	}
	if videos == nil {
		videos = []domain.Video{}
	}

	resp := &ListVideosOutput{}
	resp.Body.Videos = videos
	return resp, nil
}

// DeleteVideo removes a video from a hall.
func (h *VideosHandler) DeleteVideo(ctx context.Context, input *DeleteVideoInput) (*struct{}, error) {
	if err := h.store.DeleteVideo(ctx, input.ID, input.VideoID); err != nil {
		return nil, storeError("video", err)
	}
	return nil, nil
}

// Backfill runs one title backfill batch now.
func (h *VideosHandler) Backfill(ctx context.Context, _ *struct{}) (*BackfillOutput, error) {
	n, err := h.backfill.BackfillTitles(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("title backfill failed: " + err.Error())
	}

	resp := &BackfillOutput{}
	resp.Body.Status = "backfill completed"
	resp.Body.Filled = n
	return resp, nil
}

// RegisterVideoRoutes registers video endpoints with the Huma API.
func RegisterVideoRoutes(api huma.API, h *VideosHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "add-video",
		Method:        http.MethodPost,
		Path:          "/api/v1/halls/{id}/videos",
		Summary:       "Add a video to a hall",
		Description:   "Parses the YouTube URL, looks up the title and stores the video.",
		Tags:          []string{"videos"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.AddVideo)

	huma.Register(api, huma.Operation{
		OperationID: "list-videos",
		Method:      http.MethodGet,
		Path:        "/api/v1/halls/{id}/videos",
		Summary:     "List a hall's videos",
		Tags:        []string{"videos"},
		Errors:      []int{http.StatusNotFound},
	}, h.ListVideos)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-video",
		Method:        http.MethodDelete,
		Path:          "/api/v1/halls/{id}/videos/{video_id}",
		Summary:       "Remove a video from a hall",
		Tags:          []string{"videos"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteVideo)

	huma.Register(api, huma.Operation{
		OperationID: "backfill-titles",
		Method:      http.MethodPost,
		Path:        "/api/v1/videos/backfill",
		Summary:     "Backfill missing video titles",
		Description: "Looks up titles for one batch of videos stored without one.",
		Tags:        []string{"videos"},
	}, h.Backfill)
}
