package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RaviKishore94/hofvidz-3.0project/internal/youtube"
)

// QuotaHandler provides the YouTube API quota status endpoint.
type QuotaHandler struct {
	quota *youtube.QuotaLimiter
}

// NewQuotaHandler creates a new QuotaHandler.
func NewQuotaHandler(q *youtube.QuotaLimiter) *QuotaHandler {
	return &QuotaHandler{quota: q}
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyUnits int64     `json:"daily_units" example:"10000"                doc:"Configured daily quota in API units"`
		Used       int64     `json:"used"        example:"1203"                 doc:"Units spent in the current 24-hour window"`
		Remaining  int64     `json:"remaining"   example:"8797"                 doc:"Units left in the current window"`
		ResetAt    time.Time `json:"reset_at"    example:"2025-06-16T14:30:00Z" doc:"When the current 24-hour window expires"`
	}
}

// GetQuota returns the current YouTube API quota status.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.quota == nil {
		return resp, nil
	}

	resp.Body.DailyUnits = h.quota.MaxUnits()
	resp.Body.Used = h.quota.Used()
	resp.Body.Remaining = h.quota.Remaining()
	resp.Body.ResetAt = h.quota.ResetAt()

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get YouTube API quota status",
		Description: "Returns the units spent and remaining in the current 24-hour window.",
		Tags:        []string{"youtube"},
	}, h.GetQuota)
}
