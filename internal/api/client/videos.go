package client

import (
	"context"
	"errors"
	"net/url"

	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
	"github.com/RaviKishore94/hofvidz-3.0project/pkg/widget"
)

// ErrMissingURL is returned by a video form submitted without a url field.
var ErrMissingURL = errors.New("form has no url")

// AddVideo adds the video at rawURL to a hall.
func (c *Client) AddVideo(ctx context.Context, hallID, rawURL string) (*domain.Video, error) {
	var v domain.Video
	path := "/api/v1/halls/" + url.PathEscape(hallID) + "/videos"
	if err := c.post(ctx, path, map[string]string{"url": rawURL}, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ListVideos returns a hall's videos.
func (c *Client) ListVideos(ctx context.Context, hallID string) ([]domain.Video, error) {
	var resp struct {
		Videos []domain.Video `json:"videos"`
	}
	if err := c.get(ctx, "/api/v1/halls/"+url.PathEscape(hallID)+"/videos", &resp); err != nil {
		return nil, err
	}
	return resp.Videos, nil
}

// DeleteVideo removes a video from a hall.
func (c *Client) DeleteVideo(ctx context.Context, hallID, videoID string) error {
	path := "/api/v1/halls/" + url.PathEscape(hallID) + "/videos/" + url.PathEscape(videoID)
	return c.del(ctx, path, nil)
}

// BackfillTitles asks the server to fill in one batch of missing titles and
// returns how many were filled.
func (c *Client) BackfillTitles(ctx context.Context) (int, error) {
	var resp struct {
		Filled int `json:"filled"`
	}
	if err := c.post(ctx, "/api/v1/videos/backfill", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Filled, nil
}

// VideoForm returns a submit action for the search widget's form that adds
// the form's url field to the hall. Each added video is passed to onAdded
// when it is non-nil.
func (c *Client) VideoForm(hallID string, onAdded func(*domain.Video)) widget.SubmitFunc {
	return func(ctx context.Context, values url.Values) error {
		raw := values.Get("url")
		if raw == "" {
			return ErrMissingURL
		}
		v, err := c.AddVideo(ctx, hallID, raw)
		if err != nil {
			return err
		}
		if onAdded != nil {
			onAdded(v)
		}
		return nil
	}
}
