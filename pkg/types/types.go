// Package domain defines the core types shared by the hofvidz server,
// the search widget and the CLI.
package domain

import (
	"strings"
	"time"
)

const (
	watchURLPrefix = "https://www.youtube.com/watch?v="
	embedURLPrefix = "https://www.youtube.com/embed/"
)

// SearchResponse is the body of GET /video/search/. It mirrors the subset of the
// YouTube Data API search response the widget consumes, plus an optional error
// message that replaces the items when the search term is rejected.
type SearchResponse struct {
	Items []SearchItem `json:"items,omitempty" doc:"Matching videos in relevance order"`
	Error string       `json:"error,omitempty" doc:"Validation error, set instead of items" example:"Not Valid!"`
}

// SearchItem is a single video in a search response.
type SearchItem struct {
	ID      SearchItemID  `json:"id"`
	Snippet SearchSnippet `json:"snippet"`
}

// SearchItemID identifies the video a search item refers to.
type SearchItemID struct {
	VideoID string `json:"videoId" doc:"YouTube video ID" example:"dQw4w9WgXcQ"`
}

// SearchSnippet holds the display fields of a search item.
type SearchSnippet struct {
	Title        string `json:"title"                  doc:"Video title"`
	ChannelTitle string `json:"channelTitle,omitempty" doc:"Uploading channel"`
}

// NewSearchItem builds a SearchItem from a video ID and title.
func NewSearchItem(videoID, title string) SearchItem {
	return SearchItem{
		ID:      SearchItemID{VideoID: videoID},
		Snippet: SearchSnippet{Title: title},
	}
}

// Hall is a named, owned collection of videos.
type Hall struct {
	ID        string    `json:"id"              db:"id"`
	Title     string    `json:"title"           db:"title"`
	Owner     string    `json:"owner,omitempty" db:"owner"`
	Videos    []Video   `json:"videos,omitempty"`
	CreatedAt time.Time `json:"created_at"      db:"created_at"`
	UpdatedAt time.Time `json:"updated_at"      db:"updated_at"`
}

// Video is a YouTube video saved into a hall.
type Video struct {
	ID        string    `json:"id"         db:"id"`
	HallID    string    `json:"hall_id"    db:"hall_id"`
	URL       string    `json:"url"        db:"url"`
	YouTubeID string    `json:"youtube_id" db:"youtube_id"`
	Title     string    `json:"title"      db:"title"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// EmbedURL returns the player URL used in iframes for the video.
func (v *Video) EmbedURL() string {
	return EmbedURL(v.YouTubeID)
}

// HasTitle reports whether the title lookup for the video has succeeded.
func (v *Video) HasTitle() bool {
	return strings.TrimSpace(v.Title) != ""
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return watchURLPrefix + videoID
}

// EmbedURL returns the embeddable player URL for a video ID.
func EmbedURL(videoID string) string {
	return embedURLPrefix + videoID
}
