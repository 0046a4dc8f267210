package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var videoIDRE = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ParseVideoID extracts the video ID from a watch URL
// (https://www.youtube.com/watch?v=ID), a short URL (https://youtu.be/ID) or
// an embed or shorts URL.
func ParseVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	var id string
	switch host {
	case "youtube.com", "music.youtube.com":
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"):
			id = strings.Trim(strings.TrimPrefix(u.Path, "/embed/"), "/")
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = strings.Trim(strings.TrimPrefix(u.Path, "/shorts/"), "/")
		}
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	}

	if !videoIDRE.MatchString(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return id, nil
}
