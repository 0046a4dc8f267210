package widget

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

// TableRenderer renders items as a numbered plain-text table for terminals.
// Card numbers start at 1 and match Widget.Activate(n-1).
type TableRenderer struct {
	// MaxTitle truncates titles longer than this many runes. Zero means 60.
	MaxTitle int
}

// Render implements Renderer.
func (r TableRenderer) Render(items []domain.SearchItem) (string, error) {
	maxTitle := r.MaxTitle
	if maxTitle <= 0 {
		maxTitle = 60
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tVIDEO ID\tTITLE\n")
	for i, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, it.ID.VideoID, truncate(it.Snippet.Title, maxTitle))
	}
	if err := tw.Flush(); err != nil {
		return "", fmt.Errorf("rendering table: %w", err)
	}
	return buf.String(), nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
