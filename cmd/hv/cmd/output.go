package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/RaviKishore94/hofvidz-3.0project/internal/api/client"
	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
)

const timeLayout = "2006-01-02 15:04"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printHallsTable(w io.Writer, halls []domain.Hall) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTITLE\tOWNER\tCREATED\n")
	for i := range halls {
		tw.writef("%s\t%s\t%s\t%s\n",
			halls[i].ID,
			truncate(halls[i].Title, 40),
			halls[i].Owner,
			halls[i].CreatedAt.Format(timeLayout),
		)
	}
	return tw.finish()
}

func printHallDetail(w io.Writer, h *domain.Hall) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", h.ID)
	tw.writef("Title:\t%s\n", h.Title)
	if h.Owner != "" {
		tw.writef("Owner:\t%s\n", h.Owner)
	}
	tw.writef("Created:\t%s\n", h.CreatedAt.Format(timeLayout))
	tw.writef("Videos:\t%d\n", len(h.Videos))
	if err := tw.finish(); err != nil {
		return err
	}
	if len(h.Videos) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return printVideosTable(w, h.Videos)
}

func printVideosTable(w io.Writer, videos []domain.Video) error {
	tw := newTabWriter(w)
	tw.writef("ID\tYOUTUBE ID\tTITLE\tURL\n")
	for i := range videos {
		title := videos[i].Title
		if !videos[i].HasTitle() {
			title = "-"
		}
		tw.writef("%s\t%s\t%s\t%s\n",
			videos[i].ID,
			videos[i].YouTubeID,
			truncate(title, 40),
			videos[i].URL,
		)
	}
	return tw.finish()
}

func printQuota(w io.Writer, q *apiclient.QuotaStatus) error {
	tw := newTabWriter(w)
	tw.writef("Daily units:\t%d\n", q.DailyUnits)
	tw.writef("Used:\t%d\n", q.Used)
	tw.writef("Remaining:\t%d\n", q.Remaining)
	tw.writef("Resets at:\t%s\n", q.ResetAt)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
