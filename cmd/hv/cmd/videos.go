package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/RaviKishore94/hofvidz-3.0project/internal/api/client"
)

func videosCmd() *cobra.Command {
	videosRoot := &cobra.Command{
		Use:   "videos",
		Short: "Manage the videos in a hall",
	}

	videosRoot.AddCommand(
		videosListCmd(),
		videosAddCmd(),
		videosDeleteCmd(),
		videosBackfillCmd(),
	)

	return videosRoot
}

func videosListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <hall-id>",
		Short: "List a hall's videos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videos, err := newClient().ListVideos(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(videos)
			}
			if len(videos) == 0 {
				fmt.Println("No videos in this hall.")
				return nil
			}
			return printVideosTable(os.Stdout, videos)
		},
	}
}

func videosAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <hall-id> <youtube-url>",
		Short:   "Add a video to a hall by URL",
		Example: `  hv videos add 7d2f9c1e-4b7a-4c1e-9f0a-3e2b1c0d9a8f "https://www.youtube.com/watch?v=dQw4w9WgXcQ"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newClient().AddVideo(cmd.Context(), args[0], args[1])
			if apiclient.IsStatus(err, http.StatusUnprocessableEntity) {
				return fmt.Errorf("%s is not a YouTube video URL", args[1])
			}
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(v)
			}
			fmt.Printf("Added %s %q\n", v.YouTubeID, v.Title)
			return nil
		},
	}
}

func videosDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <hall-id> <video-id>",
		Short: "Remove a video from a hall",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteVideo(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Removed video %s\n", args[1])
			return nil
		},
	}
}

func videosBackfillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill",
		Short: "Look up titles for videos stored without one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := newClient().BackfillTitles(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Filled %d titles\n", n)
			return nil
		},
	}
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the server's YouTube API quota",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newClient().Quota(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(q)
			}
			return printQuota(os.Stdout, q)
		},
	}
}
