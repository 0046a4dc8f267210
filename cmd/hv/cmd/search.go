package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	domain "github.com/RaviKishore94/hofvidz-3.0project/pkg/types"
	"github.com/RaviKishore94/hofvidz-3.0project/pkg/widget"
)

func searchCmd() *cobra.Command {
	var (
		hallID string
		delay  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search YouTube interactively and add results to a hall",
		Long: "Starts an interactive search session. Every line you type replaces the\n" +
			"search term; once you pause, the server is queried and the results are\n" +
			"listed. Use \":add N\" to add result N to the hall given with --hall.",
		Example: `  hv search --hall 7d2f9c1e-4b7a-4c1e-9f0a-3e2b1c0d9a8f
  hv search "miles davis" --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			term := strings.Join(args, " ")

			if jsonOutput() {
				resp, err := c.Search(cmd.Context(), term)
				if err != nil {
					return err
				}
				return outputJSON(resp)
			}

			cfg := sessionConfig{hallID: hallID, delay: delay}
			var sess *session
			if hallID != "" {
				cfg.submit = c.VideoForm(hallID, func(v *domain.Video) { sess.added(v) })
			}

			sess, err := newSession(cmd.Context(), c, cfg, os.Stdout)
			if err != nil {
				return err
			}

			fmt.Print(sessionHelp)
			if term != "" {
				if err := sess.handle(term); err != nil {
					return err
				}
			}
			return sess.run(os.Stdin)
		},
	}
	cmd.Flags().StringVar(&hallID, "hall", "", "hall to add videos to")
	cmd.Flags().DurationVar(&delay, "delay", widget.DefaultDelay, "pause after typing before searching")

	return cmd
}
