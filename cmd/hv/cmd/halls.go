package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/RaviKishore94/hofvidz-3.0project/internal/api/client"
)

func hallsCmd() *cobra.Command {
	hallsRoot := &cobra.Command{
		Use:   "halls",
		Short: "Manage halls",
		Long:  "Create, list, rename and delete halls of videos.",
	}

	hallsRoot.AddCommand(
		hallsListCmd(),
		hallsRecentCmd(),
		hallsGetCmd(),
		hallsCreateCmd(),
		hallsRenameCmd(),
		hallsDeleteCmd(),
	)

	return hallsRoot
}

func hallsListCmd() *cobra.Command {
	var params apiclient.ListHallsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List halls",
		Example: `  hv halls list
  hv halls list --owner ravi --order-by title`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListHalls(cmd.Context(), &params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Halls) == 0 {
				fmt.Println("No halls found.")
				return nil
			}
			if err := printHallsTable(os.Stdout, resp.Halls); err != nil {
				return err
			}
			fmt.Printf("\nShowing %d of %d halls\n", len(resp.Halls), resp.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&params.Owner, "owner", "", "only halls owned by this user")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum number of halls")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "pagination offset")
	cmd.Flags().StringVar(&params.OrderBy, "order-by", "", "sort field (created_at, updated_at, title)")

	return cmd
}

func hallsRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Show the three newest halls",
		RunE: func(cmd *cobra.Command, _ []string) error {
			halls, err := newClient().RecentHalls(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(halls)
			}
			if len(halls) == 0 {
				fmt.Println("No halls found.")
				return nil
			}
			return printHallsTable(os.Stdout, halls)
		},
	}
}

func hallsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a hall and its videos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newClient().GetHall(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(h)
			}
			return printHallDetail(os.Stdout, h)
		},
	}
}

func hallsCreateCmd() *cobra.Command {
	var title, owner string

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a hall",
		Example: `  hv halls create --title "Best of Jazz" --owner ravi`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if title == "" {
				return errors.New("--title is required")
			}
			h, err := newClient().CreateHall(cmd.Context(), title, owner)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(h)
			}
			fmt.Printf("Created hall %s (%s)\n", h.ID, h.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "hall title")
	cmd.Flags().StringVar(&owner, "owner", "", "owning user")

	return cmd
}

func hallsRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <title>",
		Short: "Rename a hall",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newClient().RenameHall(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(h)
			}
			fmt.Printf("Renamed hall %s to %q\n", h.ID, h.Title)
			return nil
		},
	}
}

func hallsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a hall and all its videos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteHall(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted hall %s\n", args[0])
			return nil
		},
	}
}
