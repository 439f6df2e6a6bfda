package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/neutech/estates/internal/cli"
	"github.com/neutech/estates/internal/model"
)

func publishersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishers",
		Short: "Review publisher applications",
		Long:  `List publisher applications and approve or reject them.`,
	}

	cmd.AddCommand(listPublishersCmd())
	cmd.AddCommand(setPublisherStatusCmd("approve", model.StatusApproved))
	cmd.AddCommand(setPublisherStatusCmd("reject", model.StatusRejected))

	return cmd
}

func listPublishersCmd() *cobra.Command {
	var pendingOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List publisher applications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			users, err := store.ListUsers(ctx)
			if err != nil {
				return fmt.Errorf("failed to list publisher applications: %w", err)
			}

			if pendingOnly {
				pending, _, _ := model.PartitionUsers(users)
				users = pending
			}

			if len(users) == 0 {
				fmt.Println(cli.InfoStyle.Render("No publisher applications."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Business"),
				cli.BoldStyle.Render("Email"),
				cli.BoldStyle.Render("Status"))

			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					u.ID, u.Name, u.BusinessName, u.Email, renderStatus(u.Status))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "show only pending applications")

	return cmd
}

func setPublisherStatusCmd(verb string, status model.UserStatus) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>",
		Short: verb + " a publisher application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SetUserStatus(ctx, args[0], status); err != nil {
				return fmt.Errorf("failed to %s application: %w", verb, err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Application %s is now %s", args[0], status)))
			return nil
		},
	}
}

func renderStatus(status model.UserStatus) string {
	switch status {
	case model.StatusApproved:
		return cli.SuccessStyle.Render(string(status))
	case model.StatusRejected:
		return cli.ErrorStyle.Render(string(status))
	default:
		return cli.SubtleStyle.Render(string(status))
	}
}
