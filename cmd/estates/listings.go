package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/neutech/estates/internal/cli"
	"github.com/neutech/estates/internal/common"
	"github.com/neutech/estates/internal/filter"
	"github.com/neutech/estates/internal/model"
	"github.com/neutech/estates/internal/refdata"
	"github.com/neutech/estates/internal/service"
)

func listingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Manage property listings",
		Long:  `List, add, and remove property listings without entering the interactive UI.`,
	}

	cmd.AddCommand(listListingsCmd())
	cmd.AddCommand(addListingCmd())
	cmd.AddCommand(removeListingCmd())

	return cmd
}

func listListingsCmd() *cobra.Command {
	var (
		state    string
		lga      string
		propType string
		category string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List property listings",
		Long:  `Display all listings, newest first, optionally narrowed by filter flags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			listings, err := store.ListListings(ctx)
			if err != nil {
				return fmt.Errorf("failed to list listings: %w", err)
			}

			listings = filter.Apply(listings, filter.Criteria{
				State:    state,
				LGA:      lga,
				Type:     model.PropertyType(propType),
				Category: model.PropertyCategory(category),
			})

			if len(listings) == 0 {
				fmt.Println(cli.InfoStyle.Render("No listings match."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Title"),
				cli.BoldStyle.Render("Price"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Location"))

			for _, p := range listings {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s, %s\n",
					p.ID, p.Title, cli.FormatNaira(p.Price), p.Type, p.Category,
					p.Location.LGA, p.Location.State)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "filter by state")
	cmd.Flags().StringVar(&lga, "lga", "", "filter by LGA")
	cmd.Flags().StringVar(&propType, "type", "", `filter by type ("For Sale" or "For Rent")`)
	cmd.Flags().StringVar(&category, "category", "", "filter by category (House, Land, Commercial)")

	return cmd
}

func addListingCmd() *cobra.Command {
	var (
		title       string
		propType    string
		category    string
		state       string
		lga         string
		address     string
		features    []string
		image       string
		description string
		price       int64
		generate    bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new listing",
		Long:  `Create a listing directly from flags. Pass --generate to fill in the description with the AI assistant.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if title == "" || state == "" || lga == "" || image == "" || price < 0 {
				return fmt.Errorf("title, state, lga, and image are required; price must be non-negative")
			}
			if refdata.LGAs(state) == nil {
				return fmt.Errorf("%w: %q", common.ErrUnknownState, state)
			}
			if !refdata.IsValidLGA(state, lga) {
				return fmt.Errorf("%w: %q in %q", common.ErrUnknownLGA, lga, state)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if generate && description == "" {
				describer, derr := initDescriber()
				if derr != nil {
					return derr
				}
				description = describer.Describe(ctx, service.DescriptionRequest{
					Title:    title,
					Type:     propType,
					Location: lga + ", " + state,
					Features: strings.Join(features, ", "),
				})
			}
			if description == "" {
				description = "No description provided."
			}

			now := time.Now()
			property := model.Property{
				ID:          model.NewListingID(now),
				CreatedAt:   now,
				Title:       title,
				Description: description,
				Price:       price,
				Type:        model.PropertyType(propType),
				Category:    model.PropertyCategory(category),
				ImageRef:    image,
				Features:    features,
				Location: model.Location{
					State:   state,
					LGA:     lga,
					Address: address,
				},
			}

			if err := store.AddListing(ctx, property); err != nil {
				return fmt.Errorf("failed to add listing: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Added listing %s: %s", property.ID, property.Title)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "listing title (required)")
	cmd.Flags().StringVar(&propType, "type", string(model.TypeSale), `transaction type ("For Sale" or "For Rent")`)
	cmd.Flags().StringVar(&category, "category", string(model.CategoryHouse), "property category (House, Land, Commercial)")
	cmd.Flags().StringVar(&state, "state", "", "state (required)")
	cmd.Flags().StringVar(&lga, "lga", "", "local government area (required)")
	cmd.Flags().StringVar(&address, "address", "", "street address")
	cmd.Flags().StringSliceVar(&features, "features", nil, "comma-separated feature list")
	cmd.Flags().StringVar(&image, "image", "", "path to the listing photo (required)")
	cmd.Flags().StringVar(&description, "description", "", "listing description")
	cmd.Flags().Int64Var(&price, "price", 0, "price in whole naira")
	cmd.Flags().BoolVar(&generate, "generate", false, "generate the description with the AI assistant")

	return cmd
}

func removeListingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			existing, err := store.GetListing(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to look up listing: %w", err)
			}
			if existing == nil {
				return common.NewUserError(fmt.Sprintf("listing %s not found", args[0]), common.ErrNotFound)
			}

			if err := store.RemoveListing(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to remove listing: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Removed listing %s", args[0])))
			return nil
		},
	}
}
