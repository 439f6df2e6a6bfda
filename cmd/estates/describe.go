package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neutech/estates/internal/cli"
	"github.com/neutech/estates/internal/service"
)

func describeCmd() *cobra.Command {
	var (
		title    string
		propType string
		location string
		features []string
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Generate a listing description",
		Long:  `Generate a property description with the configured AI provider and print it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if title == "" {
				return fmt.Errorf("--title is required")
			}

			describer, err := initDescriber()
			if err != nil {
				return err
			}

			text := describer.Describe(cmd.Context(), service.DescriptionRequest{
				Title:    title,
				Type:     propType,
				Location: location,
				Features: strings.Join(features, ", "),
			})

			fmt.Println(cli.InfoStyle.Render(text))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "listing title (required)")
	cmd.Flags().StringVar(&propType, "type", "For Sale", "transaction type")
	cmd.Flags().StringVar(&location, "location", "", "location, e.g. \"Ikeja, Lagos\"")
	cmd.Flags().StringSliceVar(&features, "features", nil, "comma-separated feature list")

	return cmd
}
