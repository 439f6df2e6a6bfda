package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/neutech/estates/internal/common"
	"github.com/neutech/estates/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive marketplace UI",
		Long: `Launch the full-screen terminal UI: browse and filter listings, upload
new properties, and manage publisher applications from the admin
dashboard.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if viper.GetString("admin.access_code") == "" {
				return fmt.Errorf("%w: admin.access_code", common.ErrMissingConfig)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			describer, err := initDescriber()
			if err != nil {
				return err
			}

			return tui.Run(store, describer, tui.Config{
				AccessCode:          viper.GetString("admin.access_code"),
				VerificationCode:    viper.GetString("admin.verification_code"),
				AdminEmail:          viper.GetString("admin.contact_email"),
				AdminPhone:          viper.GetString("admin.contact_phone"),
				ListingContactPhone: viper.GetString("upload.contact_phone"),
			})
		},
	}
}
