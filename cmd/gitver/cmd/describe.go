package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/gitver/internal/service/resolve"
)

// describeCmd renders the resolution components as a table.
//
//nolint:gochecknoglobals // Cobra commands are package-level by convention.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show how the version was derived.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := notifyContext()
		defer stop()

		return resolve.Describe(ctx, currentOptions(), cmd.OutOrStdout())
	},
}
