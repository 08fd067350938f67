package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/gitver/internal/repository/buildinfo"
	"github.com/oshokin/gitver/internal/service/stamp"
)

// stampCmd writes the build metadata file.
//
//nolint:gochecknoglobals // Cobra commands are package-level by convention.
var stampCmd = &cobra.Command{
	Use:   "stamp [output]",
	Short: "Write build metadata for the packaging step.",
	Long: `Resolve the version and write it, together with the tag, commit distance,
commit hash, dirty flag and branch it was derived from, to a YAML file
(default ` + buildinfo.DefaultFilename + `). The version is also printed to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := notifyContext()
		defer stop()

		opts := &stamp.Options{
			Options: *currentOptions(),
		}
		if len(args) > 0 {
			opts.Output = args[0]
		}

		return stamp.Run(ctx, opts, cmd.OutOrStdout())
	},
}
