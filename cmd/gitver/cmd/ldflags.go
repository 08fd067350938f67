package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/gitver/internal/service/ldflags"
	"github.com/oshokin/gitver/internal/version"
)

var (
	// ldflagsPackage is the import path whose variables are set.
	ldflagsPackage string

	// ldflagsCmd prints linker flags embedding the version.
	ldflagsCmd = &cobra.Command{
		Use:   "ldflags",
		Short: "Print Go linker flags that embed the version.",
		Long: `Print -X flags setting Version, Commit and BuildTime in the given package,
for use as: go build -ldflags "$(gitver ldflags --package example.com/app/version)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := notifyContext()
			defer stop()

			opts := &ldflags.Options{
				Options: *currentOptions(),
				Package: ldflagsPackage,
			}

			return ldflags.Run(ctx, opts, cmd.OutOrStdout())
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	ldflagsCmd.Flags().StringVarP(&ldflagsPackage, "package", "p", version.ImportPath,
		"import path of the package holding Version, Commit and BuildTime")
}
