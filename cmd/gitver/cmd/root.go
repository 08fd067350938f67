package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/gitver/internal/config"
	"github.com/oshokin/gitver/internal/service/common"
	"github.com/oshokin/gitver/internal/service/resolve"
	"github.com/oshokin/gitver/internal/version"
)

var (
	// options collects the persistent flags shared by every subcommand.
	options common.Options
	// logLevel validates --log-level before it reaches options.
	logLevel logLevelValue

	// rootCmd resolves and prints the package version.
	rootCmd = &cobra.Command{
		Use:   "gitver",
		Short: "Derive a package version from git metadata.",
		Long: `Print a package version derived from the git repository in the working directory.

The first matching form wins:
  {tag}.{commits}+{sha}    a tag is reachable, e.g. 1.2.5+gabc1234-dirty
  0.0.0+{sha}_{branch}     commits but no tags, e.g. 0.0.0+deadbee_main
  0.0.0_UNKNOWN            no repository

Tags are expected to look like X.X. Only the version is written to stdout; logs go to stderr.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := notifyContext()
			defer stop()

			return resolve.Run(ctx, currentOptions(), cmd.OutOrStdout())
		},
	}
)

// Execute runs the gitver CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// notifyContext returns a context canceled on SIGTERM or SIGINT.
func notifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

// currentOptions returns a copy of the shared options with the validated log level applied.
func currentOptions() *common.Options {
	opts := options
	opts.LogLevel = logLevel.String()

	return &opts
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&options.ConfigPath, "config", "c", "",
		"path to configuration file (default "+config.DefaultConfigFilename+" if present)")
	flags.StringVarP(&options.Dir, "dir", "C", "", "directory to resolve the version in")
	flags.StringVar(&options.GitBinary, "git", "", "git executable to run")
	flags.Var(&logLevel, "log-level", "log level: debug, info, warn or error")
	flags.DurationVar(&options.Timeout, "timeout", 0, "bound each git invocation (0 means no bound)")
	flags.BoolVar(&options.TolerateBranchError, "tolerate-branch-error", false,
		"fall back to 0.0.0_UNKNOWN when the branch lookup fails instead of exiting with an error")

	rootCmd.AddCommand(describeCmd, stampCmd, ldflagsCmd)
}
