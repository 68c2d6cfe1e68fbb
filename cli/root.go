package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// DefaultConfigFile is the config a command reads when --config is not
// given, relative to the working directory.
const DefaultConfigFile = "config.toml"

// NewRootCommand returns the root command of an executable. Every
// subcommand inherits the --config and --quiet flags. Errors are
// reported once by ExecuteRoot, not by cobra.
func NewRootCommand(use, short, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", DefaultConfigFile, "Path to the configuration file")
	flags.BoolP("quiet", "q", false, "Discard log output")
	return cmd
}

// Quiet reports whether --quiet was given to cmd or one of its parents.
func Quiet(cmd *cobra.Command) bool {
	q, err := cmd.Flags().GetBool("quiet")
	return err == nil && q
}

// ExecuteRoot runs rootCmd, printing the error of a failed
// subcommand to stderr and exiting with status 1.
func ExecuteRoot(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", rootCmd.Name(), err)
		os.Exit(1)
	}
}
