package cli

import (
	"github.com/spf13/cobra"
)

// NewInitCommand returns the "init" command of appName. runFunc creates
// the files; it finds the target directory in the --dir flag.
func NewInitCommand(appName string, runFunc func(cmd *cobra.Command, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file and signing keys for " + appName + ".",
		Long: `Create a configuration file and an ed25519 key pair for ` + appName + `.

Nothing is written if any of the files already exists.`,
		Args: cobra.NoArgs,
		RunE: runFunc,
	}
	cmd.Flags().StringP("dir", "d", ".", "Directory to write the config and keys to")
	return cmd
}
