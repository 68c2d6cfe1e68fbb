package cli

import (
	"fmt"
	"runtime"

	"github.com/corelog/corecrypto/internal"
	"github.com/spf13/cobra"
)

// VersionString returns the line printed by the version command,
// e.g. "corecrypto 0.3.0 (linux/amd64, go1.22.1)".
func VersionString(appName string) string {
	return fmt.Sprintf("%s %s (%s/%s, %s)", appName, internal.Version,
		runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// NewVersionCommand returns the "version" command of appName.
func NewVersionCommand(appName string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the release and platform of " + appName + ".",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), VersionString(appName))
		},
	}
}
