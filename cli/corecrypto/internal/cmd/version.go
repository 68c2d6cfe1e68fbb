package cmd

import (
	"github.com/corelog/corecrypto/cli"
)

var versionCmd = cli.NewVersionCommand("corecrypto")

func init() {
	RootCmd.AddCommand(versionCmd)
}
