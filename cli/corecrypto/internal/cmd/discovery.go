package cmd

import (
	"github.com/corelog/corecrypto/crypto"
	"github.com/spf13/cobra"
)

var discoveryCmd = &cobra.Command{
	Use:   "discovery",
	Short: "Print the discovery key of a public key.",
	Long: `Print the discovery key of the configured public key, or of the
hex-encoded key given with --key. The discovery key can be published for
rendezvous; it does not reveal the public key.`,
	Args: cobra.NoArgs,
	RunE: discoveryRunFunc,
}

func init() {
	RootCmd.AddCommand(discoveryCmd)
	discoveryCmd.Flags().String("key", "", "Hex-encoded public key")
}

func discoveryRunFunc(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pk, err := publicKeyFromFlagOrConfig(cmd, conf)
	if err != nil {
		return err
	}
	dk, err := crypto.DiscoveryKey(pk)
	if err != nil {
		return err
	}
	printHex(cmd, dk[:])
	return nil
}
