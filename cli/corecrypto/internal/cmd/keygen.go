package cmd

import (
	"fmt"

	"github.com/corelog/corecrypto/crypto"
	"github.com/corelog/corecrypto/crypto/sign"
	"github.com/spf13/cobra"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Print a new ed25519 key pair as hex.",
	Long: `Print a new ed25519 key pair as hex, followed by its discovery key.

With --seed the key pair is derived deterministically from a 32-byte
hex-encoded seed.`,
	Args: cobra.NoArgs,
	RunE: keygenRunFunc,
}

func init() {
	RootCmd.AddCommand(keygenCmd)
	keygenCmd.Flags().String("seed", "", "Hex-encoded 32-byte seed")
}

func keygenRunFunc(cmd *cobra.Command, args []string) error {
	var seed []byte
	if cmd.Flag("seed").Changed {
		var err error
		if seed, err = decodeHexFlag(cmd, "seed"); err != nil {
			return err
		}
	}
	kp, err := sign.NewKeyPair(seed)
	if err != nil {
		return err
	}
	dk, err := crypto.DiscoveryKey(kp.PublicKey)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "public:    %x\n", []byte(kp.PublicKey))
	fmt.Fprintf(out, "secret:    %x\n", []byte(kp.SecretKey))
	fmt.Fprintf(out, "discovery: %s\n", dk)
	return nil
}
