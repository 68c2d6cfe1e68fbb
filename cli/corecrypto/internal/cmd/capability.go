package cmd

import (
	"fmt"

	"github.com/corelog/corecrypto/capability"
	"github.com/spf13/cobra"
)

var capabilityCmd = &cobra.Command{
	Use:   "capability",
	Short: "Derive or check a capability for a session.",
	Long: `Derive the capability that binds a log public key to a session,
given the split secret of a completed handshake as hex (--tx and --rx).

By default the local capability is printed. --remote prints the value
expected from the peer. --writer signs the writer capability with the
configured signing key. --verify-writer checks a hex signature sent by
the peer and prints the binding status.`,
	Args: cobra.NoArgs,
	RunE: capabilityRunFunc,
}

func init() {
	RootCmd.AddCommand(capabilityCmd)
	capabilityCmd.Flags().String("key", "", "Hex-encoded public key (defaults to the configured key)")
	capabilityCmd.Flags().String("tx", "", "Hex-encoded transmit key")
	capabilityCmd.Flags().String("rx", "", "Hex-encoded receive key")
	capabilityCmd.Flags().Bool("remote", false, "Print the remote capability")
	capabilityCmd.Flags().Bool("writer", false, "Sign the writer capability")
	capabilityCmd.Flags().String("verify-writer", "", "Hex-encoded remote writer signature to verify")
	capabilityCmd.MarkFlagsMutuallyExclusive("remote", "writer", "verify-writer")
}

func splitFromFlags(cmd *cobra.Command) (*capability.SplitSecret, error) {
	if !cmd.Flag("tx").Changed && !cmd.Flag("rx").Changed {
		return nil, nil
	}
	tx, err := decodeHexFlag(cmd, "tx")
	if err != nil {
		return nil, err
	}
	rx, err := decodeHexFlag(cmd, "rx")
	if err != nil {
		return nil, err
	}
	return &capability.SplitSecret{Tx: tx, Rx: rx}, nil
}

func capabilityRunFunc(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	publicKey, err := publicKeyFromFlagOrConfig(cmd, conf)
	if err != nil {
		return err
	}
	split, err := splitFromFlags(cmd)
	if err != nil {
		return err
	}
	d := conf.Deriver()
	out := cmd.OutOrStdout()

	switch {
	case cmd.Flag("writer").Changed:
		if conf.SigningKey == nil {
			return errNoSigningKey
		}
		sig, err := d.Writer(publicKey, split, conf.SigningKey)
		if err != nil {
			return err
		}
		if sig == nil {
			fmt.Fprintln(out, capability.BindingAbsent)
			return nil
		}
		printHex(cmd, sig)
	case cmd.Flag("verify-writer").Changed:
		sig, err := decodeHexFlag(cmd, "verify-writer")
		if err != nil {
			return err
		}
		b, err := d.VerifyRemoteWriter(publicKey, split, sig)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, b)
	default:
		derive := d.Local
		if cmd.Flag("remote").Changed {
			derive = d.Remote
		}
		c, err := derive(publicKey, split)
		if err != nil {
			return err
		}
		if c == nil {
			fmt.Fprintln(out, capability.BindingAbsent)
			return nil
		}
		fmt.Fprintln(out, c)
	}
	return nil
}
