package cmd

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/corelog/corecrypto/checkpoint"
	"github.com/spf13/cobra"
)

var checkpointCmd = &cobra.Command{
	Use:   "checkpoint HEX",
	Short: "Verify a COSE checkpoint and print its state.",
	Long: `Verify a hex-encoded COSE_Sign1 checkpoint, as printed by
"corecrypto tree --checkpoint", against the configured public key or the
hex-encoded key given with --key, and print the state it commits to.`,
	Args: cobra.ExactArgs(1),
	RunE: checkpointRunFunc,
}

func init() {
	RootCmd.AddCommand(checkpointCmd)
	checkpointCmd.Flags().String("key", "", "Hex-encoded public key")
}

func checkpointRunFunc(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pk, err := publicKeyFromFlagOrConfig(cmd, conf)
	if err != nil {
		return err
	}
	cp, err := hex.DecodeString(args[0])
	if err != nil {
		return err
	}
	state, err := checkpoint.Verify(cp, pk)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "length:    %d\n", state.Length)
	fmt.Fprintf(out, "root:      %x\n", state.Root)
	fmt.Fprintf(out, "hasher:    %s\n", state.Hasher)
	fmt.Fprintf(out, "timestamp: %s\n", time.UnixMilli(state.Timestamp).UTC().Format(time.RFC3339Nano))
	return nil
}
