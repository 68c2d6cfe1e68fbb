package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/corelog/corecrypto/checkpoint"
	"github.com/corelog/corecrypto/crypto"
	"github.com/corelog/corecrypto/merkletree"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree INDEX:SIZE:HASH...",
	Short: "Compute the root commitment of a forest of subtree roots.",
	Long: `Compute the root commitment of an ordered list of subtree roots,
each given as INDEX:SIZE:HASH with a hex-encoded hash, and print it
together with the signable payload for a log of --length entries.

With --sign the payload is also signed with the configured signing key,
and with --checkpoint a COSE_Sign1 checkpoint of the state is printed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: treeRunFunc,
}

func init() {
	RootCmd.AddCommand(treeCmd)
	treeCmd.Flags().Uint64("length", 0, "Number of entries in the log")
	treeCmd.Flags().Bool("sign", false, "Sign the payload with the configured signing key")
	treeCmd.Flags().Bool("checkpoint", false, "Print a signed COSE checkpoint of the state")
}

func parseRoot(s string) (merkletree.Node, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return merkletree.Node{}, fmt.Errorf("root %q: want INDEX:SIZE:HASH", s)
	}
	index, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return merkletree.Node{}, fmt.Errorf("root %q: %v", s, err)
	}
	size, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return merkletree.Node{}, fmt.Errorf("root %q: %v", s, err)
	}
	h, err := crypto.HashFromHex(parts[2])
	if err != nil {
		return merkletree.Node{}, fmt.Errorf("root %q: %v", s, err)
	}
	return merkletree.Node{Index: index, Size: size, Hash: h}, nil
}

func treeRunFunc(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	h, err := conf.TreeHasher()
	if err != nil {
		return err
	}
	roots := make(merkletree.Roots, 0, len(args))
	for _, arg := range args {
		n, err := parseRoot(arg)
		if err != nil {
			return err
		}
		roots = append(roots, n)
	}
	length, err := cmd.Flags().GetUint64("length")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "root:      %s\n", h.Tree(roots))
	fmt.Fprintf(out, "signable:  %x\n", h.Signable(roots, length))
	if sign, _ := cmd.Flags().GetBool("sign"); sign {
		if conf.SigningKey == nil {
			return errNoSigningKey
		}
		sig, err := h.SignTree(roots, length, conf.SigningKey)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "signature: %x\n", sig)
	}
	if cp, _ := cmd.Flags().GetBool("checkpoint"); cp {
		if conf.SigningKey == nil {
			return errNoSigningKey
		}
		signer, err := checkpoint.NewSigner(conf.SigningKey)
		if err != nil {
			return err
		}
		b, err := signer.Sign(checkpoint.NewState(h, roots, length, time.Now()))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "checkpoint: %x\n", b)
	}
	return nil
}
