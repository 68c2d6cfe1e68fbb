package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/corelog/corecrypto/application"
	"github.com/corelog/corecrypto/namespace"
	"github.com/spf13/cobra"
)

var errBadSignature = errors.New("signature does not verify")

var signCmd = &cobra.Command{
	Use:   "sign FILE",
	Short: "Sign a file in the configured namespace.",
	Long: `Sign the contents of FILE with the configured signing key.
The signature is scoped to namespace number --index of the family
derived from the configured namespace name.`,
	Args: cobra.ExactArgs(1),
	RunE: signRunFunc,
}

var verifyCmd = &cobra.Command{
	Use:   "verify FILE SIGNATURE",
	Short: "Verify a namespaced signature of a file.",
	Long: `Verify a hex-encoded signature of the contents of FILE, produced by
"corecrypto sign" with the same namespace index.`,
	Args: cobra.ExactArgs(2),
	RunE: verifyRunFunc,
}

func init() {
	RootCmd.AddCommand(signCmd)
	RootCmd.AddCommand(verifyCmd)
	for _, c := range []*cobra.Command{signCmd, verifyCmd} {
		c.Flags().Int("index", 0, "Namespace index within the configured family")
	}
}

func selectNamespace(cmd *cobra.Command, conf *application.Config) (namespace.Namespace, error) {
	idx, err := cmd.Flags().GetInt("index")
	if err != nil {
		return namespace.Namespace{}, err
	}
	if idx < 0 || idx >= namespace.MaxCount {
		return namespace.Namespace{}, fmt.Errorf("--index must be between 0 and %d", namespace.MaxCount-1)
	}
	list, err := conf.Namespaces(idx + 1)
	if err != nil {
		return namespace.Namespace{}, err
	}
	return list[idx], nil
}

func signRunFunc(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if conf.SigningKey == nil {
		return errNoSigningKey
	}
	ns, err := selectNamespace(cmd, conf)
	if err != nil {
		return err
	}
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	sig, err := ns.Sign(payload, conf.SigningKey)
	if err != nil {
		return err
	}
	printHex(cmd, sig)
	return nil
}

func verifyRunFunc(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if conf.SigningPubKey == nil {
		return errNoSigningKey
	}
	logger, err := newLogger(cmd, conf.Logger)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ns, err := selectNamespace(cmd, conf)
	if err != nil {
		return err
	}
	logger = logger.With("file", args[0], "namespace", ns.String())
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	sig, err := hex.DecodeString(args[1])
	if err != nil {
		return err
	}
	ok, err := ns.Verify(sig, payload, conf.SigningPubKey)
	if err != nil {
		return err
	}
	if !ok {
		logger.Warn("signature rejected")
		return errBadSignature
	}
	logger.Debug("signature accepted")
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
