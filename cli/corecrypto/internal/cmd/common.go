package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/corelog/corecrypto/application"
	"github.com/corelog/corecrypto/cli"
	"github.com/spf13/cobra"
)

const configMissingUsage = `
Couldn't load the config file.

To create a valid config and key pair, run
  corecrypto init
The tool looks for a file called 'config.toml' in its current working directory.
Use the --config flag to point it somewhere else.`

var errNoSigningKey = errors.New("no signing key configured")

// loadConfig reads the config named by the --config flag. If that flag
// was left at its default and the file does not exist, a default
// configuration without keys is returned.
func loadConfig(cmd *cobra.Command) (*application.Config, error) {
	flag := cmd.Flag("config")
	file := flag.Value.String()
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) && !flag.Changed {
		return application.NewConfig(file, "toml", nil, "", ""), nil
	}
	conf := &application.Config{}
	if err := conf.Load(file, "toml"); err != nil {
		return nil, fmt.Errorf("%w\n%s", err, configMissingUsage)
	}
	return conf, nil
}

// newLogger builds the logger described by conf, or one that discards
// everything if --quiet was given. A nil conf uses the default.
func newLogger(cmd *cobra.Command, conf *application.LoggerConfig) (*application.Logger, error) {
	if cli.Quiet(cmd) {
		return application.NewNopLogger(), nil
	}
	return application.NewLogger(conf)
}

// publicKeyFromFlagOrConfig returns the hex-encoded --key flag if it
// was given, and the public key of conf otherwise.
func publicKeyFromFlagOrConfig(cmd *cobra.Command, conf *application.Config) ([]byte, error) {
	if cmd.Flag("key").Changed {
		return decodeHexFlag(cmd, "key")
	}
	if conf.SigningPubKey == nil {
		return nil, errNoSigningKey
	}
	return conf.SigningPubKey, nil
}

func decodeHexFlag(cmd *cobra.Command, name string) ([]byte, error) {
	b, err := hex.DecodeString(cmd.Flag(name).Value.String())
	if err != nil {
		return nil, fmt.Errorf("--%s: %v", name, err)
	}
	return b, nil
}

func printHex(cmd *cobra.Command, b []byte) {
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
}
