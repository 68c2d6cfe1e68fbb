package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/corelog/corecrypto/application"
	"github.com/corelog/corecrypto/cli"
	"github.com/corelog/corecrypto/crypto/sign"
	"github.com/corelog/corecrypto/utils"
	"github.com/spf13/cobra"
)

const (
	signKeyFile    = "sign.priv"
	signPubkeyFile = "sign.pub"
)

var initCmd = cli.NewInitCommand("corecrypto", initRunFunc)

func init() {
	RootCmd.AddCommand(initCmd)
}

// checkFree fails if any of paths exists.
func checkFree(paths ...string) error {
	for _, p := range paths {
		_, err := os.Stat(p)
		if err == nil {
			return fmt.Errorf("%s already exists, nothing was written", p)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func initRunFunc(cmd *cobra.Command, args []string) (err error) {
	dir := cmd.Flag("dir").Value.String()
	keyPath := filepath.Join(dir, signKeyFile)
	pubPath := filepath.Join(dir, signPubkeyFile)
	confPath := filepath.Join(dir, cli.DefaultConfigFile)
	if err := checkFree(keyPath, pubPath, confPath); err != nil {
		return err
	}

	logConf := application.DefaultLoggerConfig()
	logger, err := newLogger(cmd, logConf)
	if err != nil {
		return err
	}
	defer logger.Sync()

	kp, err := sign.NewKeyPair(nil)
	if err != nil {
		return err
	}

	// Files written so far are removed again if a later step fails.
	var written []string
	defer func() {
		if err == nil {
			return
		}
		for _, p := range written {
			os.Remove(p)
		}
	}()

	if err = utils.WriteFile(keyPath, kp.SecretKey, 0600); err != nil {
		return err
	}
	written = append(written, keyPath)
	if err = utils.WriteFile(pubPath, kp.PublicKey, 0644); err != nil {
		return err
	}
	written = append(written, pubPath)
	logger.Info("generated signing key pair", "dir", dir)

	conf := application.NewConfig(confPath, "toml", logConf, signKeyFile, signPubkeyFile)
	if err = conf.Save(); err != nil {
		return err
	}
	logger.Info("wrote config", "path", confPath,
		"hasher", conf.Hasher, "capability_scheme", conf.CapabilityScheme.String())
	return nil
}
