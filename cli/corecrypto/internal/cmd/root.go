package cmd

import (
	"github.com/corelog/corecrypto/cli"
)

// RootCmd represents the base "corecrypto" command when called without any
// subcommands (init, hash, sign, ...).
var RootCmd = cli.NewRootCommand("corecrypto",
	"Merkle log hashing, capabilities and namespaced signatures",
	`corecrypto computes the digests, capabilities and signatures an
append-only Merkle log uses on the wire.

Run "corecrypto init" first to create a config.toml and a signing key pair.`)
