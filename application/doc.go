/*
Package application holds the pieces shared by the corecrypto
executables: configuration loading and logging.

Configuration

A Config is stored as TOML. It selects the tree hasher, the capability
wire scheme and the namespace used for signing, and points at the
ed25519 key files generated by "corecrypto init". Key paths are resolved
relative to the configuration file.

Logger

This module implements a generic logging system on top of zap.
The logger writes to stderr and, optionally, to a file; in the
"development" environment it logs at debug level, in "production" at
info level.
*/
package application
