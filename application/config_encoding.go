package application

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/corelog/corecrypto/utils"
)

// ConfigLoader provides an interface for implementing
// different application configuration encodings.
type ConfigLoader interface {
	Encode(conf AppConfig) error
	Decode(conf AppConfig) error
}

// ErrUnknownEncoding is returned when a config names an encoding
// that has no registered ConfigLoader.
var ErrUnknownEncoding = errors.New("[application] unknown config encoding")

// lookupConfigLoader returns the ConfigLoader registered for encoding.
// An empty encoding selects TOML.
func lookupConfigLoader(encoding string) (ConfigLoader, error) {
	if encoding == "" {
		encoding = "toml"
	}
	loader, ok := configEncodings[encoding]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
	return loader, nil
}

// TomlLoader implements a ConfigLoader for toml-encoded
// configurations.
type TomlLoader struct{}

var _ ConfigLoader = (*TomlLoader)(nil)

// Encode saves the given configuration conf in toml encoding.
// It refuses to overwrite an existing file.
func (ld *TomlLoader) Encode(conf AppConfig) error {
	var confBuf bytes.Buffer

	e := toml.NewEncoder(&confBuf)
	if err := e.Encode(conf); err != nil {
		return err
	}
	return utils.WriteFile(conf.GetPath(), confBuf.Bytes(), 0644)
}

// Decode reads an application configuration from the given toml-encoded
// file. Keys that do not map to a configuration field are rejected.
func (ld *TomlLoader) Decode(conf AppConfig) error {
	md, err := toml.DecodeFile(conf.GetPath(), conf)
	if err != nil {
		return fmt.Errorf("Failed to load config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("Failed to load config: unknown keys %v", undecoded)
	}
	return nil
}

var configEncodings = map[string]ConfigLoader{
	"toml": new(TomlLoader),
}
