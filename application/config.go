package application

import (
	"fmt"
	"os"

	"github.com/corelog/corecrypto/capability"
	"github.com/corelog/corecrypto/crypto"
	"github.com/corelog/corecrypto/crypto/sign"
	"github.com/corelog/corecrypto/merkletree"
	"github.com/corelog/corecrypto/namespace"
	"github.com/corelog/corecrypto/utils"

	// Registers the SHA-3 tree hasher so that it can be named in a config.
	_ "github.com/corelog/corecrypto/crypto/hashers/shake"
)

// AppConfig provides an abstraction of the
// underlying encoding format for the configs.
type AppConfig interface {
	Load(file, encoding string) error
	Save() error
	GetPath() string
}

// CommonConfig holds what every executable's config has: where it
// lives, how it is encoded and how to log.
type CommonConfig struct {
	Path     string        `toml:"-"`
	Logger   *LoggerConfig `toml:"logger"`
	Encoding string        `toml:"-"`
}

// NewCommonConfig returns the CommonConfig of a config stored at file
// in the given encoding.
func NewCommonConfig(file, encoding string, logger *LoggerConfig) *CommonConfig {
	return &CommonConfig{
		Path:     file,
		Logger:   logger,
		Encoding: encoding,
	}
}

// Loader returns the ConfigLoader for the config's encoding.
func (conf *CommonConfig) Loader() (ConfigLoader, error) {
	return lookupConfigLoader(conf.Encoding)
}

// Config selects the algorithms and keys used by the corecrypto tool.
type Config struct {
	*CommonConfig

	// Hasher names a registered tree hasher, e.g. "BLAKE2b-256".
	Hasher string `toml:"hasher"`
	// CapabilityScheme is either "legacy" or "tagged".
	CapabilityScheme capability.Scheme `toml:"capability_scheme"`
	// Namespace is the name namespaced signatures are derived from.
	Namespace string `toml:"namespace"`

	SignKeyPath    string `toml:"sign_key_path,omitempty"`
	SignPubkeyPath string `toml:"sign_pubkey_path,omitempty"`

	SigningKey    sign.PrivateKey `toml:"-"`
	SigningPubKey sign.PublicKey  `toml:"-"`
}

var _ AppConfig = (*Config)(nil)

// NewConfig initializes a new configuration at the given file path
// with the default algorithms and the given key file paths.
func NewConfig(file, encoding string, logger *LoggerConfig, signKeyPath, signPubkeyPath string) *Config {
	return &Config{
		CommonConfig:     NewCommonConfig(file, encoding, logger),
		Hasher:           crypto.HashID,
		CapabilityScheme: capability.SchemeLegacy,
		Namespace:        "corecrypto",
		SignKeyPath:      signKeyPath,
		SignPubkeyPath:   signPubkeyPath,
	}
}

// Load initializes a configuration from the given file using the given
// encoding. Key files named in the configuration are read and checked;
// if both keys are present they must form a key pair.
func (conf *Config) Load(file, encoding string) error {
	conf.CommonConfig = NewCommonConfig(file, encoding, nil)
	loader, err := conf.Loader()
	if err != nil {
		return err
	}
	if err := loader.Decode(conf); err != nil {
		return err
	}
	if conf.Hasher == "" {
		conf.Hasher = crypto.HashID
	}

	if conf.SignKeyPath != "" {
		sk, err := LoadSigningKey(conf.SignKeyPath, file)
		if err != nil {
			return err
		}
		conf.SigningKey = sk
	}
	if conf.SignPubkeyPath != "" {
		pk, err := LoadSigningPubKey(conf.SignPubkeyPath, file)
		if err != nil {
			return err
		}
		conf.SigningPubKey = pk
	}
	if conf.SigningKey != nil && conf.SigningPubKey != nil &&
		!sign.ValidateKeyPair(conf.SigningPubKey, conf.SigningKey) {
		return fmt.Errorf("Signing keys %s and %s are not a key pair",
			conf.SignKeyPath, conf.SignPubkeyPath)
	}
	return nil
}

// Save writes the configuration.
func (conf *Config) Save() error {
	loader, err := conf.Loader()
	if err != nil {
		return err
	}
	return loader.Encode(conf)
}

// GetPath returns the configuration file path.
func (conf *Config) GetPath() string {
	return conf.Path
}

// TreeHasher returns the merkletree.Hasher for the configured hasher.
func (conf *Config) TreeHasher() (*merkletree.Hasher, error) {
	return merkletree.NewHasherByID(conf.Hasher)
}

// Deriver returns a capability.Deriver for the configured scheme.
func (conf *Config) Deriver() *capability.Deriver {
	return capability.NewDeriver(conf.CapabilityScheme)
}

// Namespaces derives count namespaces from the configured name.
func (conf *Config) Namespaces(count int) ([]namespace.Namespace, error) {
	return namespace.New([]byte(conf.Namespace), count)
}

// LoadSigningKey loads a private signing key at the given path,
// resolved relative to the config file.
func LoadSigningKey(path, file string) (sign.PrivateKey, error) {
	signPath := utils.ResolvePath(path, file)
	signKey, err := os.ReadFile(signPath)
	if err != nil {
		return nil, fmt.Errorf("Cannot read signing key: %w", err)
	}
	if len(signKey) != sign.PrivateKeySize {
		return nil, crypto.NewInvalidLengthError("signing key", len(signKey), sign.PrivateKeySize)
	}
	return signKey, nil
}

// LoadSigningPubKey loads a public signing key at the given path,
// resolved relative to the config file.
func LoadSigningPubKey(path, file string) (sign.PublicKey, error) {
	signPath := utils.ResolvePath(path, file)
	signPubKey, err := os.ReadFile(signPath)
	if err != nil {
		return nil, fmt.Errorf("Cannot read signing public key: %w", err)
	}
	if len(signPubKey) != sign.PublicKeySize {
		return nil, crypto.NewInvalidLengthError("signing public key", len(signPubKey), sign.PublicKeySize)
	}
	return signPubKey, nil
}
