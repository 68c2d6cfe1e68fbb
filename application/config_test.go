package application

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/corelog/corecrypto/capability"
	"github.com/corelog/corecrypto/crypto"
	"github.com/corelog/corecrypto/crypto/hashers/shake"
	"github.com/corelog/corecrypto/crypto/sign"
	"github.com/corelog/corecrypto/utils"
	"github.com/stretchr/testify/require"
)

func writeKeys(t *testing.T, dir string, kp *sign.KeyPair) {
	t.Helper()
	require.NoError(t, utils.WriteFile(filepath.Join(dir, "sign.priv"), kp.SecretKey, 0600))
	require.NoError(t, utils.WriteFile(filepath.Join(dir, "sign.pub"), kp.PublicKey, 0644))
}

func TestConfigSaveLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	kp := sign.NewStaticTestKeyPair()
	writeKeys(t, dir, kp)

	conf := NewConfig(file, "toml", &LoggerConfig{Environment: "development"},
		"sign.priv", "sign.pub")
	conf.CapabilityScheme = capability.SchemeTagged
	conf.Hasher = shake.ID
	require.NoError(t, conf.Save())

	// Saving never overwrites an existing config.
	require.Error(t, conf.Save())

	var got Config
	require.NoError(t, got.Load(file, "toml"))
	require.Equal(t, shake.ID, got.Hasher)
	require.Equal(t, capability.SchemeTagged, got.CapabilityScheme)
	require.Equal(t, "corecrypto", got.Namespace)
	require.Equal(t, kp.SecretKey, got.SigningKey)
	require.Equal(t, kp.PublicKey, got.SigningPubKey)
	require.Equal(t, file, got.GetPath())

	h, err := got.TreeHasher()
	require.NoError(t, err)
	require.Equal(t, shake.ID, h.ID())
	require.Equal(t, capability.SchemeTagged, got.Deriver().Scheme)

	ns, err := got.Namespaces(2)
	require.NoError(t, err)
	require.Len(t, ns, 2)
}

func TestConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(file, []byte("namespace = \"x\"\n"), 0644))

	var conf Config
	require.NoError(t, conf.Load(file, "toml"))
	require.Equal(t, crypto.HashID, conf.Hasher)
	require.Equal(t, capability.SchemeLegacy, conf.CapabilityScheme)
	require.Nil(t, conf.SigningKey)
}

func TestConfigRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	for name, body := range map[string]string{
		"unknown scheme": "capability_scheme = \"v9\"\n",
		"unknown key":    "colour = \"blue\"\n",
		"missing key":    "sign_key_path = \"nope.priv\"\n",
	} {
		file := filepath.Join(dir, name+".toml")
		require.NoError(t, os.WriteFile(file, []byte(body), 0644))
		var conf Config
		require.Error(t, conf.Load(file, "toml"), name)
	}
}

func TestConfigErrorsAreWrapped(t *testing.T) {
	dir := t.TempDir()

	var conf Config
	err := conf.Load(filepath.Join(dir, "absent.toml"), "toml")
	require.ErrorIs(t, err, fs.ErrNotExist)

	file := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(file, []byte("sign_key_path = \"nope.priv\"\n"), 0644))
	err = conf.Load(file, "toml")
	require.ErrorIs(t, err, fs.ErrNotExist)

	err = conf.Load(file, "yaml")
	require.ErrorIs(t, err, ErrUnknownEncoding)
	err = NewConfig(filepath.Join(dir, "other.yaml"), "yaml", nil, "", "").Save()
	require.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestConfigRejectsMismatchedKeys(t *testing.T) {
	dir := t.TempDir()
	kp := sign.NewStaticTestKeyPair()
	other, err := sign.NewKeyPair(nil)
	require.NoError(t, err)
	require.NoError(t, utils.WriteFile(filepath.Join(dir, "sign.priv"), kp.SecretKey, 0600))
	require.NoError(t, utils.WriteFile(filepath.Join(dir, "sign.pub"), other.PublicKey, 0644))

	file := filepath.Join(dir, "config.toml")
	require.NoError(t, NewConfig(file, "toml", nil, "sign.priv", "sign.pub").Save())

	var conf Config
	require.Error(t, conf.Load(file, "toml"))
}

func TestLoadSigningKeyLength(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "short.pub"), []byte("short"), 0644))

	_, err := LoadSigningPubKey("short.pub", file)
	require.ErrorIs(t, err, crypto.ErrInvalidLength)

	_, err = LoadSigningKey("short.pub", file)
	require.ErrorIs(t, err, crypto.ErrInvalidLength)
}
