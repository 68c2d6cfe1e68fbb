package utils

import (
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestULongToBytes(t *testing.T) {
	numInt := uint64(42)
	b := ULongToBytes(numInt)
	if binary.LittleEndian.Uint64(b) != numInt {
		t.Fatal("Conversion to bytes looks wrong!")
	}
	if len(b) != 8 {
		t.Fatal("Expected a fixed-width 8 byte encoding")
	}
}

func TestWriteFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "key")
	if err := WriteFile(file, []byte("secret"), 0600); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "secret" {
		t.Fatalf("read back %q", got)
	}
	if err := WriteFile(file, []byte("other"), 0600); !errors.Is(err, fs.ErrExist) {
		t.Fatalf("Expected fs.ErrExist when overwriting a file, got %v", err)
	}
	got, err = os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "secret" {
		t.Fatalf("existing file was modified: %q", got)
	}
	info, err := os.Stat(file)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0077 != 0 {
		t.Fatalf("secret file is accessible to others: %v", info.Mode())
	}
}

func TestResolvePath(t *testing.T) {
	if got := ResolvePath("sign.priv", "/etc/corecrypto/config.toml"); got != "/etc/corecrypto/sign.priv" {
		t.Fatalf("unexpected path %s", got)
	}
	if got := ResolvePath("/abs/sign.priv", "/etc/corecrypto/config.toml"); got != "/abs/sign.priv" {
		t.Fatalf("unexpected path %s", got)
	}
}
