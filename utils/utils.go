package utils

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// ULongToBytes converts an uint64 variable to byte array
// in little endian format
func ULongToBytes(num uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, num)
	return buf
}

// WriteFile writes buf to a new file at filename with mode perm.
// It fails with an error matching fs.ErrExist if the file exists;
// the existence check and the creation are a single atomic step.
func WriteFile(filename string, buf []byte, perm os.FileMode) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("Can't write file: %w", err)
	}
	if _, err := f.Write(buf); err != nil {
		f.Close()
		os.Remove(filename)
		return err
	}
	return f.Close()
}

// ResolvePath returns the absolute path of file.
// This will use other as a base path if file is just a file name.
func ResolvePath(file, other string) string {
	if !filepath.IsAbs(file) {
		file = filepath.Join(filepath.Dir(other), file)
	}
	return file
}
