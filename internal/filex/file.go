// Package filex holds the file system helpers used to bootstrap the local
// database: existence checks, parent directory creation and a verbatim copy.
package filex

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CopyBufferSize is the chunk size used by CopyFile.
const CopyBufferSize = 1024

// Exists reports whether something is present at path. Errors other than
// "does not exist" are returned so callers do not overwrite a file they
// merely failed to stat.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// CopyFile copies src to dst byte for byte using a fixed-size buffer and
// returns the number of bytes written. dst is created or truncated. A partial
// dst is removed when the copy fails.
func CopyFile(src, dst string) (n int64, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open template %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o660)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", dst, err)
	}

	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", dst, cerr)
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	buf := make([]byte, CopyBufferSize)
	n, err = io.CopyBuffer(onlyWriter{out}, onlyReader{in}, buf)
	if err != nil {
		return n, fmt.Errorf("copy %s -> %s: %w", src, dst, err)
	}
	if err = out.Sync(); err != nil {
		return n, fmt.Errorf("sync %s: %w", dst, err)
	}
	return n, nil
}

// onlyReader and onlyWriter hide ReadFrom/WriteTo so io.CopyBuffer really
// goes through buf.
type onlyReader struct{ io.Reader }

type onlyWriter struct{ io.Writer }
