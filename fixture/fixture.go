// Package fixture writes generated prover fixtures to disk and checks
// committed fixtures against what would be generated now.
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrStale is returned by Check when the file on disk differs from the
// freshly rendered contents, or does not exist.
var ErrStale = errors.New("fixture is stale")

// WriteFile writes data to path atomically using a temporary file in the same
// directory and a rename. An existing file is replaced; on failure it is left
// untouched and no temporary file remains.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// Check compares the file at path with want. It returns an error wrapping
// ErrStale when they differ or the file is missing, and any other read error
// as is.
func Check(path string, want []byte) error {
	got, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s does not exist", ErrStale, path)
	}
	if err != nil {
		return err
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("%w: %s differs from generated output (first difference at line %d)",
			ErrStale, path, firstDiffLine(got, want))
	}
	return nil
}

// firstDiffLine returns the 1-based line number of the first difference.
func firstDiffLine(a, b []byte) int {
	line := 1
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return line
		}
		if a[i] == '\n' {
			line++
		}
	}
	return line
}
