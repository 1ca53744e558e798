// Package fileutil provides size-limited reads and atomic writes for
// configuration documents and generated artifacts.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
)

// AtomicWriteFile writes data to path through a temp file and rename,
// so an interrupted write never leaves a partial file behind. The
// parent directory must already exist; perm is applied to the final
// file.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// The temp file must live on the same filesystem for the rename
	// to be atomic.
	tmp, err := os.CreateTemp(dir, ".cfgctl-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	defer func() {
		// Still present means the rename never happened.
		if _, statErr := os.Stat(tmpName); statErr == nil {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	return nil
}

// AtomicWriteJSON writes v to path atomically as two-space-indented
// JSON with a trailing newline, mode 0644.
func AtomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling JSON")
	}
	data = append(data, '\n')
	return AtomicWriteFile(path, data, 0o644)
}
