package wordlist

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"passphrases/internal/domain"
)

// Save writes wl to path in the wordlist file format, replacing any existing
// file atomically.
func Save(path string, wl domain.Wordlist) error {
	if wl.Len() < domain.MinWordlistSize {
		return fmt.Errorf("%w: refusing to save %d words", domain.ErrInvalidWordlist, wl.Len())
	}
	var buf bytes.Buffer
	for i := 0; i < wl.Len(); i++ {
		buf.WriteString(wl.Word(i))
		buf.WriteByte('\n')
	}
	return writeFile(path, buf.Bytes(), 0o644)
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
