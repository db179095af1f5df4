// README: Model artifact persistence (gob files).
package ml

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// SaveGob writes v to path via a temp file and rename, so a reader watching
// the file's mtime never observes a half-written artifact.
func SaveGob(path string, v any) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create artifact temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(v); err != nil {
		tmp.Close()
		return fmt.Errorf("encode artifact %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// LoadGob reads the artifact at path into v.
func LoadGob(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode artifact %s: %w", path, err)
	}
	return nil
}
