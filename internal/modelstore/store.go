// README: Lazy-loading model artifact store with mtime-based hot reload.
package modelstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"karvon/internal/ml"
	"karvon/internal/modules/region"
)

// ErrArtifactMissing marks a required model file that is absent or
// unreadable. There is no fallback model; callers fail the request.
var ErrArtifactMissing = errors.New("model artifact missing")

// Artifact names accepted by Get.
const (
	ModelKMeans   = "kmeans"
	ModelScaler   = "scaler"
	ModelPrice    = "price"
	ModelCodebook = "codebook"
)

// Backing file names, shared with the trainer.
const (
	FileKMeans   = "kmeans_model.gob"
	FileScaler   = "scaler.gob"
	FilePrice    = "price_model.gob"
	FileCodebook = "codebook.gob"
)

type entry struct {
	file string
	load func(path string) (any, error)

	mu    sync.RWMutex
	value any
	mtime time.Time
}

// Store serves cached model artifacts, reloading an artifact whenever its
// backing file's modification time advances. Reload swaps the cached
// reference under lock, so concurrent readers see either the old or the new
// model, never a partial load.
type Store struct {
	dir     string
	entries map[string]*entry
}

func New(dir string) *Store {
	return &Store{
		dir: dir,
		entries: map[string]*entry{
			ModelKMeans:   {file: FileKMeans, load: decodeInto[ml.KMeans]},
			ModelScaler:   {file: FileScaler, load: decodeInto[ml.Scaler]},
			ModelPrice:    {file: FilePrice, load: decodeInto[ml.Linear]},
			ModelCodebook: {file: FileCodebook, load: decodeInto[region.Codebook]},
		},
	}
}

// Get returns the current instance of the named model, reloading it first if
// the backing file is newer than the cached copy.
func (s *Store) Get(name string) (any, error) {
	e, ok := s.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown model %q", ErrArtifactMissing, name)
	}
	path := filepath.Join(s.dir, e.file)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactMissing, path, err)
	}

	e.mu.RLock()
	if e.value != nil && !info.ModTime().After(e.mtime) {
		v := e.value
		e.mu.RUnlock()
		return v, nil
	}
	e.mu.RUnlock()

	v, err := e.load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactMissing, path, err)
	}

	e.mu.Lock()
	e.value = v
	e.mtime = info.ModTime()
	e.mu.Unlock()
	return v, nil
}

func decodeInto[T any](path string) (any, error) {
	var v T
	if err := ml.LoadGob(path, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
