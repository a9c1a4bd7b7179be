package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Source reads raw asset bytes by file name.
type Source interface {
	ReadFile(name string) ([]byte, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(name string) ([]byte, error)

func (f SourceFunc) ReadFile(name string) ([]byte, error) { return f(name) }

type fsSource struct {
	fsys fs.FS
}

// FSSource reads assets from fsys. Missing files map to ErrAssetNotFound.
func FSSource(fsys fs.FS) Source {
	return fsSource{fsys: fsys}
}

// DirSource reads assets from a directory on disk.
func DirSource(root string) Source {
	return FSSource(os.DirFS(root))
}

func (s fsSource) ReadFile(name string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
		}
		return nil, fmt.Errorf("read asset %s: %w", name, err)
	}
	return data, nil
}
