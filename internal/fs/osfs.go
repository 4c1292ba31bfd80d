package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
)

type OSFS struct{}

// the concrete implementation of FS backed by the local OS filesystem.

func New() *OSFS {
	return &OSFS{}
}

func (o *OSFS) Stat(path string) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}

	return FileInfo{
		Path:  path,
		Name:  st.Name(),
		Size:  st.Size(),
		MTime: st.ModTime(),
		IsDir: st.IsDir(),
	}, nil
}

func (o *OSFS) ReadDir(path string) ([]FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		st, err := e.Info()
		if err != nil {
			// entry vanished between listing and stat
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return nil, err
		}

		infos = append(infos, FileInfo{
			Path:  filepath.Join(path, e.Name()),
			Name:  e.Name(),
			Size:  st.Size(),
			MTime: st.ModTime(),
			IsDir: e.IsDir(),
		})
	}

	return infos, nil
}

// Remove deletes a file. A file that is already gone counts as success.
func (o *OSFS) Remove(path string) error {
	err := os.Remove(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	return err
}

func (o *OSFS) Rename(ctx context.Context, oldPath, newPath string) error {
	return renameWithRetry(ctx, oldPath, newPath)
}
