// Package fs defines the filesystem abstraction used by heapdump-rotator.
// It provides the FS interface and the FileInfo type shared across the system.
package fs

import (
	"context"
	"time"
)

type FileInfo struct {
	Path  string
	Name  string
	Size  int64
	MTime time.Time
	IsDir bool
}

type FS interface {
	Stat(path string) (FileInfo, error)
	ReadDir(path string) ([]FileInfo, error)
	Rename(ctx context.Context, oldPath, newPath string) error
	Remove(path string) error
}
