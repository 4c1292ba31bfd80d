// Package rotator archives existing heap dump files at process startup so a
// restarting JVM cannot overwrite the previous crash dump, then prunes old
// archived dumps beyond the configured retention count.
package rotator

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/raoulx24/heapdump-rotator/internal/dumppath"
	"github.com/raoulx24/heapdump-rotator/internal/fs"
	"github.com/raoulx24/heapdump-rotator/internal/logging"
)

// Config holds one rotation pass worth of settings. It is immutable for the
// lifetime of a Rotate call.
type Config struct {
	// KeepCount is how many rotated dumps to keep. Zero or negative means
	// unlimited.
	KeepCount int

	// Args are the launch arguments scanned for the heap dump path
	// directive. Nil means the real process arguments.
	Args []string

	// Clock supplies "now" for the rotated filename suffix. Nil means the
	// system UTC clock.
	Clock Clock
}

// Rotator performs a single archive-then-prune pass over the configured
// heap dump directory. It keeps no state between calls.
type Rotator struct {
	keep  int
	args  []string
	clock Clock
	fs    fs.FS
	log   logging.Logger
}

// New creates a rotator. Nil log and filesystem fall back to a no-op logger
// and the OS filesystem.
func New(cfg Config, log logging.Logger, filesystem fs.FS) *Rotator {
	args := cfg.Args
	if args == nil {
		args = os.Args[1:]
	}

	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	if filesystem == nil {
		filesystem = fs.New()
	}

	if log == nil {
		log = logging.Nop{}
	}

	return &Rotator{
		keep:  cfg.KeepCount,
		args:  args,
		clock: clock,
		fs:    filesystem,
		log:   log,
	}
}

// Rotate runs one pass: archive current dump files, then enforce retention.
// It never fails the caller; every error is reduced to a warning record so
// application startup cannot be blocked by a broken dump directory.
func (r *Rotator) Rotate(ctx context.Context) {
	spec, ok := dumppath.FromArgs(r.args)
	if !ok {
		r.log.Debug("rotate: no heap dump path configured, nothing to do")
		return
	}

	info, err := r.fs.Stat(spec.Dir)
	if err != nil {
		// an absent directory is the expected first-run state; anything
		// else is a real I/O failure
		if errors.Is(err, iofs.ErrNotExist) {
			r.log.Debug("rotate: dump directory %s not present, nothing to do", spec.Dir)
		} else {
			r.log.Warn("rotate: reading dump directory %s: %v", spec.Dir, err)
		}
		return
	}

	if !info.IsDir {
		r.log.Debug("rotate: dump path parent %s is not a directory, nothing to do", spec.Dir)
		return
	}

	if err := r.archive(ctx, spec); err != nil {
		r.log.Warn("rotate: archiving failed: %v", err)
		return
	}

	if r.keep > 0 {
		if err := r.prune(spec); err != nil {
			r.log.Warn("rotate: retention failed: %v", err)
		}
	}
}

// archive renames every file matching the configured dump name, inserting
// the epoch-seconds suffix before the extension. The timestamp is read once
// so all files archived in one pass share the same suffix.
func (r *Rotator) archive(ctx context.Context, spec dumppath.Spec) error {
	entries, err := r.fs.ReadDir(spec.Dir)
	if err != nil {
		return fmt.Errorf("reading dump directory: %w", err)
	}

	exact := spec.ExactPattern()
	stamp := strconv.FormatInt(r.clock.Now().Unix(), 10)

	for _, e := range entries {
		if e.IsDir || !exact.MatchString(e.Name) {
			continue
		}

		rotated := strings.TrimSuffix(e.Name, spec.Ext) + "-" + stamp + spec.Ext
		dst := filepath.Join(spec.Dir, rotated)

		if err := r.fs.Rename(ctx, e.Path, dst); err != nil {
			return fmt.Errorf("archiving %s: %w", e.Name, err)
		}

		r.log.Info("rotate: archived %s -> %s", e.Path, dst)
	}

	return nil
}

// prune deletes the oldest rotated dumps once their count exceeds the
// retention limit. Oldest by modification time; equal times break by name
// so the order is stable across listing orders.
func (r *Rotator) prune(spec dumppath.Spec) error {
	entries, err := r.fs.ReadDir(spec.Dir)
	if err != nil {
		return fmt.Errorf("reading dump directory: %w", err)
	}

	rotated := spec.RotatedPattern()

	var archived []fs.FileInfo
	for _, e := range entries {
		if !e.IsDir && rotated.MatchString(e.Name) {
			archived = append(archived, e)
		}
	}

	if len(archived) <= r.keep {
		return nil
	}

	sort.Slice(archived, func(i, j int) bool {
		if archived[i].MTime.Equal(archived[j].MTime) {
			return archived[i].Name < archived[j].Name
		}
		return archived[i].MTime.Before(archived[j].MTime)
	})

	for _, e := range archived[:len(archived)-r.keep] {
		if err := r.fs.Remove(e.Path); err != nil {
			return fmt.Errorf("pruning %s: %w", e.Name, err)
		}

		r.log.Info("rotate: pruned old dump %s", e.Path)
	}

	return nil
}
