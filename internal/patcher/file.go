package patcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"snkfooter/internal/fileutil"
	"snkfooter/internal/footer"
	"snkfooter/internal/logging"
)

var (
	// ErrNotFound reports a missing target document.
	ErrNotFound = errors.New("SVG file not found")
	// ErrLocked reports that another run holds the document lock.
	ErrLocked = errors.New("SVG file is locked by another process")
)

// ApplyFile patches the document at path in place. Symlinks are followed so
// the linked document is rewritten and the link kept. The file is only
// replaced when the new content differs and is fully assembled.
func ApplyFile(path string, mode footer.Mode, opts Options) (Result, error) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Path: path}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Result{Path: path}, fmt.Errorf("resolve SVG path: %w", err)
	}
	info, err := os.Stat(target)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("stat SVG: %w", err)
	}
	if info.IsDir() {
		return Result{Path: path}, fmt.Errorf("%s is a directory", path)
	}

	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	if opts.Logger != nil {
		opts.Logger = opts.Logger.With(logging.String(logging.FieldPath, path))
	}

	if opts.Lock && !opts.DryRun {
		// the lock file stays behind; unlinking it would let a later run
		// lock a fresh inode while a waiter still holds the old one
		lock := flock.New(target + ".lock")
		locked, err := lock.TryLock()
		if err != nil {
			return Result{Path: path}, fmt.Errorf("acquire lock: %w", err)
		}
		if !locked {
			return Result{Path: path}, fmt.Errorf("%w: %s", ErrLocked, lock.Path())
		}
		defer func() {
			_ = lock.Unlock()
		}()
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("read SVG: %w", err)
	}

	patched, result, err := Apply(string(data), mode, opts)
	result.Path = path
	if err != nil {
		return result, err
	}
	if result.Skipped {
		return result, nil
	}
	if opts.DryRun {
		result.Content = patched
		return result, nil
	}

	if err := fileutil.WriteFileAtomic(target, []byte(patched), info.Mode().Perm()); err != nil {
		return result, fmt.Errorf("write SVG: %w", err)
	}
	return result, nil
}
