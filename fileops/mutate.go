package fileops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
)

// Copy copies src to dst. A directory source requires recursive, and a
// directory copy replaces an existing destination wholesale rather than
// merging into it.
func Copy(src, dst string, recursive bool) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return CopyFile(src, dst)
	}
	if !recursive {
		return fmt.Errorf("%w: %s", ErrRequiresRecursive, src)
	}
	return CopyDir(src, dst)
}

// CopyFile copies a single regular file byte for byte, preserving mode and
// modification time. The copy is staged beside dst and renamed into place, so
// a failure mid-copy never leaves a truncated destination behind.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrExpectedFile, src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp := dst + "." + uuid.NewString() + ".tmp"
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chtimes(tmp, info.ModTime(), info.ModTime())
	}
	if err == nil {
		err = os.Rename(tmp, dst)
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return nil
}

// CopyDir recursively copies a directory. An existing destination is removed
// first: a directory copy is a replacement, not a merge.
func CopyDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrExpectedDirectory, src)
	}

	if _, err := os.Stat(dst); err == nil {
		if err := os.RemoveAll(dst); err != nil {
			return err
		}
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(target, info.Mode().Perm())
		}
		return CopyFile(path, target)
	})
}

// Move relocates src to dst. Rename is attempted first; when src and dst sit
// on different devices the move degrades to a recursive copy followed by
// removal of the original. Success is reported only once dst is fully in
// place.
func Move(src, dst string) error {
	if _, err := os.Stat(src); err != nil {
		return err
	}
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}
	if err := Copy(src, dst, true); err != nil {
		return fmt.Errorf("moving %s: %w", src, err)
	}
	return os.RemoveAll(src)
}

// DeleteResult reports the outcome for one path in a delete batch.
type DeleteResult struct {
	Path    string
	Deleted bool
	Missing bool
	Err     error
}

// Delete removes each path independently. A missing path is reported as a
// warning, a directory without recursive is refused with an error naming the
// path, and one failing path never stops the rest of the batch.
func Delete(paths []string, recursive bool) []DeleteResult {
	results := make([]DeleteResult, 0, len(paths))
	for _, path := range paths {
		res := DeleteResult{Path: path}
		info, err := os.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			res.Missing = true
		case err != nil:
			res.Err = err
		case info.IsDir() && !recursive:
			res.Err = fmt.Errorf("%w: %s", ErrRequiresRecursive, path)
		case info.IsDir():
			if err := os.RemoveAll(path); err != nil {
				res.Err = err
			} else {
				res.Deleted = true
			}
		default:
			if err := os.Remove(path); err != nil {
				res.Err = err
			} else {
				res.Deleted = true
			}
		}
		results = append(results, res)
	}
	return results
}
