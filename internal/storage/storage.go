// Package storage loads and saves buffers as plain text files.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iw2rmb/lined/buffer"
)

var (
	// ErrIsDirectory is returned when the target names a directory.
	ErrIsDirectory = errors.New("storage: is a directory")
	// ErrNotExist is returned by Load when the file does not exist.
	ErrNotExist = fs.ErrNotExist
)

const defaultPerm fs.FileMode = 0o644

// FS stores buffers in the local file system. The zero value is ready to
// use; Perm applies to files Save creates and defaults to 0644.
type FS struct {
	Perm fs.FileMode
}

// Load reads name and splits it into rows on '\n'.
func (s FS) Load(name string) (*buffer.Buffer, error) {
	info, err := os.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("storage: load %s: %w", name, ErrNotExist)
		}
		return nil, fmt.Errorf("storage: load %s: %w", name, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("storage: load %s: %w", name, ErrIsDirectory)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("storage: load %s: %w", name, err)
	}
	return buffer.New(string(data)), nil
}

// Save replaces name with the buffer text. The content goes to a temporary
// file next to name first, so a failed save leaves name as it was. When
// name is a symlink the file it points to is replaced.
func (s FS) Save(name string, b *buffer.Buffer) (err error) {
	perm := s.Perm
	if perm == 0 {
		perm = defaultPerm
	}
	// Symlinks are written through.
	target := name
	if resolved, err := filepath.EvalSymlinks(name); err == nil {
		target = resolved
	}

	info, statErr := os.Stat(target)
	switch {
	case statErr == nil && info.IsDir():
		return fmt.Errorf("storage: save %s: %w", name, ErrIsDirectory)
	case statErr == nil:
		perm = info.Mode().Perm()
	case !errors.Is(statErr, fs.ErrNotExist):
		return fmt.Errorf("storage: save %s: %w", name, statErr)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("storage: save %s: %w", name, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(b.Text()); err != nil {
		return fmt.Errorf("storage: save %s: %w", name, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("storage: save %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("storage: save %s: %w", name, err)
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("storage: save %s: %w", name, err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("storage: save %s: %w", name, err)
	}
	return nil
}
