// Package jsonstore persists settings, history, bookmarks and downloads as
// one JSON document per collaborator.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gekko-browser/gekko/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o600
)

// PersistenceError is returned for any storage failure. Callers degrade
// to defaults; the theme coordinator treats it as retriable.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// document is a single JSON file. Access is serialized in-process by mu
// and across processes by an advisory lock on path+".lock".
type document[T any] struct {
	path       string
	newDefault func() T
	mu         sync.Mutex
}

func newDocument[T any](path string, newDefault func() T) *document[T] {
	return &document[T]{path: path, newDefault: newDefault}
}

// Load reads the document. A missing file yields the default; a corrupt
// file is replaced with the default and logged.
func (d *document[T]) Load(ctx context.Context) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out T
	err := d.withLock(func() error {
		var err error
		out, err = d.readLocked(ctx)
		return err
	})
	return out, err
}

// Update loads the document, applies fn and writes the result back
// atomically. If fn returns an error nothing is written.
func (d *document[T]) Update(ctx context.Context, fn func(*T) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.withLock(func() error {
		value, err := d.readLocked(ctx)
		if err != nil {
			return err
		}
		if err := fn(&value); err != nil {
			return err
		}
		return d.writeLocked(value)
	})
}

func (d *document[T]) withLock(fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(d.path), dirPerm); err != nil {
		return &PersistenceError{Op: "mkdir", Path: filepath.Dir(d.path), Err: err}
	}
	unlock, err := lockFile(d.path + ".lock")
	if err != nil {
		return &PersistenceError{Op: "lock", Path: d.path, Err: err}
	}
	defer unlock()
	return fn()
}

func (d *document[T]) readLocked(ctx context.Context) (T, error) {
	data, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		return d.newDefault(), nil
	}
	if err != nil {
		return d.newDefault(), &PersistenceError{Op: "read", Path: d.path, Err: err}
	}

	value := d.newDefault()
	if len(data) == 0 {
		return value, nil
	}
	if err := json.Unmarshal(data, &value); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("path", d.path).
			Msg("corrupt document replaced with default")
		value = d.newDefault()
		if werr := d.writeLocked(value); werr != nil {
			logging.FromContext(ctx).Warn().Err(werr).Str("path", d.path).Msg("failed to reset corrupt document")
		}
	}
	return value, nil
}

// writeLocked writes to a temp file in the same directory and renames it
// over the document.
func (d *document[T]) writeLocked(value T) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode", Path: d.path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), filepath.Base(d.path)+".*.tmp")
	if err != nil {
		return &PersistenceError{Op: "create", Path: d.path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "write", Path: d.path, Err: err}
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "chmod", Path: d.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistenceError{Op: "close", Path: d.path, Err: err}
	}
	if err := os.Rename(tmpName, d.path); err != nil {
		return &PersistenceError{Op: "rename", Path: d.path, Err: err}
	}
	return nil
}
