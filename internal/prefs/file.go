package prefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/and161185/kid-clinic/internal/errs"
)

// File keeps preferences in a single JSON document that survives restarts.
type File struct {
	path string
	mu   sync.Mutex
}

var _ Store = (*File)(nil)

// NewFile constructs a file-backed store at path. The file is created on first write.
func NewFile(path string) *File { return &File{path: path} }

// Path returns the backing file path.
func (s *File) Path() string { return s.path }

// Get implements Store.
func (s *File) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

// Set implements Store.
func (s *File) Set(ctx context.Context, key, value string) error {
	if err := CheckEntry(key, value); err != nil {
		return err
	}
	return s.update(ctx, func(m map[string]string) { m[key] = value })
}

// Delete implements Store.
func (s *File) Delete(ctx context.Context, key string) error {
	return s.update(ctx, func(m map[string]string) { delete(m, key) })
}

func (s *File) update(ctx context.Context, fn func(map[string]string)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return err
	}
	fn(m)
	return s.save(m)
}

func (s *File) load() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", s.path, errs.ErrPersistence, err)
	}
	m := map[string]string{}
	if len(b) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", s.path, errs.ErrPersistence, err)
	}
	return m, nil
}

// save writes to a temp file and renames it over the target so readers never see a torn document.
func (s *File) save(m map[string]string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w: %w", dir, errs.ErrPersistence, err)
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode prefs: %w: %w", errs.ErrPersistence, err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w: %w", errs.ErrPersistence, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp: %w: %w", errs.ErrPersistence, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp: %w: %w", errs.ErrPersistence, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w: %w", errs.ErrPersistence, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename prefs: %w: %w", errs.ErrPersistence, err)
	}
	return nil
}
