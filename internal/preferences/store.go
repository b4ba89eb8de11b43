package preferences

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"itemlists/internal/logging"
)

// LockFileName is created inside the preferences directory while a
// read-modify-write cycle is in progress.
const LockFileName = ".itemlists.lock"

const lockRetryDelay = 50 * time.Millisecond

// Load reads and parses the preferences file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	return Parse(data)
}

// Write replaces the file at path with doc. The write goes through a temp
// file in the same directory so readers never observe a partial document.
func Write(path string, doc *Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, mode); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Store loads and saves the located preferences file.
type Store struct {
	locator Locator
	logger  *slog.Logger
}

// NewStore creates a store over the given locator.
func NewStore(locator Locator, logger *slog.Logger) *Store {
	return &Store{
		locator: locator,
		logger:  logging.NewComponentLogger(logger, "preferences"),
	}
}

// Locator returns the store's file locator.
func (s *Store) Locator() Locator {
	return s.locator
}

// Load locates and parses the current preferences file.
func (s *Store) Load() (*Document, string, error) {
	path, err := s.locator.Find()
	if err != nil {
		return nil, "", err
	}
	doc, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	s.logger.Debug("loaded preferences",
		logging.String(logging.FieldPath, path),
		logging.String("mode", string(doc.Mode())))
	return doc, path, nil
}

// Save locates the preferences file again and overwrites it with doc. The
// target is whichever file is newest at save time.
func (s *Store) Save(doc *Document) (string, error) {
	path, err := s.locator.Find()
	if err != nil {
		return "", err
	}
	if err := Write(path, doc); err != nil {
		return path, err
	}
	s.logger.Info("saved preferences", logging.String(logging.FieldPath, path))
	return path, nil
}

// Update runs fn against a freshly loaded document and saves the result, all
// while holding the directory lock. fn errors abort without writing.
func (s *Store) Update(ctx context.Context, fn func(doc *Document) error) (string, error) {
	unlock, err := s.Lock(ctx)
	if err != nil {
		return "", err
	}
	defer unlock()

	doc, loadedPath, err := s.Load()
	if err != nil {
		return loadedPath, err
	}
	if err := fn(doc); err != nil {
		return loadedPath, err
	}
	savedPath, err := s.Save(doc)
	if err != nil {
		return savedPath, err
	}
	if savedPath != loadedPath {
		logging.WarnWithContext(s.logger, "preferences file changed between load and save", "preferences_path_changed",
			logging.String("loaded_path", loadedPath),
			logging.String("saved_path", savedPath),
			logging.String(logging.FieldErrorHint, "another account's preferences became the newest file"),
			logging.String(logging.FieldImpact, "changes were written to the newer file"))
	}
	return savedPath, nil
}

// Lock acquires the advisory lock in the preferences directory, waiting until
// ctx is done. The returned func releases it.
func (s *Store) Lock(ctx context.Context) (func(), error) {
	info, err := os.Stat(s.locator.Dir)
	if err != nil || !info.IsDir() {
		return nil, &NotFoundError{msg: fmt.Sprintf("RuneLite directory not found: %s", s.locator.Dir)}
	}

	lockPath := filepath.Join(s.locator.Dir, LockFileName)
	lock := flock.New(lockPath)
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("preferences are locked by another process (%s): %w", lockPath, err)
		}
		return nil, fmt.Errorf("acquire preferences lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("preferences are locked by another process (%s)", lockPath)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn("failed to release preferences lock", logging.Error(err))
		}
	}, nil
}
