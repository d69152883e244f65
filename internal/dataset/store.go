package dataset

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sdvn-lab/traffic-backend-go/internal/logger"
)

// Store holds the current Table behind an atomic pointer. Requests snapshot
// the pointer once, so every request observes a single immutable table even
// while a reload swaps in a new one.
type Store struct {
	path    string
	current atomic.Pointer[Table]
}

// NewStore loads the dataset from path and returns a store serving it.
// A missing or unparsable file is returned as an error so the caller can
// treat it as fatal at startup.
func NewStore(path string) (*Store, error) {
	records, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}

	s := &Store{path: path}
	s.current.Store(NewTable(records))
	logger.Infof("dataset loaded: %d segments from %s", len(records), path)
	return s, nil
}

// NewStoreFromTable wraps an existing table; used by tests to build synthetic
// datasets without touching the filesystem.
func NewStoreFromTable(t *Table) *Store {
	s := &Store{}
	s.current.Store(t)
	return s
}

// Table returns the current table snapshot.
func (s *Store) Table() *Table {
	return s.current.Load()
}

// Reload re-reads the CSV and swaps in the new table. On failure the previous
// table stays in place.
func (s *Store) Reload() error {
	records, err := LoadCSV(s.path)
	if err != nil {
		return err
	}
	s.current.Store(NewTable(records))
	logger.Infof("dataset reloaded: %d segments", len(records))
	return nil
}

// StartRefresh reloads the dataset every interval until ctx is cancelled.
// A zero or negative interval disables background refresh.
func (s *Store) StartRefresh(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Reload(); err != nil {
					logger.Warnf("dataset refresh failed, keeping previous table: %v", err)
				}
			}
		}
	}()
}
