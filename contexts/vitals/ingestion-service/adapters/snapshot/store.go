package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	domainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
	"tensio/contexts/vitals/ingestion-service/ports"
)

const filePrefix = "snapshot_"

// Store is the time-stamped local dataset cache: one JSON file per refresh
// under Dir, named snapshot_<YYYYMMDD_HHMMSS>_<id>.json so lexical order is
// chronological order.
type Store struct {
	Dir string

	mu sync.Mutex
}

type snapshotFile struct {
	Meta    ports.SnapshotMeta `json:"meta"`
	Dataset ports.Dataset      `json:"dataset"`
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) Save(_ context.Context, meta ports.SnapshotMeta, dataset ports.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("%s%s_%s.json", filePrefix, meta.CreatedAt.UTC().Format("20060102_150405"), meta.SnapshotID)
	payload, err := json.MarshalIndent(snapshotFile{Meta: meta, Dataset: dataset}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	// Write-then-rename so Latest never observes a half-written file.
	tmp := filepath.Join(s.Dir, name+".tmp")
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, filepath.Join(s.Dir, name)); err != nil {
		return fmt.Errorf("finalize snapshot: %w", err)
	}
	return nil
}

// Latest returns the newest snapshot that still decodes. Corrupt files are
// skipped so one bad write cannot take the fallback path down with it.
func (s *Store) Latest(_ context.Context) (ports.SnapshotMeta, ports.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names, err := s.fileNames()
	if err != nil {
		return ports.SnapshotMeta{}, ports.Dataset{}, err
	}
	for i := len(names) - 1; i >= 0; i-- {
		content, err := s.decode(names[i])
		if err != nil {
			continue
		}
		return content.Meta, content.Dataset, nil
	}
	return ports.SnapshotMeta{}, ports.Dataset{}, domainerrors.ErrSnapshotNotFound
}

func (s *Store) List(_ context.Context) ([]ports.SnapshotMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names, err := s.fileNames()
	if err != nil {
		return nil, err
	}
	metas := make([]ports.SnapshotMeta, 0, len(names))
	for i := len(names) - 1; i >= 0; i-- {
		content, err := s.decode(names[i])
		if err != nil {
			continue
		}
		metas = append(metas, content.Meta)
	}
	return metas, nil
}

// Prune removes all but the keep newest snapshot files and returns how many
// were deleted.
func (s *Store) Prune(_ context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	names, err := s.fileNames()
	if err != nil {
		return 0, err
	}
	if len(names) <= keep {
		return 0, nil
	}

	removed := 0
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(s.Dir, name)); err == nil {
			removed++
		}
	}
	return removed, nil
}

func (s *Store) fileNames() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot dir: %w", err)
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) decode(name string) (snapshotFile, error) {
	payload, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return snapshotFile{}, err
	}
	var content snapshotFile
	if err := json.Unmarshal(payload, &content); err != nil {
		return snapshotFile{}, err
	}
	return content, nil
}
