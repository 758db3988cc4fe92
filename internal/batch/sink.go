package batch

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/cardroom/holdemgen/internal/fileutil"
	"github.com/cardroom/holdemgen/internal/game"
)

// Sink receives completed hand records. Writes arrive in seed order.
type Sink interface {
	Write(record *game.Record) error
}

// DirSink writes one JSON file per hand, named game_seed_<seed>.json, using
// atomic writes so downstream ingestion never sees a partial record.
type DirSink struct {
	dir string
}

// NewDirSink creates the output directory if needed.
func NewDirSink(dir string) (*DirSink, error) {
	if err := fileutil.EnsureDir(dir); err != nil {
		return nil, err
	}
	return &DirSink{dir: dir}, nil
}

func (s *DirSink) Write(record *game.Record) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", record.GameID, err)
	}
	path := filepath.Join(s.dir, fmt.Sprintf("game_seed_%d.json", record.Seed))
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write record %s: %w", record.GameID, err)
	}
	return nil
}

// MemorySink keeps marshaled records by seed, for tests and in-process
// consumers.
type MemorySink struct {
	mu      sync.Mutex
	records map[int64][]byte
}

func NewMemorySink() *MemorySink {
	return &MemorySink{records: make(map[int64][]byte)}
}

func (s *MemorySink) Write(record *game.Record) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Seed] = data
	return nil
}

// Record returns the marshaled record for a seed, or nil.
func (s *MemorySink) Record(seed int64) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[seed]
}

// Len returns the number of stored records.
func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
