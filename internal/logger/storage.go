package logger

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

// DefaultStorageCapacity is the number of entries a Storage keeps when no
// capacity is given.
const DefaultStorageCapacity = 1024

// ErrStorageFull is returned when a Storage has no room for another entry.
// The entry is dropped.
var ErrStorageFull = errors.New("logger: storage full, entry dropped")

// Entry is a log record kept by Storage.
type Entry struct {
	Time    time.Time
	Level   zapcore.Level
	Logger  string
	Message string
	Caller  string
	Fields  map[string]interface{}
}

// Storage is a bounded in-memory log history. Once full, new entries are
// dropped and counted until Reset is called.
type Storage struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	dropped  int
}

// NewStorage creates a storage holding at most capacity entries.
// A non-positive capacity selects DefaultStorageCapacity.
func NewStorage(capacity int) *Storage {
	if capacity <= 0 {
		capacity = DefaultStorageCapacity
	}
	return &Storage{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
	}
}

// Add appends e, or returns ErrStorageFull.
func (s *Storage) Add(e Entry) error {
	_, err := s.add(e)
	return err
}

// add returns the drop count after the call.
func (s *Storage) add(e Entry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) >= s.capacity {
		s.dropped++
		return s.dropped, ErrStorageFull
	}
	s.entries = append(s.entries, e)
	return s.dropped, nil
}

// Entries returns a copy of the stored entries, oldest first.
func (s *Storage) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored entries.
func (s *Storage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cap returns the storage capacity.
func (s *Storage) Cap() int {
	return s.capacity
}

// Dropped returns how many entries were rejected since the last Reset.
func (s *Storage) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Reset empties the storage and clears the drop counter.
func (s *Storage) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = s.entries[:0]
	s.dropped = 0
}

// Core returns a zapcore.Core that records enabled entries into s.
// The first entry dropped after the storage fills makes Write fail with
// ErrStorageFull, which zap reports on its error output. Later drops are
// silent until Reset; Dropped counts them all.
func (s *Storage) Core(enab zapcore.LevelEnabler) zapcore.Core {
	return &storageCore{LevelEnabler: enab, storage: s}
}

type storageCore struct {
	zapcore.LevelEnabler
	storage *Storage
	fields  []zapcore.Field
}

func (c *storageCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(c.fields[:len(c.fields):len(c.fields)], fields...)
	return &clone
}

func (c *storageCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *storageCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	e := Entry{
		Time:    ent.Time,
		Level:   ent.Level,
		Logger:  ent.LoggerName,
		Message: ent.Message,
		Fields:  enc.Fields,
	}
	if ent.Caller.Defined {
		e.Caller = ent.Caller.TrimmedPath()
	}
	if dropped, err := c.storage.add(e); err != nil && dropped == 1 {
		return err
	}
	return nil
}

func (c *storageCore) Sync() error {
	return nil
}
