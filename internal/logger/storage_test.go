package logger

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestStorageDefaultCapacity(t *testing.T) {
	if got := NewStorage(0).Cap(); got != DefaultStorageCapacity {
		t.Errorf("expected capacity %d, got %d", DefaultStorageCapacity, got)
	}
	if got := NewStorage(-3).Cap(); got != DefaultStorageCapacity {
		t.Errorf("expected capacity %d, got %d", DefaultStorageCapacity, got)
	}
}

func TestStorageOverflow(t *testing.T) {
	s := NewStorage(2)

	for i := 0; i < 2; i++ {
		if err := s.Add(Entry{Message: fmt.Sprint(i)}); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	err := s.Add(Entry{Message: "overflow"})
	if !errors.Is(err, ErrStorageFull) {
		t.Fatalf("expected ErrStorageFull, got %v", err)
	}
	_ = s.Add(Entry{Message: "overflow again"})

	if s.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", s.Len())
	}
	if s.Dropped() != 2 {
		t.Errorf("expected 2 dropped, got %d", s.Dropped())
	}

	entries := s.Entries()
	if entries[0].Message != "0" || entries[1].Message != "1" {
		t.Errorf("unexpected order: %v", entries)
	}

	s.Reset()
	if s.Len() != 0 || s.Dropped() != 0 {
		t.Errorf("reset left len=%d dropped=%d", s.Len(), s.Dropped())
	}
	if err := s.Add(Entry{Message: "after reset"}); err != nil {
		t.Errorf("add after reset: %v", err)
	}
}

func TestStorageEntriesIsCopy(t *testing.T) {
	s := NewStorage(4)
	_ = s.Add(Entry{Message: "original"})

	entries := s.Entries()
	entries[0].Message = "changed"

	if got := s.Entries()[0].Message; got != "original" {
		t.Errorf("storage mutated through copy: %q", got)
	}
}

func TestStorageCoreSurfacesOverflow(t *testing.T) {
	s := NewStorage(1)
	core := s.Core(zapcore.DebugLevel)

	ent := zapcore.Entry{Level: zapcore.InfoLevel, Message: "first"}
	if err := core.Write(ent, nil); err != nil {
		t.Fatalf("first write: %v", err)
	}

	ent.Message = "second"
	if err := core.Write(ent, nil); !errors.Is(err, ErrStorageFull) {
		t.Errorf("expected ErrStorageFull, got %v", err)
	}
	if s.Dropped() != 1 {
		t.Errorf("expected 1 dropped, got %d", s.Dropped())
	}

	ent.Message = "third"
	if err := core.Write(ent, nil); err != nil {
		t.Errorf("expected later drops to be silent, got %v", err)
	}
	if s.Dropped() != 2 {
		t.Errorf("expected 2 dropped, got %d", s.Dropped())
	}

	s.Reset()
	if err := core.Write(ent, nil); err != nil {
		t.Fatalf("write after reset: %v", err)
	}
	if err := core.Write(ent, nil); !errors.Is(err, ErrStorageFull) {
		t.Errorf("expected ErrStorageFull after reset, got %v", err)
	}
}

func TestStorageOverflowReportedOnce(t *testing.T) {
	var errOut bytes.Buffer
	s := NewStorage(2)
	l := zap.New(s.Core(zapcore.DebugLevel), zap.ErrorOutput(zapcore.AddSync(&errOut)))

	for i := 0; i < 10; i++ {
		l.Info("volume culled", zap.Int("index", i))
	}

	if n := strings.Count(errOut.String(), "write error"); n != 1 {
		t.Errorf("expected 1 write error line, got %d: %q", n, errOut.String())
	}
	if s.Dropped() != 8 {
		t.Errorf("expected 8 dropped, got %d", s.Dropped())
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 stored, got %d", s.Len())
	}
}

func TestStorageCoreWithFields(t *testing.T) {
	s := NewStorage(4)
	l := zap.New(s.Core(zapcore.InfoLevel)).Named("cull").With(zap.Int("worker", 3))

	l.Info("culled", zap.String("volume", "tree"))
	l.Debug("not enabled")

	entries := s.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Logger != "cull" {
		t.Errorf("expected logger name cull, got %q", e.Logger)
	}
	if e.Fields["worker"] != int64(3) {
		t.Errorf("expected worker field, got %v", e.Fields)
	}
	if e.Fields["volume"] != "tree" {
		t.Errorf("expected volume field, got %v", e.Fields)
	}
}

func TestStorageCoreWithDoesNotLeak(t *testing.T) {
	s := NewStorage(4)
	base := zap.New(s.Core(zapcore.InfoLevel))

	base.With(zap.String("a", "1")).Info("one")
	base.With(zap.String("b", "2")).Info("two")

	entries := s.Entries()
	if _, ok := entries[1].Fields["a"]; ok {
		t.Errorf("field from sibling logger leaked: %v", entries[1].Fields)
	}
}

func TestStorageConcurrentAdd(t *testing.T) {
	s := NewStorage(100)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				_ = s.Add(Entry{Message: "x"})
			}
		}()
	}
	wg.Wait()

	if s.Len()+s.Dropped() != 200 {
		t.Errorf("lost entries: len=%d dropped=%d", s.Len(), s.Dropped())
	}
	if s.Len() != 100 {
		t.Errorf("expected storage full, got %d", s.Len())
	}
}
