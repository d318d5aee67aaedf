package log

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ntrace")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("trace file was not created")
	}
}

func TestFileLoggerWritesCBOR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ntrace")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	event := Event{
		Timestamp:  time.Now(),
		Kind:       KindOpen,
		ProjectKey: "pkey1",
		ModuleKey:  "mkey1",
		Members:    1,
	}
	logger.Log(event)
	logger.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read trace file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("trace file is empty")
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	if decoded.ProjectKey != "pkey1" {
		t.Errorf("ProjectKey: got %q, want %q", decoded.ProjectKey, "pkey1")
	}
	if decoded.Members != 1 {
		t.Errorf("Members: got %d, want 1", decoded.Members)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ntrace")

	for i, key := range []string{"pkey1", "pkey2"} {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger #%d failed: %v", i, err)
		}
		logger.Log(Event{Timestamp: time.Now(), Kind: KindOpen, ProjectKey: key})
		logger.Close()
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var keys []string
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		keys = append(keys, event.ProjectKey)
	}
	if len(keys) != 2 || keys[0] != "pkey1" || keys[1] != "pkey2" {
		t.Errorf("keys = %v, want [pkey1 pkey2]", keys)
	}
}

func TestFileLoggerCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ntrace")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	// Log after close is ignored
	logger.Log(Event{Kind: KindOpen})

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("file size = %d after logging on closed logger, want 0", info.Size())
	}
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ntrace")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	const goroutines = 8
	const perGoroutine = 25

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				logger.Log(Event{Timestamp: time.Now(), Kind: KindJoin, ProjectKey: "pkey1"})
			}
		}()
	}
	wg.Wait()
	logger.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		if _, err := reader.Next(); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("Next failed after %d events: %v", count, err)
		}
		count++
	}
	if count != goroutines*perGoroutine {
		t.Errorf("read %d events, want %d", count, goroutines*perGoroutine)
	}
}

func TestNewFileLoggerBadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "dir", "x.ntrace"))
	if err == nil {
		t.Error("NewFileLogger should fail for a missing directory")
	}
}

func TestCreateFileLoggerTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ntrace")
	if err := os.WriteFile(path, []byte("stale content"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	logger, err := CreateFileLogger(path)
	if err != nil {
		t.Fatalf("CreateFileLogger failed: %v", err)
	}
	logger.Log(Event{Timestamp: time.Now(), Kind: KindClose, ProjectKey: "pkey1"})
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if event.Kind != KindClose {
		t.Errorf("Kind = %v, want CLOSE", event.Kind)
	}
	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("expected EOF after one event, got %v", err)
	}
}

func TestFileLoggerReportsWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ntrace")

	logger, err := CreateFileLogger(path)
	if err != nil {
		t.Fatalf("CreateFileLogger failed: %v", err)
	}
	logger.Log(Event{Timestamp: time.Now(), Kind: KindOpen, ProjectKey: "pkey1"})

	// Writes to a closed descriptor fail
	logger.file.Close()
	logger.Log(Event{Timestamp: time.Now(), Kind: KindJoin, ProjectKey: "pkey1"})
	logger.Log(Event{Timestamp: time.Now(), Kind: KindLeave, ProjectKey: "pkey1"})

	if got := logger.Written(); got != 1 {
		t.Errorf("Written = %d, want 1", got)
	}
	if logger.Err() == nil {
		t.Fatal("Err should report the failed write")
	}
	if err := logger.Close(); err == nil {
		t.Error("Close should report the failed write")
	}
	if err := logger.Close(); err == nil {
		t.Error("second Close should still report the failed write")
	}
}
