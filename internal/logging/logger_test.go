package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	t.Run("String creates field with key and string value", func(t *testing.T) {
		f := String("key", "value")
		if f.Key != "key" {
			t.Errorf("String().Key = %q, want %q", f.Key, "key")
		}
		if f.Value != "value" {
			t.Errorf("String().Value = %q, want %q", f.Value, "value")
		}
	})

	t.Run("Int creates field with key and int value", func(t *testing.T) {
		f := Int("count", 42)
		if f.Key != "count" {
			t.Errorf("Int().Key = %q, want %q", f.Key, "count")
		}
		if f.Value != 42 {
			t.Errorf("Int().Value = %v, want %v", f.Value, 42)
		}
	})

	t.Run("Uint64 creates field with key and uint64 value", func(t *testing.T) {
		f := Uint64("n", 12345678901234567890)
		if f.Value != uint64(12345678901234567890) {
			t.Errorf("Uint64().Value = %v, want %v", f.Value, uint64(12345678901234567890))
		}
	})

	t.Run("Float64 creates field with key and float64 value", func(t *testing.T) {
		f := Float64("sum", 3.5)
		if f.Value != 3.5 {
			t.Errorf("Float64().Value = %v, want %v", f.Value, 3.5)
		}
	})

	t.Run("Dur creates field with duration value", func(t *testing.T) {
		f := Dur("elapsed", 150*time.Millisecond)
		if f.Value != 150*time.Millisecond {
			t.Errorf("Dur().Value = %v, want %v", f.Value, 150*time.Millisecond)
		}
	})

	t.Run("Err creates field with error key", func(t *testing.T) {
		testErr := errors.New("test error")
		f := Err(testErr)
		if f.Key != "error" {
			t.Errorf("Err().Key = %q, want %q", f.Key, "error")
		}
		if f.Value != testErr {
			t.Errorf("Err().Value = %v, want %v", f.Value, testErr)
		}
	})
}

func TestNewLoggerLevels(t *testing.T) {
	t.Run("default level suppresses debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&buf, false)

		log.Debug("hidden")
		log.Info("shown")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Error("debug message emitted without verbose")
		}
		if !strings.Contains(out, "shown") {
			t.Error("info message missing")
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&buf, true)

		log.Debug("details")
		if !strings.Contains(buf.String(), "details") {
			t.Error("debug message missing with verbose")
		}
	})
}

func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, false)

	log.Info("request",
		String("path", "/api/v1/sequence"),
		Int("status", 200),
		Err(errors.New("partial failure")),
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}

	if entry["message"] != "request" {
		t.Errorf("message = %v, want request", entry["message"])
	}
	if entry["path"] != "/api/v1/sequence" {
		t.Errorf("path = %v, want /api/v1/sequence", entry["path"])
	}
	if entry["status"] != float64(200) {
		t.Errorf("status = %v, want 200", entry["status"])
	}
	if entry["error"] != "partial failure" {
		t.Errorf("error = %v, want partial failure", entry["error"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("log line has no timestamp")
	}
}

func TestNopLogger(t *testing.T) {
	// Must simply not panic.
	var log Logger = NopLogger{}
	log.Debug("a")
	log.Info("b", String("k", "v"))
	log.Warn("c")
	log.Error("d", Err(errors.New("ignored")))
}
