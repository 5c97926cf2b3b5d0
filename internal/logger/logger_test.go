package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf)
	l.Info("search finished", "found", 42, "keyword", "golang")

	line := strings.TrimSpace(buf.String())
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("log line is not JSON: %q: %v", line, err)
	}
	if !strings.Contains(line, "search finished") {
		t.Errorf("message missing from %q", line)
	}
	if rec["keyword"] != "golang" {
		t.Errorf("keyword = %v", rec["keyword"])
	}
}

func TestNewCreatesDailyFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l, err := New(Options{Dir: dir, MaxSizeMB: 1, MaxBackups: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Warn("region not found", "region", "Атлантида")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "Атлантида") {
		t.Errorf("log file missing record: %s", data)
	}
}

func TestErrorValuesKeepTheirText(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf)
	l.Error("action failed", "choice", "1", "error", errors.New("boom"))

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("log line is not JSON: %q: %v", buf.String(), err)
	}
	if rec["error"] != "boom" {
		t.Errorf("error = %#v, want \"boom\"", rec["error"])
	}
}
