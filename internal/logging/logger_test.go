package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetup_WritesJSONWithSession(t *testing.T) {
	restoreDefault(t)
	path := filepath.Join(t.TempDir(), "state", "tripdesk.log")

	logger, closer, err := Setup("info", "json", path)
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("fetch users failed", "endpoint", "http://example.test/users")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("log has %d lines, want 1 (debug filtered): %q", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Unmarshal log line: %v", err)
	}
	if entry["msg"] != "fetch users failed" {
		t.Fatalf("msg = %v, want fetch users failed", entry["msg"])
	}
	session, _ := entry["session"].(string)
	if _, err := uuid.Parse(session); err != nil {
		t.Fatalf("session = %q, want a uuid: %v", session, err)
	}
}

func TestSetup_EmptyPathDiscards(t *testing.T) {
	restoreDefault(t)

	logger, closer, err := Setup("debug", "text", "  ")
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if slog.Default() != logger {
		t.Fatalf("Setup did not install the default logger")
	}
}

func TestSetup_UnwritableDirErrors(t *testing.T) {
	restoreDefault(t)
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, _, err := Setup("info", "text", filepath.Join(blocker, "sub", "x.log")); err == nil {
		t.Fatalf("Setup returned nil error for a path under a regular file")
	}
}
