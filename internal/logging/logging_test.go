package logging

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestTail_MissingFileReturnsNothing(t *testing.T) {
	lines, err := Tail(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if lines != nil {
		t.Fatalf("Tail = %v, want nil for missing file", lines)
	}
}

func TestTail_ReturnsLastLinesInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.log")
	var b strings.Builder
	for i := 1; i <= 25; i++ {
		b.WriteString("line " + strconv.Itoa(i) + "\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	lines, err := Tail(path, 10)
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(lines) != 10 {
		t.Fatalf("len(lines) = %d, want 10", len(lines))
	}
	if lines[0] != "line 16" || lines[9] != "line 25" {
		t.Fatalf("lines = %v, want line 16..line 25", lines)
	}
}

func TestTail_ShortFileReturnsAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.log")
	if err := os.WriteFile(path, []byte("a\nb\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	lines, err := Tail(path, 10)
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Fatalf("lines = %v, want [a b]", lines)
	}
}

func TestSetup_EmptyPathLeavesLoggingDisabled(t *testing.T) {
	if err := Setup("", "debug"); err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
}

func TestSetup_CreatesDirAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "m.log")
	if err := Setup(path, "warn"); err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	L().Warn("hello")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log file = %q, want it to contain hello", data)
	}
}
