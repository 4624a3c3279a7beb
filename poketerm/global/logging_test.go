package global

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLog(t *testing.T, path string) string {
	t.Helper()

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %s", path, err)
	}

	return string(contents)
}

func TestRollingWriterAppends(t *testing.T) {
	logDir := t.TempDir()
	writer := NewRollingFileWriter(logDir, "test", 1000, 2)

	writer.Write([]byte("one\n"))
	writer.Write([]byte("two\n"))

	if contents := readLog(t, filepath.Join(logDir, "test.log")); contents != "one\ntwo\n" {
		t.Fatalf("unexpected log contents %q", contents)
	}
}

func TestRollingWriterRolls(t *testing.T) {
	logDir := t.TempDir()
	writer := NewRollingFileWriter(logDir, "test", 5, 3)

	// every write after the first goes over the 5 byte limit and rolls
	for _, line := range []string{"first\n", "second\n", "third\n", "fourth\n"} {
		if _, err := writer.Write([]byte(line)); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}

	if contents := readLog(t, filepath.Join(logDir, "test.log")); contents != "fourth\n" {
		t.Fatalf("main log: %q", contents)
	}
	if contents := readLog(t, filepath.Join(logDir, "test-1.log")); contents != "third\n" {
		t.Fatalf("test-1.log: %q", contents)
	}
	if contents := readLog(t, filepath.Join(logDir, "test-2.log")); contents != "second\n" {
		t.Fatalf("test-2.log: %q", contents)
	}

	entries, _ := os.ReadDir(logDir)
	if len(entries) != 3 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected 3 log files, got %s", strings.Join(names, ", "))
	}
}

func TestRollingWriterSingleLog(t *testing.T) {
	logDir := t.TempDir()
	writer := NewRollingFileWriter(logDir, "test", 1, 1)

	writer.Write([]byte("old\n"))
	writer.Write([]byte("new\n"))

	if contents := readLog(t, filepath.Join(logDir, "test.log")); contents != "new\n" {
		t.Fatalf("main log: %q", contents)
	}
	if _, err := os.Stat(filepath.Join(logDir, "test-1.log")); err == nil {
		t.Fatalf("no archived logs should be kept")
	}
}

func TestGetLogIndex(t *testing.T) {
	tests := map[string]int64{
		"/logs/pokedex-1.log":   1,
		"/logs/pokedex-12.log":  12,
		"/logs/pokedex-abc.log": -1,
		"/logs/pokedex-0.log":   -1,
		"/logs/other-3.log":     -1,
	}

	for path, expected := range tests {
		if index := getLogIndex("pokedex", path); index != expected {
			t.Fatalf("%s: expected %d, got %d", path, expected, index)
		}
	}
}
