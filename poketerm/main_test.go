package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/nathanieltooley/pokedex/dex"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out strings.Builder
	err := run(append([]string{"-config-dir", t.TempDir()}, args...), &out)
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		args     []string
		contains []string
	}{
		{[]string{"pokemon", "bulbasaur"}, []string{"#0001 Bulbasaur", "Grass", "Poison"}},
		{[]string{"pokemon", "25"}, []string{"Pikachu"}},
		{[]string{"move", "THUNDER SHOCK"}, []string{"Thunder Shock", "Electric"}},
		{[]string{"moves"}, []string{"Pound", "Karate Chop"}},
		{[]string{"effectiveness", "electric", "water", "flying"}, []string{"4x"}},
		{[]string{"effectiveness", "fire", "water", "dragon"}, []string{"0.25x"}},
		{[]string{"effectiveness", "ground", "flying"}, []string{"No Effect"}},
		{[]string{"matchup", "ember", "kingdra"}, []string{"Ember -> Kingdra", "0.25x"}},
		{[]string{"list"}, []string{"0001 Bulbasaur (Grass, Poison) | HP: 45", "0230 Kingdra"}},
	}

	for _, test := range tests {
		out, err := runCommand(t, test.args...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %s", test.args, err)
		}

		for _, expected := range test.contains {
			if !strings.Contains(strings.ToLower(out), strings.ToLower(expected)) {
				t.Fatalf("%v: expected %q in\n%s", test.args, expected, out)
			}
		}
	}
}

func TestDemo(t *testing.T) {
	out, err := runCommand(t, "demo")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines of demo output, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "HP: 45") || !strings.Contains(lines[2], "HP: 100") || !strings.Contains(lines[4], "HP: 45") {
		t.Fatalf("lookups should hand out copies:\n%s", out)
	}
}

func TestNotFound(t *testing.T) {
	var notFound *dex.NotFoundError

	if _, err := runCommand(t, "pokemon", "missingno"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if _, err := runCommand(t, "matchup", "hyper beam", "bulbasaur"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBadUsage(t *testing.T) {
	badArgs := [][]string{
		{},
		{"fly"},
		{"pokemon"},
		{"effectiveness", "fire"},
		{"effectiveness", "fire", "water", "grass", "rock"},
		{"effectiveness", "fire", "water", "water"},
	}

	for _, args := range badArgs {
		if _, err := runCommand(t, args...); !errors.Is(err, ErrUsage) {
			t.Fatalf("%v: expected ErrUsage, got %v", args, err)
		}
	}

	if _, err := runCommand(t, "effectiveness", "fire", "plastic"); err == nil {
		t.Fatalf("expected an unknown type to fail")
	}
}

func TestDataDirFlag(t *testing.T) {
	var out strings.Builder
	if err := run([]string{"-config-dir", t.TempDir(), "-data-dir", t.TempDir(), "list"}, &out); err == nil {
		t.Fatalf("expected an empty data dir to fail")
	}
}
