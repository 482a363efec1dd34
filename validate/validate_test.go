package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempPreset(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "test_preset_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write preset: %v", err)
	}
	tmpfile.Close()
	return tmpfile.Name()
}

func TestValidatePreset_ValidPreset(t *testing.T) {
	validPreset := `{
		"name": "Classic",
		"description": "Five moves from the goal",
		"board": "283164705",
		"strategy": "astar"
	}`

	path := writeTempPreset(t, validPreset)

	result := validatePreset(path)
	if !result.Valid {
		t.Errorf("Expected valid preset, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}

	joined := strings.Join(result.Errors, "\n")
	if !strings.Contains(joined, "Solvable: yes") {
		t.Errorf("Expected solvability info, got: %v", result.Errors)
	}
	if !strings.Contains(joined, "Manhattan distance: 5") {
		t.Errorf("Expected Manhattan distance 5, got: %v", result.Errors)
	}
}

func TestValidatePreset_InvalidJSON(t *testing.T) {
	path := writeTempPreset(t, `{"name": "test", invalid json}`)

	result := validatePreset(path)
	if result.Valid {
		t.Error("Expected invalid result for malformed JSON")
	}

	if !strings.Contains(strings.Join(result.Errors, "\n"), "Invalid JSON") {
		t.Errorf("Expected JSON error, got: %v", result.Errors)
	}
}

func TestValidatePreset_MissingName(t *testing.T) {
	path := writeTempPreset(t, `{
		"description": "No name",
		"board": "283164705"
	}`)

	result := validatePreset(path)
	if result.Valid {
		t.Error("Expected invalid result for missing name")
	}
}

func TestValidatePreset_MalformedBoards(t *testing.T) {
	tests := []struct {
		name  string
		board string
	}{
		{"too short", "12345678"},
		{"too long", "1234567890"},
		{"duplicate tile", "123456799"},
		{"missing blank", "123456789"},
		{"non-digit", "12345678a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempPreset(t, `{
				"name": "Broken",
				"board": "`+tt.board+`"
			}`)

			result := validatePreset(path)
			if result.Valid {
				t.Errorf("Expected invalid result for board %q", tt.board)
			}
		})
	}
}

func TestValidatePreset_UnknownStrategy(t *testing.T) {
	path := writeTempPreset(t, `{
		"name": "Bad Strategy",
		"board": "283164705",
		"strategy": "quantum"
	}`)

	result := validatePreset(path)
	if result.Valid {
		t.Error("Expected invalid result for unknown strategy")
	}

	if !strings.Contains(strings.Join(result.Errors, "\n"), "Invalid strategy") {
		t.Errorf("Expected strategy error, got: %v", result.Errors)
	}
}

func TestValidatePreset_EmptyStrategyAllowed(t *testing.T) {
	path := writeTempPreset(t, `{
		"name": "No Strategy",
		"board": "283164705"
	}`)

	result := validatePreset(path)
	if !result.Valid {
		t.Errorf("Expected valid preset without strategy, got errors: %v", result.Errors)
	}
}

func TestValidatePreset_UnsolvableFlagged(t *testing.T) {
	path := writeTempPreset(t, `{
		"name": "Swapped",
		"board": "213804765",
		"strategy": "astar"
	}`)

	result := validatePreset(path)
	// Unsolvable is a warning, not a validation failure
	if !result.Valid {
		t.Errorf("Expected valid result for unsolvable board, got errors: %v", result.Errors)
	}

	if !strings.Contains(strings.Join(result.Errors, "\n"), "Solvable: NO") {
		t.Errorf("Expected unsolvable warning, got: %v", result.Errors)
	}
}

func TestValidatePreset_MissingFile(t *testing.T) {
	result := validatePreset("/non/existent/preset.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
}
