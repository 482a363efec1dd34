package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePreset(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write preset: %v", err)
	}
	return path
}

func TestAnalyzeBoard_Solvable(t *testing.T) {
	var buf bytes.Buffer
	if err := analyzeBoard(&buf, "283164705"); err != nil {
		t.Fatalf("analyzeBoard failed: %v", err)
	}

	out := buf.String()
	expected := []string{
		"Board: 283164705",
		"2 8 3",
		"7 . 5",
		"Manhattan Distance: 5",
		"Solvable",
		"uniform_cost",
		"greedy",
		"astar",
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestAnalyzeBoard_Unsolvable(t *testing.T) {
	var buf bytes.Buffer
	if err := analyzeBoard(&buf, "213804765"); err != nil {
		t.Fatalf("analyzeBoard failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "wrong parity class") {
		t.Errorf("Expected parity warning in output, got:\n%s", out)
	}
	if !strings.Contains(out, "181440") {
		t.Errorf("Expected state-count note in output, got:\n%s", out)
	}
	if strings.Contains(out, "STRATEGY") {
		t.Errorf("Expected no strategy table for unsolvable board, got:\n%s", out)
	}
}

func TestAnalyzeBoard_Malformed(t *testing.T) {
	var buf bytes.Buffer
	if err := analyzeBoard(&buf, "123456789"); err == nil {
		t.Error("Expected error for board without a blank")
	}
}

func TestAnalyzePresetFile(t *testing.T) {
	dir := t.TempDir()
	path := writePreset(t, dir, "classic.json", `{
		"name": "Classic",
		"description": "Five moves from the goal",
		"board": "283164705",
		"strategy": "astar"
	}`)

	var buf bytes.Buffer
	if err := analyzePresetFile(&buf, path); err != nil {
		t.Fatalf("analyzePresetFile failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Name: Classic", "Description: Five moves from the goal", "Suggested Strategy: astar", "Board: 283164705"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestAnalyzePresetFile_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writePreset(t, dir, "broken.json", `{"name": broken}`)

	var buf bytes.Buffer
	if err := analyzePresetFile(&buf, path); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestAnalyzePresetFile_Missing(t *testing.T) {
	var buf bytes.Buffer
	if err := analyzePresetFile(&buf, "/non/existent/preset.json"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestAnalyzePresets(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "easy.json", `{"name": "Easy", "board": "123084765", "strategy": "greedy"}`)
	writePreset(t, dir, "swapped.json", `{"name": "Swapped", "board": "213804765"}`)
	writePreset(t, dir, "notes.txt", "ignored")

	var buf bytes.Buffer
	if err := analyzePresets(&buf, dir); err != nil {
		t.Fatalf("analyzePresets failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "=== Analyzing easy.json ===") {
		t.Errorf("Expected easy.json header, got:\n%s", out)
	}
	if !strings.Contains(out, "=== Analyzing swapped.json ===") {
		t.Errorf("Expected swapped.json header, got:\n%s", out)
	}
	if strings.Contains(out, "notes.txt") {
		t.Errorf("Expected non-JSON files to be skipped, got:\n%s", out)
	}
	if !strings.Contains(out, "wrong parity class") {
		t.Errorf("Expected parity warning for swapped preset, got:\n%s", out)
	}
}

func TestAnalyzePresets_EmptyDir(t *testing.T) {
	var buf bytes.Buffer
	if err := analyzePresets(&buf, t.TempDir()); err == nil {
		t.Error("Expected error for directory without presets")
	}
}
