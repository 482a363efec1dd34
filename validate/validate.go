// Command validate provides a small CLI that validates puzzle preset JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Board well-formedness (nine digits 0-8, each exactly once)
//   - Strategy names against the known strategies
//   - Solvability: boards in the wrong parity class are flagged, since no
//     move sequence can bring them to the goal
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tilelab/slidesolver/puzzle/board"
	"github.com/tilelab/slidesolver/puzzle/search"
)

// Preset mirrors the JSON schema for a puzzle preset.
type Preset struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Board       string `json:"board"`
	Strategy    string `json:"strategy"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validatePreset loads and validates a single preset JSON file. It performs
// structural checks, board parsing, strategy lookup, and a parity check.
func validatePreset(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var preset Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if preset.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Preset name is required")
	}

	b, err := board.Parse(preset.Board)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid board: %v", err))
		return result
	}

	var strategy search.Strategy
	if preset.Strategy != "" {
		strategy, err = search.ParseStrategy(preset.Strategy)
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid strategy: %v", err))
		}
	}

	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", preset.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %s", b.Key()))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Manhattan distance: %d", b.Manhattan()))
		if preset.Strategy != "" {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Strategy: %s", strategy))
		}
		if b.Solvable() {
			result.Errors = append(result.Errors, "✓ Solvable: yes")
		} else {
			// Still a valid preset, but worth flagging loudly
			result.Errors = append(result.Errors, "⚠ Solvable: NO (wrong parity class; every search will exhaust 181440 states)")
		}
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding preset files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validatePreset(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All presets are valid!")
	} else {
		fmt.Println("❌ Some presets have errors")
		os.Exit(1)
	}
}
