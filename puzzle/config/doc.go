// Package config provides preset management for the slide solver.
//
// The config package handles:
//   - Loading puzzle presets from JSON files
//   - Preset validation and verification
//   - Default preset management
//   - Preset discovery and listing
//
// Preset Format:
//
// Presets are stored as JSON files in the configs directory. Each preset
// defines:
//   - A start board as a nine-digit string, read row by row, 0 marking
//     the blank
//   - An optional suggested strategy (uniform_cost, greedy, astar)
//   - A display name and description
//
// Available Presets:
//
// The shipped presets cover a range of solution depths:
//   - classic: the familiar five-move instance
//   - easy: one move from the goal
//   - medium: twelve moves out
//   - hard: thirty moves out, the deepest reachable layout
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific preset
//	preset, err := manager.LoadPreset("easy")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default preset
//	defaultPreset := manager.GetDefault()
//
//	// List available presets
//	presets, err := manager.ListPresets()
//
// Validation:
//
// All presets are validated for:
//   - A well-formed board (nine digits 0-8, each exactly once)
//   - A known strategy name when one is given
//   - A non-empty display name
//
// A preset whose board is in the wrong parity class still loads; the
// listing marks it unsolvable so callers can warn before running a search.
package config
