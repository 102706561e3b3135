// Package shared provides common utility functions used across multiple
// packages in the llm-game-gen codebase.
package shared

import "strings"

// NormalizePackName lowercases a pack name and replaces underscores,
// dots, and spaces with hyphens, following PEP 503 normalization. Lock
// records and via annotations always carry normalized names.
func NormalizePackName(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	replacer := strings.NewReplacer("_", "-", ".", "-", " ", "-")
	return replacer.Replace(lower)
}
