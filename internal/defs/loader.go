// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadBalance reads a JSON balance sheet and overlays it on DefaultBalance.
// Fields missing from the file keep their defaults; unknown ant or tower
// names and invalid values are reported as errors.
func LoadBalance(path string) (*Balance, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file: %w", err)
	}

	b, err := ParseBalance(file)
	if err != nil {
		return nil, fmt.Errorf("balance %s: %w", path, err)
	}

	log.Printf("Loaded balance from %s (%d tower kinds, %d ant kinds)", path, len(b.Towers), len(b.Ants))
	return b, nil
}

// ParseBalance decodes a balance sheet from memory.
func ParseBalance(data []byte) (*Balance, error) {
	b := DefaultBalance()
	// Spawn tables are replaced as a whole, never merged element by element.
	defaultTables := b.SpawnTables
	b.SpawnTables = nil
	if err := json.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal balance: %w", err)
	}
	if b.SpawnTables == nil {
		b.SpawnTables = defaultTables
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balance: %w", err)
	}
	return b, nil
}
