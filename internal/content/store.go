// Package content holds the constellation text tables the skill reads from.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed data/*.json
var embedded embed.FS

const (
	infoFile = "data/constellation-info.json"
	mythFile = "data/constellation-myth.json"
)

// Store is a read-only pair of tables keyed by lowercase constellation name.
// The two tables are independent; a name may appear in one and not the other.
type Store struct {
	info map[string]string
	myth map[string]string
}

// New copies info and myth, lowercasing their keys.
func New(info, myth map[string]string) *Store {
	return &Store{info: lowerKeys(info), myth: lowerKeys(myth)}
}

// Info returns the descriptive text for name.
func (s *Store) Info(name string) (string, bool) {
	return lookup(s.info, name)
}

// Myth returns the mythology text for name.
func (s *Store) Myth(name string) (string, bool) {
	return lookup(s.myth, name)
}

// Len reports the number of entries in each table.
func (s *Store) Len() (info, myth int) {
	return len(s.info), len(s.myth)
}

// Defaults returns a Store built from the tables compiled into the binary.
func Defaults() (*Store, error) {
	info, err := readEmbedded(infoFile)
	if err != nil {
		return nil, err
	}
	myth, err := readEmbedded(mythFile)
	if err != nil {
		return nil, err
	}
	return New(info, myth), nil
}

func readEmbedded(name string) (map[string]string, error) {
	raw, err := embedded.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", name, err)
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("content: decode %s: %w", name, err)
	}
	return m, nil
}

// lookup case-folds name and matches it verbatim; no other normalization.
func lookup(table map[string]string, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	v, ok := table[strings.ToLower(name)]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func lowerKeys(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToLower(k)] = v
	}
	return out
}
