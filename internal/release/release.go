package release

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cardhaus/checklister/internal/card"
)

// SchemaURI is the schema identifier stamped on every release document.
const SchemaURI = "http://json-schema.org/draft-07/schema#"

// Version is the document format version.
const Version = "1.0"

// Release is the top-level document for one checklist release: the full
// year/brand/program/sport catalog entry and its sets.
type Release struct {
	Schema     string   `json:"$schema"`
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	UniqueID   string   `json:"uniqueId"`
	Attributes []string `json:"attributes"`
	Notes      []string `json:"notes"`
	Sets       []Set    `json:"sets"`
}

// Set is one base checklist within a release, together with its cards and
// set-level parallels. Variations is a placeholder for a future document
// revision and is always emitted as an empty list.
type Set struct {
	UniqueID   string          `json:"uniqueId"`
	Name       string          `json:"name"`
	Cards      []card.Card     `json:"cards"`
	Parallels  []card.Parallel `json:"parallels"`
	Variations []Variation     `json:"variations"`
	NumberedTo int             `json:"numberedTo,omitempty"`
}

// Variation is reserved; no checklist source populates it yet.
type Variation struct{}

// New returns a release document shell with the schema tag, version and a
// fresh identifier filled in.
func New(name string) *Release {
	return &Release{
		Schema:     SchemaURI,
		Name:       name,
		Version:    Version,
		UniqueID:   card.NewID(),
		Attributes: []string{},
		Notes:      []string{},
		Sets:       []Set{},
	}
}

// Load reads and parses a release document from disk.
func Load(path string) (*Release, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading release file: %w", err)
	}

	var rel Release
	if err := json.Unmarshal(data, &rel); err != nil {
		return nil, fmt.Errorf("error parsing release file %s: %w", path, err)
	}

	return &rel, nil
}

// Write serializes the document and writes it atomically: the content goes to
// a temporary file in the destination directory which is renamed into place,
// so a failed run never leaves a partial document behind.
func Write(path string, rel *Release) error {
	data, err := json.MarshalIndent(rel, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding release document: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".release-*.json")
	if err != nil {
		return fmt.Errorf("error creating temporary output file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("error writing release document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error closing temporary output file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error finalizing release document: %w", err)
	}

	return nil
}

// CardCount returns the total number of cards across all sets.
func (r *Release) CardCount() int {
	total := 0
	for _, s := range r.Sets {
		total += len(s.Cards)
	}
	return total
}
