// Package dataset flattens a library of release documents into one tabular
// dataset. Every (set, card) pair becomes a row annotated with the
// category/year/release metadata encoded in the library's directory layout.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/parquet-go/parquet-go"

	"github.com/cardhaus/checklister/internal/release"
)

// Record is one flattened card row in the output dataset.
type Record struct {
	Category   string   `parquet:"category"`
	Year       string   `parquet:"year"`
	Release    string   `parquet:"release"`
	Source     string   `parquet:"source"`
	Set        string   `parquet:"set"`
	CardNumber string   `parquet:"card_number"`
	CardName   string   `parquet:"card_name"`
	Attributes []string `parquet:"attributes,list"`
	Note       string   `parquet:"note"`
}

// CountedCategories are the categories summarized in the counts file.
// Matching is case-insensitive; other categories still flatten into the
// dataset but are not counted.
var CountedCategories = []string{"baseball", "football", "basketball", "hockey"}

// Flattener walks a checklist library and collects flattened records. A
// malformed release file is logged and skipped; one bad document must not
// sink the whole dataset.
type Flattener struct {
	logger *log.Logger
}

// New returns a Flattener. The logger may be nil.
func New(logger *log.Logger) *Flattener {
	return &Flattener{logger: logger}
}

// Collect walks <library>/<category>/<year>/*.json and flattens every
// readable release document, in directory order.
func (f *Flattener) Collect(libraryDir string) ([]Record, error) {
	categories, err := os.ReadDir(libraryDir)
	if err != nil {
		return nil, fmt.Errorf("error reading library directory: %w", err)
	}

	var records []Record
	for _, categoryEntry := range categories {
		if !categoryEntry.IsDir() {
			continue
		}
		category := categoryEntry.Name()

		years, err := os.ReadDir(filepath.Join(libraryDir, category))
		if err != nil {
			f.errorf("error reading category directory %s: %v", category, err)
			continue
		}

		for _, yearEntry := range years {
			if !yearEntry.IsDir() {
				continue
			}
			year := yearEntry.Name()
			yearDir := filepath.Join(libraryDir, category, year)

			files, err := os.ReadDir(yearDir)
			if err != nil {
				f.errorf("error reading year directory %s: %v", yearDir, err)
				continue
			}

			for _, file := range files {
				if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
					continue
				}

				path := filepath.Join(yearDir, file.Name())
				rel, err := release.Load(path)
				if err != nil {
					f.errorf("skipping %s: %v", path, err)
					continue
				}

				records = append(records, Flatten(category, year, ReleaseName(file.Name()), rel)...)
			}
		}
	}

	return records, nil
}

// Flatten produces one record per (set, card) pair of a release document.
func Flatten(category, year, releaseName string, rel *release.Release) []Record {
	var records []Record
	for _, set := range rel.Sets {
		for _, c := range set.Cards {
			attrs := c.Attributes
			if attrs == nil {
				attrs = []string{}
			}
			records = append(records, Record{
				Category:   category,
				Year:       year,
				Release:    releaseName,
				Source:     rel.Name,
				Set:        set.Name,
				CardNumber: c.Number,
				CardName:   c.Name,
				Attributes: attrs,
				Note:       c.Note,
			})
		}
	}
	return records
}

// ReleaseName derives the release name from a document filename: the stem
// with its leading "<year>-" token stripped ("1990-Topps.json" -> "Topps").
func ReleaseName(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	parts := strings.SplitN(stem, "-", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return parts[0]
}

// WriteParquet writes the records as one Parquet file.
func WriteParquet(path string, records []Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating dataset file: %w", err)
	}

	writer := parquet.NewGenericWriter[Record](file)
	if _, err := writer.Write(records); err != nil {
		file.Close()
		return fmt.Errorf("error writing dataset records: %w", err)
	}
	if err := writer.Close(); err != nil {
		file.Close()
		return fmt.Errorf("error finalizing dataset file: %w", err)
	}

	return file.Close()
}

// Counts tallies records per counted category, case-insensitive. Every
// counted category appears in the result even when zero.
func Counts(records []Record) map[string]int {
	counts := make(map[string]int, len(CountedCategories))
	for _, category := range CountedCategories {
		counts[category] = 0
	}
	for _, r := range records {
		category := strings.ToLower(r.Category)
		if _, ok := counts[category]; ok {
			counts[category]++
		}
	}
	return counts
}

// WriteCounts writes the per-category card counts summary as JSON.
func WriteCounts(path string, records []Record) (map[string]int, error) {
	counts := Counts(records)
	data, err := json.Marshal(counts)
	if err != nil {
		return nil, fmt.Errorf("error encoding counts: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error writing counts file: %w", err)
	}
	return counts, nil
}

func (f *Flattener) errorf(format string, args ...any) {
	if f.logger != nil {
		f.logger.Error(fmt.Sprintf(format, args...))
	}
}
