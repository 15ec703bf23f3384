package checklist

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Required column headers for a vendor checklist export. Row order in the
// file is significant: it drives set grouping downstream.
var RequiredColumns = []string{
	"YEAR",
	"BRAND",
	"PROGRAM",
	"SPORT",
	"CARD SET",
	"CARD NUMBER",
	"ATHLETE",
	"SEQUENCE",
}

// Row is one record of a checklist CSV. All values are raw text; cells
// missing from a short record are empty strings.
type Row struct {
	Year       string
	Brand      string
	Program    string
	Sport      string
	CardSet    string
	CardNumber string
	Athlete    string
	Sequence   string
}

// ReadFile loads a checklist CSV from disk.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening checklist file: %w", err)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("error reading checklist file %s: %w", path, err)
	}
	return rows, nil
}

// Read parses checklist CSV data. The first record must be a header row
// containing every required column; extra columns are ignored.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error parsing record: %w", err)
		}

		field := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		rows = append(rows, Row{
			Year:       field("YEAR"),
			Brand:      field("BRAND"),
			Program:    field("PROGRAM"),
			Sport:      field("SPORT"),
			CardSet:    field("CARD SET"),
			CardNumber: field("CARD NUMBER"),
			Athlete:    field("ATHLETE"),
			Sequence:   field("SEQUENCE"),
		})
	}

	return rows, nil
}
