// Package normalizer turns flat vendor checklist rows into the canonical
// release document: contiguous rows are grouped into base sets with their
// parallels, split checklists are merged back together, and each group is
// synthesized into a set of cards with inferred attributes and print runs.
package normalizer

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/cardhaus/checklister/internal/checklist"
	"github.com/cardhaus/checklister/internal/release"
)

// Normalizer runs the grouping, merging and synthesis passes for one
// checklist. Warnings collected during a run are non-fatal data quality
// findings, kept in order for the caller to report.
type Normalizer struct {
	Warnings []string

	logger *log.Logger
}

// New returns a Normalizer. The logger may be nil; warnings are then only
// collected, not logged.
func New(logger *log.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize builds the release document for one checklist. The rows must
// come from a single release: year, brand, program and sport are taken from
// the first row. An empty checklist is a fatal error, as there is no
// release metadata to build a document from.
func (n *Normalizer) Normalize(rows []checklist.Row) (*release.Release, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("checklist has no data rows")
	}

	groups := mergeGroups(groupRows(rows))

	sets := make([]release.Set, 0, len(groups))
	for _, g := range groups {
		sets = append(sets, n.buildSet(g))
	}

	first := rows[0]
	rel := release.New(fmt.Sprintf("%s %s %s %s",
		normalizeText(first.Year),
		normalizeText(first.Brand),
		normalizeText(first.Program),
		normalizeText(first.Sport)))
	rel.Sets = sets

	return rel, nil
}

func (n *Normalizer) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	n.Warnings = append(n.Warnings, msg)
	if n.logger != nil {
		n.logger.Warn(msg)
	}
}
