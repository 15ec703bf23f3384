package normalizer

import (
	"maps"

	"github.com/cardhaus/checklister/internal/checklist"
)

// Group accumulates one base checklist and the parallel rows that belong to
// it. After grouping, every source row sits in exactly one group, either as
// a base row or as a parallel row.
type Group struct {
	BaseSet      string
	BaseRows     []checklist.Row
	ParallelRows []ParallelRow
}

// ParallelRow pairs a source row with the parallel name derived from its
// set name.
type ParallelRow struct {
	Row  checklist.Row
	Name string
}

// baseKey identifies a base row for merge comparisons.
type baseKey struct {
	Number  string
	Athlete string
}

func (g *Group) baseKeys() map[baseKey]struct{} {
	keys := make(map[baseKey]struct{}, len(g.BaseRows))
	for _, row := range g.BaseRows {
		keys[baseKey{
			Number:  CanonicalNumber(row.CardNumber),
			Athlete: normalizeText(row.Athlete),
		}] = struct{}{}
	}
	return keys
}

// groupRows partitions rows into contiguous groups. Rows whose set name
// equals the current base join its base rows; rows whose set name extends
// the base with a space-delimited suffix become parallel rows; anything
// else closes the group and starts a new one.
func groupRows(rows []checklist.Row) []*Group {
	var groups []*Group
	var current *Group

	for _, row := range rows {
		setName := normalizeText(row.CardSet)

		if current != nil {
			if setName == current.BaseSet {
				current.BaseRows = append(current.BaseRows, row)
				continue
			}
			if parallel, ok := SplitSetName(current.BaseSet, setName); ok {
				current.ParallelRows = append(current.ParallelRows, ParallelRow{Row: row, Name: parallel})
				continue
			}
			groups = append(groups, current)
		}

		current = &Group{
			BaseSet:  setName,
			BaseRows: []checklist.Row{row},
		}
	}
	if current != nil {
		groups = append(groups, current)
	}

	return groups
}

// mergeGroups collapses groups whose base rows describe the same checklist.
// Vendors sometimes list a parallel as its own block far from the base set;
// when a later group's (number, athlete) key set exactly equals an earlier
// group's, its base rows are folded in as a parallel named after its set.
// Scanning is first-match in file order.
func mergeGroups(groups []*Group) []*Group {
	var merged []*Group

	for _, g := range groups {
		keys := g.baseKeys()

		var target *Group
		for _, m := range merged {
			if maps.Equal(m.baseKeys(), keys) {
				target = m
				break
			}
		}
		if target == nil {
			merged = append(merged, g)
			continue
		}

		for _, row := range g.BaseRows {
			target.ParallelRows = append(target.ParallelRows, ParallelRow{Row: row, Name: g.BaseSet})
		}
		target.ParallelRows = append(target.ParallelRows, g.ParallelRows...)
	}

	return merged
}
