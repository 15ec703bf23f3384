package normalizer

import (
	"maps"

	"github.com/cardhaus/checklister/internal/card"
	"github.com/cardhaus/checklister/internal/checklist"
	"github.com/cardhaus/checklister/internal/release"
)

// NoBaseVersionNote marks cards synthesized from a parallel row whose card
// number never appears in the base checklist.
const NoBaseVersionNote = "No Base Set Version"

// buildSet converts one merged group into a fully resolved set: base cards,
// uniform print-run collapse, set-level and card-level parallels, and
// deduplication.
func (n *Normalizer) buildSet(g *Group) release.Set {
	attrs := InferAttributes(g.BaseSet)

	// Base cards, with their raw sequence values held aside until we know
	// whether the whole set shares one print run.
	type rowSeq struct {
		value int
		ok    bool
	}

	cards := make([]card.Card, 0, len(g.BaseRows))
	seqs := make([]rowSeq, 0, len(g.BaseRows))
	baseNumbers := make(map[string]struct{}, len(g.BaseRows))
	distinct := make(map[int]struct{})
	allSequenced := true

	for _, row := range g.BaseRows {
		number := CanonicalNumber(row.CardNumber)
		seq, ok := parseSequence(row.Sequence)
		if ok {
			distinct[seq] = struct{}{}
		} else {
			allSequenced = false
		}

		cards = append(cards, card.Card{
			UniqueID:   card.NewID(),
			Number:     number,
			Name:       normalizeText(row.Athlete),
			Attributes: copyAttributes(attrs),
		})
		seqs = append(seqs, rowSeq{value: seq, ok: ok})
		baseNumbers[number] = struct{}{}
	}

	// Uniform collapse: when every base card carries the same print run,
	// it moves to the set and the cards stay bare.
	uniform := allSequenced && len(distinct) == 1
	setNumberedTo := 0
	if uniform {
		for v := range distinct {
			setNumberedTo = v
		}
	} else {
		for i := range cards {
			if seqs[i].ok {
				cards[i].NumberedTo = seqs[i].value
			}
		}
	}

	// Group parallel rows by parallel name, preserving first appearance
	// order so output is stable across runs.
	var names []string
	rowsByName := make(map[string][]checklist.Row)
	for _, pr := range g.ParallelRows {
		if _, ok := rowsByName[pr.Name]; !ok {
			names = append(names, pr.Name)
		}
		rowsByName[pr.Name] = append(rowsByName[pr.Name], pr.Row)
	}

	setParallels := []card.Parallel{}
	for _, name := range names {
		rows := rowsByName[name]

		covered := make(map[string]struct{}, len(rows))
		parallelDistinct := make(map[int]struct{})
		parallelSequenced := true
		for _, row := range rows {
			covered[CanonicalNumber(row.CardNumber)] = struct{}{}
			if v, ok := parseSequence(row.Sequence); ok {
				parallelDistinct[v] = struct{}{}
			} else {
				parallelSequenced = false
			}
		}

		// A parallel that covers every base card number belongs to the
		// set; anything narrower attaches card by card.
		if maps.Equal(covered, baseNumbers) {
			p := card.Parallel{Name: name}
			if parallelSequenced && len(parallelDistinct) == 1 {
				for v := range parallelDistinct {
					p.NumberedTo = v
				}
			}
			setParallels = append(setParallels, p)
			continue
		}

		for _, row := range rows {
			number := CanonicalNumber(row.CardNumber)
			p := card.Parallel{Name: name}
			if v, ok := parseSequence(row.Sequence); ok {
				p.NumberedTo = v
			}

			if i := findCardByNumber(cards, number); i >= 0 {
				cards[i].Parallels = append(cards[i].Parallels, p)
				continue
			}

			// No base card with this number: keep the row as a
			// placeholder card rather than dropping it.
			placeholder := card.Card{
				UniqueID:   card.NewID(),
				Number:     number,
				Name:       normalizeText(row.Athlete),
				Note:       NoBaseVersionNote,
				Parallels:  []card.Parallel{p},
				Attributes: copyAttributes(attrs),
			}
			if v, ok := parseSequence(row.Sequence); ok {
				placeholder.NumberedTo = v
			}
			cards = append(cards, placeholder)
			baseNumbers[number] = struct{}{}
		}
	}

	cards = n.dedupeCards(g.BaseSet, cards)

	s := release.Set{
		UniqueID:   card.NewID(),
		Name:       g.BaseSet,
		Cards:      cards,
		Parallels:  setParallels,
		Variations: []release.Variation{},
	}
	if uniform {
		s.NumberedTo = setNumberedTo
	}
	return s
}

// dedupeCards drops cards repeating an earlier (number, name) pair, keeping
// the first occurrence. Duplicates are vendor data entry noise: worth a
// warning, never a failed run.
func (n *Normalizer) dedupeCards(setName string, cards []card.Card) []card.Card {
	type cardKey struct {
		number string
		name   string
	}

	seen := make(map[cardKey]struct{}, len(cards))
	unique := make([]card.Card, 0, len(cards))
	duplicates := false

	for _, c := range cards {
		key := cardKey{number: c.Number, name: c.Name}
		if _, ok := seen[key]; ok {
			duplicates = true
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, c)
	}

	if duplicates {
		n.warnf("duplicate records found in set %q; keeping first occurrences", setName)
	}
	return unique
}

func findCardByNumber(cards []card.Card, number string) int {
	for i := range cards {
		if cards[i].Number == number {
			return i
		}
	}
	return -1
}

func copyAttributes(attrs []string) []string {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]string, len(attrs))
	copy(out, attrs)
	return out
}
