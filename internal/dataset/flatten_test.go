package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardhaus/checklister/internal/card"
	"github.com/cardhaus/checklister/internal/release"
)

func writeRelease(t *testing.T, path string, rel *release.Release) {
	t.Helper()
	require.NoError(t, release.Write(path, rel))
}

func sampleRelease(name string, cards ...card.Card) *release.Release {
	rel := release.New(name)
	rel.Sets = []release.Set{{
		UniqueID:   card.NewID(),
		Name:       "Base",
		Cards:      cards,
		Parallels:  []card.Parallel{},
		Variations: []release.Variation{},
	}}
	return rel
}

func TestReleaseName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "year prefix stripped", filename: "1990-Topps.json", want: "Topps"},
		{name: "only first token stripped", filename: "2021-Prizm-Draft-Picks.json", want: "Prizm-Draft-Picks"},
		{name: "no prefix kept as is", filename: "Topps.json", want: "Topps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReleaseName(tt.filename))
		})
	}
}

func TestFlatten(t *testing.T) {
	rel := sampleRelease("2021 Panini Prizm Baseball",
		card.Card{UniqueID: card.NewID(), Number: "1", Name: "Mike Trout"},
		card.Card{UniqueID: card.NewID(), Number: "2", Name: "Shohei Ohtani", Attributes: []string{"AU"}, Note: "No Base Set Version"},
	)

	records := Flatten("baseball", "2021", "Prizm", rel)
	require.Len(t, records, 2)

	assert.Equal(t, Record{
		Category:   "baseball",
		Year:       "2021",
		Release:    "Prizm",
		Source:     "2021 Panini Prizm Baseball",
		Set:        "Base",
		CardNumber: "1",
		CardName:   "Mike Trout",
		Attributes: []string{},
		Note:       "",
	}, records[0])

	assert.Equal(t, []string{"AU"}, records[1].Attributes)
	assert.Equal(t, "No Base Set Version", records[1].Note)
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()

	writeRelease(t, filepath.Join(dir, "baseball", "2021", "2021-Prizm.json"),
		sampleRelease("2021 Panini Prizm Baseball",
			card.Card{UniqueID: card.NewID(), Number: "1", Name: "Mike Trout"},
			card.Card{UniqueID: card.NewID(), Number: "2", Name: "Shohei Ohtani"},
		))
	writeRelease(t, filepath.Join(dir, "Hockey", "1990", "1990-Score.json"),
		sampleRelease("1990 Score Hockey",
			card.Card{UniqueID: card.NewID(), Number: "1", Name: "Wayne Gretzky"},
		))

	// Malformed document: skipped, does not abort the walk.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "baseball", "2020"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "baseball", "2020", "2020-Broken.json"), []byte("{"), 0644))

	// Stray non-JSON files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "baseball", "2021", "README.md"), []byte("x"), 0644))

	records, err := New(nil).Collect(dir)
	require.NoError(t, err)
	require.Len(t, records, 3)

	byName := map[string]Record{}
	for _, r := range records {
		byName[r.CardName] = r
	}

	trout := byName["Mike Trout"]
	assert.Equal(t, "baseball", trout.Category)
	assert.Equal(t, "2021", trout.Year)
	assert.Equal(t, "Prizm", trout.Release)
	assert.Equal(t, "2021 Panini Prizm Baseball", trout.Source)

	gretzky := byName["Wayne Gretzky"]
	assert.Equal(t, "Hockey", gretzky.Category)
	assert.Equal(t, "Score", gretzky.Release)
}

func TestCollectMissingLibrary(t *testing.T) {
	_, err := New(nil).Collect(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestCounts(t *testing.T) {
	records := []Record{
		{Category: "baseball"},
		{Category: "Baseball"},
		{Category: "HOCKEY"},
		{Category: "soccer"},
	}

	counts := Counts(records)
	assert.Equal(t, map[string]int{
		"baseball":   2,
		"football":   0,
		"basketball": 0,
		"hockey":     1,
	}, counts)
}

func TestWriteCounts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card_counts.json")

	counts, err := WriteCounts(path, []Record{{Category: "football"}})
	require.NoError(t, err)
	assert.Equal(t, 1, counts["football"])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"baseball":0,"football":1,"basketball":0,"hockey":0}`, string(data))
}

func TestWriteParquetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.parquet")

	records := []Record{
		{Category: "baseball", Year: "2021", Release: "Prizm", Source: "2021 Panini Prizm Baseball",
			Set: "Base", CardNumber: "1", CardName: "Mike Trout", Attributes: []string{}, Note: ""},
		{Category: "hockey", Year: "1990", Release: "Score", Source: "1990 Score Hockey",
			Set: "Base", CardNumber: "99", CardName: "Wayne Gretzky", Attributes: []string{"AU", "RELIC"}, Note: "No Base Set Version"},
	}

	require.NoError(t, WriteParquet(path, records))

	back, err := parquet.ReadFile[Record](path)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, records[0].CardName, back[0].CardName)
	assert.Equal(t, records[1].Attributes, back[1].Attributes)
	assert.Equal(t, records[1].Note, back[1].Note)
}
