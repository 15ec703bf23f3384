package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardhaus/checklister/internal/config"
	"github.com/cardhaus/checklister/internal/release"
)

func TestNormalizeCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "checklist.csv")
	output := filepath.Join(dir, "2021-Prizm.json")

	csv := "YEAR,BRAND,PROGRAM,SPORT,CARD SET,CARD NUMBER,ATHLETE,SEQUENCE\n" +
		"2021,Panini,Prizm,Baseball,Prizm,1,Mike Trout,\n" +
		"2021,Panini,Prizm,Baseball,Prizm,2,Shohei Ohtani,\n" +
		"2021,Panini,Prizm,Baseball,Prizm Gold,1,Mike Trout,10\n" +
		"2021,Panini,Prizm,Baseball,Prizm Gold,2,Shohei Ohtani,10\n"
	require.NoError(t, os.WriteFile(input, []byte(csv), 0644))

	require.NoError(t, normalizeCmd.RunE(normalizeCmd, []string{input, output}))

	rel, err := release.Load(output)
	require.NoError(t, err)
	assert.Equal(t, "2021 Panini Prizm Baseball", rel.Name)
	require.Len(t, rel.Sets, 1)
	assert.Len(t, rel.Sets[0].Cards, 2)
	require.Len(t, rel.Sets[0].Parallels, 1)
	assert.Equal(t, "Gold", rel.Sets[0].Parallels[0].Name)
	assert.Equal(t, 10, rel.Sets[0].Parallels[0].NumberedTo)
}

func TestNormalizeCommandDefaultOutputPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	require.NoError(t, config.SetDefaultCategory("baseball"))

	dir := t.TempDir()
	input := filepath.Join(dir, "checklist.csv")
	csv := "YEAR,BRAND,PROGRAM,SPORT,CARD SET,CARD NUMBER,ATHLETE,SEQUENCE\n" +
		"2021,Panini,Prizm Draft Picks,Baseball,Prizm,1,Mike Trout,\n"
	require.NoError(t, os.WriteFile(input, []byte(csv), 0644))

	require.NoError(t, normalizeCmd.RunE(normalizeCmd, []string{input}))

	// Filed into the library under the default category, with the
	// program joined by hyphens so the flattener derives it back.
	output := filepath.Join(config.GetLibraryPath(), "baseball", "2021", "2021-Prizm-Draft-Picks.json")
	rel, err := release.Load(output)
	require.NoError(t, err)
	assert.Equal(t, "2021 Panini Prizm Draft Picks Baseball", rel.Name)
}

func TestNormalizeCommandNoDefaultCategory(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dir := t.TempDir()
	input := filepath.Join(dir, "checklist.csv")
	csv := "YEAR,BRAND,PROGRAM,SPORT,CARD SET,CARD NUMBER,ATHLETE,SEQUENCE\n" +
		"2021,Panini,Prizm,Baseball,Prizm,1,Mike Trout,\n"
	require.NoError(t, os.WriteFile(input, []byte(csv), 0644))

	err := normalizeCmd.RunE(normalizeCmd, []string{input})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_category")
}

func TestNormalizeCommandMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := normalizeCmd.RunE(normalizeCmd, []string{filepath.Join(dir, "missing.csv"), filepath.Join(dir, "out.json")})
	assert.Error(t, err)
}

func TestNormalizeCommandNoOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "checklist.csv")
	output := filepath.Join(dir, "out.json")

	// Header only: no data rows, fatal before any output is written.
	require.NoError(t, os.WriteFile(input, []byte("YEAR,BRAND,PROGRAM,SPORT,CARD SET,CARD NUMBER,ATHLETE,SEQUENCE\n"), 0644))

	err := normalizeCmd.RunE(normalizeCmd, []string{input, output})
	require.Error(t, err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}
