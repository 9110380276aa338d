package tags

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surj/an-import/internal/core"
)

const sampleMapping = `old_tag,new_tags,SURJ Bay Area,SURJ Action
#maestro_upload,IGNORE,Maestro,
#trump-organize,"#Trump,?Organizing",,
#phonebank,?Phone Bank,"!Training Phone Bank, !Caller",
#drop_later,"X, IGNORE",,
#empty,,,
`

func mustLoad(t *testing.T, csv, chapter string) *Table {
	t.Helper()
	table, err := Load(strings.NewReader(csv), chapter)
	require.NoError(t, err)
	return table
}

func TestLoad_SplitsAndTrims(t *testing.T) {
	table := mustLoad(t, sampleMapping, "SURJ Action")

	assert.Equal(t, "SURJ Action", table.Chapter())
	assert.Equal(t, 5, table.Len())

	e, ok := table.Lookup("#trump-organize")
	require.True(t, ok)
	assert.Equal(t, []string{"#Trump", "?Organizing"}, e.NewTags)
	assert.Equal(t, Replacements, e.Kind)
}

func TestLoad_ChapterAugmentation(t *testing.T) {
	bay := mustLoad(t, sampleMapping, "SURJ Bay Area")
	action := mustLoad(t, sampleMapping, "SURJ Action")

	e, _ := bay.Lookup("#phonebank")
	assert.Equal(t, []string{"?Phone Bank", "!Training Phone Bank", "!Caller"}, e.NewTags)

	e, _ = action.Lookup("#phonebank")
	assert.Equal(t, []string{"?Phone Bank"}, e.NewTags)
}

func TestLoad_IgnoreOnlyAsFirstElement(t *testing.T) {
	table := mustLoad(t, sampleMapping, "SURJ Bay Area")

	e, _ := table.Lookup("#maestro_upload")
	assert.True(t, e.IsIgnored())
	assert.Equal(t, []string{"IGNORE", "Maestro"}, e.NewTags)
	assert.Empty(t, e.Contributes())

	e, _ = table.Lookup("#drop_later")
	assert.False(t, e.IsIgnored())
	assert.Equal(t, []string{"X", "IGNORE"}, e.Contributes())
}

func TestLoad_EmptyNewTagsKeepsEmptyElement(t *testing.T) {
	table := mustLoad(t, sampleMapping, "SURJ Action")

	e, ok := table.Lookup("#empty")
	require.True(t, ok)
	assert.Equal(t, []string{""}, e.NewTags)
}

func TestLoad_KeysAreRaw(t *testing.T) {
	csv := "old_tag,new_tags,C\n  spaced ,X,\n"
	table := mustLoad(t, csv, "C")

	_, ok := table.Lookup("spaced")
	assert.False(t, ok)
	_, ok = table.Lookup("  spaced ")
	assert.True(t, ok)
}

func TestLoad_DuplicateLastWins(t *testing.T) {
	csv := "old_tag,new_tags,C\na,X,\nb,Y,\na,Z,\na,W,\n"
	table := mustLoad(t, csv, "C")

	e, _ := table.Lookup("a")
	assert.Equal(t, []string{"W"}, e.NewTags)
	assert.Equal(t, []string{"a"}, table.Duplicates())
	assert.Equal(t, 2, table.Len())
}

func TestLoad_ShortRowsReadAsEmpty(t *testing.T) {
	csv := "old_tag,new_tags,C\na,X\n"
	table := mustLoad(t, csv, "C")

	e, _ := table.Lookup("a")
	assert.Equal(t, []string{"X"}, e.NewTags)
}

func TestLoad_Entries(t *testing.T) {
	table := mustLoad(t, sampleMapping, "SURJ Action")

	var keys []string
	for _, e := range table.Entries() {
		keys = append(keys, e.OldTag)
	}
	assert.Equal(t, []string{"#drop_later", "#empty", "#maestro_upload", "#phonebank", "#trump-organize"}, keys)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		chapter string
		wantMsg string
	}{
		{"missing chapter column", sampleMapping, "SURJ Nowhere", `no column for chapter "SURJ Nowhere"`},
		{"empty chapter", sampleMapping, "", "chapter name is empty"},
		{"empty file", "", "C", "empty file"},
		{"missing old_tag", "new_tags,C\nX,\n", "C", "missing required columns: old_tag"},
		{"missing new_tags", "old_tag,C\na,\n", "C", "missing required columns: new_tags"},
		{"malformed csv", "old_tag,new_tags,C\n\"a,X,\n", "C", "invalid csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.csv), tt.chapter)
			require.Error(t, err)

			var ce *core.ConfigurationError
			require.True(t, errors.As(err, &ce), "want ConfigurationError, got %T", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maptags.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleMapping), 0o600))

	table, err := LoadFile(path, "SURJ Bay Area")
	require.NoError(t, err)
	assert.Equal(t, 5, table.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.csv"), "SURJ Bay Area")
	require.Error(t, err)
	assert.True(t, core.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "missing.csv")
}
