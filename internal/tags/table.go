package tags

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/surj/an-import/internal/core"
	"github.com/surj/an-import/internal/schema"
)

// Table maps old tags to their entries for one chapter.
type Table struct {
	chapter    string
	entries    map[string]Entry
	duplicates []string
}

// Lookup returns the entry for an old tag. Keys are matched exactly.
func (t *Table) Lookup(oldTag string) (Entry, bool) {
	e, ok := t.entries[oldTag]
	return e, ok
}

// Len returns the number of distinct old tags.
func (t *Table) Len() int {
	return len(t.entries)
}

// Chapter returns the chapter the table was loaded for.
func (t *Table) Chapter() string {
	return t.chapter
}

// Entries returns every entry sorted by old tag.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OldTag < out[j].OldTag })
	return out
}

// Duplicates returns the old tags that appeared on more than one row, in
// the order they were first repeated. The last row wins.
func (t *Table) Duplicates() []string {
	return t.duplicates
}

// LoadFile opens path and loads the mapping for chapter.
func LoadFile(path, chapter string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.NewConfigurationError(path, "cannot open tag mapping", err)
	}
	defer f.Close()

	return load(f, chapter, path)
}

// Load reads a tag mapping CSV and builds the table for chapter.
//
// Each row's new_tags cell is split on commas and trimmed; when the row's
// chapter cell is non-empty its tags are appended the same way. All
// failures are *core.ConfigurationError.
func Load(r io.Reader, chapter string) (*Table, error) {
	return load(r, chapter, "tag mapping")
}

func load(r io.Reader, chapter, source string) (*Table, error) {
	if chapter == "" {
		return nil, core.NewConfigurationError(source, "chapter name is empty", nil)
	}

	reader, err := core.NewReader(r)
	if err != nil {
		return nil, core.NewConfigurationError(source, "cannot read tag mapping", err)
	}

	idx := reader.Index()
	if err := core.ValidateHeaders(idx, schema.MapTagsFieldSpecs); err != nil {
		return nil, core.NewConfigurationError(source, "invalid tag mapping", err)
	}
	if !idx.Has(chapter) {
		return nil, core.NewConfigurationError(source,
			fmt.Sprintf("no column for chapter %q", chapter), nil)
	}

	t := &Table{
		chapter: chapter,
		entries: make(map[string]Entry),
	}
	seenTwice := make(map[string]bool)

	for {
		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, core.NewConfigurationError(source, "cannot read tag mapping", err)
		}

		oldTag := row.Get(schema.ColOldTag)
		newTags := core.SplitList(row.Get(schema.ColNewTags))
		if extra := row.Get(chapter); extra != "" {
			newTags = append(newTags, core.SplitList(extra)...)
		}

		if _, exists := t.entries[oldTag]; exists && !seenTwice[oldTag] {
			seenTwice[oldTag] = true
			t.duplicates = append(t.duplicates, oldTag)
			slog.Warn("duplicate old tag in mapping, last row wins",
				"tag", oldTag,
				"line", row.Line,
				"source", source,
			)
		}
		t.entries[oldTag] = NewEntry(oldTag, newTags)
	}

	slog.Debug("tag mapping loaded",
		"source", source,
		"chapter", chapter,
		"entries", len(t.entries),
	)
	return t, nil
}
