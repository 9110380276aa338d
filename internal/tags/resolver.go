package tags

import (
	"log/slog"
	"strings"
)

// Resolver turns a person's tag_list into the tags to add.
type Resolver struct {
	table  *Table
	warned *WarnedSet
	logger *slog.Logger
}

// NewResolver creates a resolver over table. Unknown tags are recorded in
// warned so each is reported once per run. A nil logger uses slog.Default().
func NewResolver(table *Table, warned *WarnedSet, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if warned == nil {
		warned = NewWarnedSet()
	}
	return &Resolver{table: table, warned: warned, logger: logger}
}

// Warned returns the set of unknown tags reported so far.
func (r *Resolver) Warned() *WarnedSet {
	return r.warned
}

// Resolve maps a comma-separated tag list. Order is kept and duplicates are
// not removed. The result is never nil.
func (r *Resolver) Resolve(tagList string) []string {
	resolved := []string{}

	for _, oldTag := range strings.Split(tagList, ",") {
		oldTag = strings.TrimSpace(oldTag)
		if oldTag == "" {
			continue
		}

		entry, ok := r.table.Lookup(oldTag)
		if !ok {
			if r.warned.MarkWarned(oldTag) {
				r.logger.Warn("unknown tag not mapped", "tag", oldTag)
			}
			continue
		}

		resolved = append(resolved, entry.Contributes()...)
	}

	return resolved
}
