package core

// validation.go checks CSV headers against a source's field specs before any
// row is processed.
//
// Only header structure is validated. Row content is deliberately passed
// through as exported: a malformed row degrades into empty fields rather than
// aborting a run halfway through.

import (
	"fmt"
	"strings"
)

// ValidateHeaders checks that every required column exists in the header.
// Returns an error listing all missing columns.
func ValidateHeaders(idx HeaderIndex, specs []FieldSpec) error {
	var missing []string
	for _, spec := range specs {
		if spec.Required && !idx.Has(spec.Name) {
			missing = append(missing, spec.Name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// MissingOptional lists the optional columns absent from the header.
// Absent optional columns read as empty; callers log them once per run.
func MissingOptional(idx HeaderIndex, specs []FieldSpec) []string {
	var missing []string
	for _, spec := range specs {
		if !spec.Required && !idx.Has(spec.Name) {
			missing = append(missing, spec.Name)
		}
	}
	return missing
}

// Normalize applies the field's normalizer, if any, to a raw cell value.
func (s FieldSpec) Normalize(raw string) string {
	if s.Normalizer == nil || raw == "" {
		return raw
	}
	return s.Normalizer(raw)
}
