package core

// convert.go provides cell-level helpers for NationBuilder exports.
//
// Cell values are returned raw everywhere except where a caller asks for
// cleaning: tag keys in the mapping file are case- and whitespace-sensitive,
// so nothing here trims a value behind the caller's back.

import (
	"strings"
)

// MakeHeaderIndex creates a HeaderIndex from a CSV header row.
// Keys are lowercased for case-insensitive matching. When a header repeats,
// the first occurrence wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := idx[key]; dup {
			continue
		}
		idx[key] = i
	}
	return idx
}

func normalizeHeader(h string) string {
	return strings.ToLower(CleanCell(h))
}

// CleanCell removes common spreadsheet artifacts from a cell value:
// - Trims whitespace
// - Removes Excel formula prefix (="...")
// - Removes surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.Trim(s, `"'`)
}

// ParseBool interprets a flag cell. The second result is false when the cell
// is empty or not a recognizable boolean.
// Accepts various representations: true/false, yes/no, t/f, y/n, 1/0.
func ParseBool(s string) (value bool, ok bool) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "true", "t", "yes", "y", "1":
		return true, true
	case "false", "f", "no", "n", "0":
		return false, true
	default:
		return false, false
	}
}

// IsTrue reports whether a flag cell holds a recognizable true value.
// Empty and unrecognized cells are false.
func IsTrue(s string) bool {
	v, ok := ParseBool(s)
	return ok && v
}

// SplitList splits a comma-separated cell and trims each piece.
// Empty pieces are kept so callers decide how to treat them.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
