package core

// FieldSpec defines validation rules for a single CSV column.
type FieldSpec struct {
	Name       string              // Column header name (matched case-insensitively)
	Required   bool                // Column must exist in CSV header
	Normalizer func(string) string // Optional transformation function
}

// HeaderIndex maps column names (lowercase) to their position in the CSV row.
type HeaderIndex map[string]int

// Has reports whether the header contains the named column.
func (h HeaderIndex) Has(name string) bool {
	_, ok := h[normalizeHeader(name)]
	return ok
}

// Value returns the raw cell for the named column.
// Missing columns and short rows read as "".
func (h HeaderIndex) Value(row []string, name string) string {
	pos, ok := h[normalizeHeader(name)]
	if !ok || pos >= len(row) {
		return ""
	}
	return row[pos]
}

// Row binds a data row to its header so fields can be read by name.
type Row struct {
	Number int // 1-based data row number (header excluded)
	Line   int // line in the source file, for diagnostics
	Cells  []string
	Header HeaderIndex
}

// Get returns the raw cell for the named column.
func (r Row) Get(name string) string {
	return r.Header.Value(r.Cells, name)
}
