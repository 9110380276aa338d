package tags

import "sort"

// WarnedSet records the unknown tags already reported during a run.
type WarnedSet struct {
	seen map[string]struct{}
}

// NewWarnedSet returns an empty set.
func NewWarnedSet() *WarnedSet {
	return &WarnedSet{seen: make(map[string]struct{})}
}

// MarkWarned adds tag and reports whether it was new.
func (w *WarnedSet) MarkWarned(tag string) bool {
	if _, ok := w.seen[tag]; ok {
		return false
	}
	w.seen[tag] = struct{}{}
	return true
}

// Has reports whether tag has been warned about.
func (w *WarnedSet) Has(tag string) bool {
	_, ok := w.seen[tag]
	return ok
}

// Len returns the number of distinct unknown tags seen.
func (w *WarnedSet) Len() int {
	return len(w.seen)
}

// Tags returns the warned tags in sorted order.
func (w *WarnedSet) Tags() []string {
	out := make([]string, 0, len(w.seen))
	for t := range w.seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
