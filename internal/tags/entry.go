package tags

// IgnoreMarker is the replacement value meaning "drop this tag".
const IgnoreMarker = "IGNORE"

// Kind tells how an entry contributes to a resolved tag list.
type Kind int

const (
	// Replacements entries contribute their NewTags in order.
	Replacements Kind = iota
	// Ignored entries contribute nothing.
	Ignored
)

func (k Kind) String() string {
	if k == Ignored {
		return "ignored"
	}
	return "replacements"
}

// Entry is one row of the mapping table after chapter augmentation.
type Entry struct {
	OldTag  string
	Kind    Kind
	NewTags []string // as read, IGNORE marker included
}

// NewEntry builds an entry from a replacement list. The entry is Ignored
// when the first element is exactly IgnoreMarker.
func NewEntry(oldTag string, newTags []string) Entry {
	kind := Replacements
	if len(newTags) > 0 && newTags[0] == IgnoreMarker {
		kind = Ignored
	}
	return Entry{OldTag: oldTag, Kind: kind, NewTags: newTags}
}

// IsIgnored reports whether the entry drops its tag.
func (e Entry) IsIgnored() bool {
	return e.Kind == Ignored
}

// Contributes returns the tags appended when the entry resolves.
func (e Entry) Contributes() []string {
	if e.Kind == Ignored {
		return nil
	}
	return e.NewTags
}
