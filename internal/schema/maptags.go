package schema

import "github.com/surj/an-import/internal/core"

// Tag mapping file columns. Every other column is a chapter column holding
// extra tags for that chapter only.
const (
	ColOldTag  = "old_tag"
	ColNewTags = "new_tags"
)

// MapTagsFieldSpecs defines the fixed columns of the tag mapping file.
var MapTagsFieldSpecs = []core.FieldSpec{
	{Name: ColOldTag, Required: true},
	{Name: ColNewTags, Required: true},
}
