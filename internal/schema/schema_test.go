package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surj/an-import/internal/core"
)

func TestNormalizeUsState(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"California", "CA"},
		{"  new   york ", "NY"},
		{"DISTRICT OF COLUMBIA", "DC"},
		{"Washington D.C.", "DC"},
		{"ca", "CA"},
		{"Tx", "TX"},
		{"CA", "CA"},
		{"", ""},
		{" Ontario ", "Ontario"},
		{"XX", "XX"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeUsState(tt.in), "input %q", tt.in)
	}
}

func TestNationBuilderFieldSpecs(t *testing.T) {
	var required []string
	for _, s := range NationBuilderFieldSpecs {
		if s.Required {
			required = append(required, s.Name)
		}
	}
	assert.Equal(t, []string{ColEmail}, required)

	for _, group := range AddressGroups {
		for _, suffix := range AddressSuffixes {
			_, ok := Spec(group + suffix)
			assert.True(t, ok, "missing %s%s", group, suffix)
		}
	}
}

func TestSpec_StateNormalizer(t *testing.T) {
	spec, ok := Spec("primary_state")
	require.True(t, ok)
	assert.Equal(t, "CA", spec.Normalize("California"))

	city, ok := Spec("primary_city")
	require.True(t, ok)
	assert.Equal(t, "california", city.Normalize("california"))

	_, ok = Spec("no_such_column")
	assert.False(t, ok)
}

func TestMapTagsFieldSpecs(t *testing.T) {
	idx := core.MakeHeaderIndex([]string{"Old_Tag", "new_tags", "SURJ Bay Area"})
	assert.NoError(t, core.ValidateHeaders(idx, MapTagsFieldSpecs))

	idx = core.MakeHeaderIndex([]string{"old_tag", "SURJ Bay Area"})
	err := core.ValidateHeaders(idx, MapTagsFieldSpecs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColNewTags)
}
