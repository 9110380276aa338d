// Package schema describes the CSV layouts the importer reads.
package schema

import "github.com/surj/an-import/internal/core"

// NationBuilder people export columns used by the importer.
const (
	ColEmail            = "email"
	ColEmailOptIn       = "email_opt_in"
	ColFullName         = "full_name"
	ColFirstName        = "first_name"
	ColLastName         = "last_name"
	ColTagList          = "tag_list"
	ColMobileNumber     = "mobile_number"
	ColMobileOptIn      = "mobile_opt_in"
	ColIsMobileBad      = "is_mobile_bad"
	ColPhoneNumber      = "phone_number"
	ColDoNotCall        = "do_not_call"
	ColEmployer         = "employer"
	ColFacebookUsername = "facebook_username"
	ColTwitterLogin     = "twitter_login"
)

// AddressGroups are the column prefixes of the address blocks in an export.
// Each group has <prefix>_address1..3, _city, _state and _zip columns.
var AddressGroups = []string{"primary", "billing", "user_submitted"}

// NationBuilderFieldSpecs defines the expected CSV columns for a people export.
// Only email is required: every other column reads as empty when absent.
var NationBuilderFieldSpecs = buildNationBuilderSpecs()

func buildNationBuilderSpecs() []core.FieldSpec {
	specs := []core.FieldSpec{
		{Name: ColEmail, Required: true},
		{Name: ColEmailOptIn},
		{Name: ColFullName},
		{Name: ColFirstName},
		{Name: ColLastName},
		{Name: ColTagList},
		{Name: ColMobileNumber},
		{Name: ColMobileOptIn},
		{Name: ColIsMobileBad},
		{Name: ColPhoneNumber},
		{Name: ColDoNotCall},
		{Name: ColEmployer},
		{Name: ColFacebookUsername},
		{Name: ColTwitterLogin},
	}
	for _, group := range AddressGroups {
		for _, suffix := range AddressSuffixes {
			spec := core.FieldSpec{Name: group + suffix}
			if suffix == "_state" {
				spec.Normalizer = NormalizeUsState
			}
			specs = append(specs, spec)
		}
	}
	return specs
}

// AddressSuffixes are the per-group address column suffixes.
var AddressSuffixes = []string{"_address1", "_address2", "_address3", "_city", "_state", "_zip"}

// Spec returns the field spec for a NationBuilder column.
func Spec(name string) (core.FieldSpec, bool) {
	for _, s := range NationBuilderFieldSpecs {
		if s.Name == name {
			return s, true
		}
	}
	return core.FieldSpec{}, false
}
