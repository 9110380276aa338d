package importer

import (
	"github.com/surj/an-import/internal/core"
	"github.com/surj/an-import/internal/osdi"
	"github.com/surj/an-import/internal/schema"
)

// Custom field names on the Action Network side.
const (
	FieldMobile           = "mobile"
	FieldPhone            = "Phone"
	FieldOrganization     = "organization"
	FieldFacebookUsername = "facebook_username"
	FieldTwitterLogin     = "twitter_login"
	// FieldTagList is the legacy custom field some groups filled with the raw
	// NationBuilder tag list. It is cleared whenever other fields are sent.
	FieldTagList = "tag_list"
)

// optedOut is the exact email_opt_in value NationBuilder writes for people
// who unsubscribed.
const optedOut = "FALSE"

// candidate is one row reshaped for Action Network.
type candidate struct {
	signup       *osdi.PersonSignup
	customFields map[string]*string
}

// buildCandidate reshapes a row. It returns a *core.RowSkippedError when the
// row must not be sent. Tags are attached by the caller.
func buildCandidate(row core.Row, includeUnsubscribed, force, normalizeStates bool) (*candidate, error) {
	// The address is sent exactly as exported; only an empty cell skips.
	email := row.Get(schema.ColEmail)
	if email == "" {
		return nil, &core.RowSkippedError{Row: row.Number, Reason: core.SkipNoEmail}
	}

	addr := osdi.EmailAddress{Address: email}
	if row.Get(schema.ColEmailOptIn) == optedOut {
		// Opted-out people are still worth importing when asked: their
		// donations would otherwise subscribe them automatically.
		addr.Status = osdi.StatusUnsubscribed
		if !includeUnsubscribed {
			return nil, &core.RowSkippedError{Row: row.Number, Reason: core.SkipUnsubscribed}
		}
	} else if force {
		addr.Status = osdi.StatusSubscribed
	}

	person := osdi.Person{
		EmailAddresses: []osdi.EmailAddress{addr},
		FamilyName:     row.Get(schema.ColLastName),
		GivenName:      row.Get(schema.ColFirstName),
	}

	// Billing addresses often carry more detail than primary ones, so both
	// are sent. user_submitted is not.
	if primary := addressFromRow(row, "primary", normalizeStates); !primary.IsEmpty() {
		primary.Primary = true
		person.PostalAddresses = append(person.PostalAddresses, primary)
	}
	if billing := addressFromRow(row, "billing", normalizeStates); !billing.IsEmpty() {
		person.PostalAddresses = append(person.PostalAddresses, billing)
	}

	return &candidate{
		signup:       &osdi.PersonSignup{Person: person, AddTags: []string{}},
		customFields: customFieldsFromRow(row),
	}, nil
}

// addressFromRow reads the <group>_address1..3, _city, _state and _zip
// columns. Empty cells are left out.
func addressFromRow(row core.Row, group string, normalizeStates bool) osdi.PostalAddress {
	var a osdi.PostalAddress
	for _, col := range []string{"_address1", "_address2", "_address3"} {
		if line := row.Get(group + col); line != "" {
			a.AddressLines = append(a.AddressLines, line)
		}
	}
	a.Locality = row.Get(group + "_city")
	a.Region = row.Get(group + "_state")
	if normalizeStates {
		if spec, ok := schema.Spec(group + "_state"); ok {
			a.Region = spec.Normalize(a.Region)
		}
	}
	a.PostalCode = row.Get(group + "_zip")
	return a
}

// customFieldsFromRow collects the custom fields to PUT after creation. It
// returns nil when there are none.
func customFieldsFromRow(row core.Row) map[string]*string {
	fields := make(map[string]*string)
	set := func(name, value string) {
		fields[name] = &value
	}

	if mobile := row.Get(schema.ColMobileNumber); mobile != "" &&
		!core.IsTrue(row.Get(schema.ColIsMobileBad)) &&
		core.IsTrue(row.Get(schema.ColMobileOptIn)) {
		set(FieldMobile, mobile)
	}
	if phone := row.Get(schema.ColPhoneNumber); phone != "" && !core.IsTrue(row.Get(schema.ColDoNotCall)) {
		set(FieldPhone, phone)
	}
	if v := row.Get(schema.ColEmployer); v != "" {
		set(FieldOrganization, v)
	}
	if v := row.Get(schema.ColFacebookUsername); v != "" {
		set(FieldFacebookUsername, v)
	}
	if v := row.Get(schema.ColTwitterLogin); v != "" {
		set(FieldTwitterLogin, v)
	}

	if len(fields) == 0 {
		return nil
	}
	fields[FieldTagList] = nil
	return fields
}
