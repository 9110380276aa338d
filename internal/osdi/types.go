package osdi

import "encoding/json"

// Email subscription statuses understood by Action Network.
const (
	StatusSubscribed   = "subscribed"
	StatusUnsubscribed = "unsubscribed"
)

// EmailAddress is an OSDI email address. Status is omitted to leave the
// remote subscription state alone.
type EmailAddress struct {
	Address string `json:"address"`
	Status  string `json:"status,omitempty"`
}

// PostalAddress is an OSDI postal address. Empty fields are omitted.
type PostalAddress struct {
	AddressLines []string `json:"address_lines,omitempty"`
	Locality     string   `json:"locality,omitempty"`
	Region       string   `json:"region,omitempty"`
	PostalCode   string   `json:"postal_code,omitempty"`
	Primary      bool     `json:"primary,omitempty"`
}

// IsEmpty reports whether no address field is set.
func (a PostalAddress) IsEmpty() bool {
	return len(a.AddressLines) == 0 && a.Locality == "" && a.Region == "" && a.PostalCode == ""
}

// Person is the person part of a signup.
type Person struct {
	EmailAddresses  []EmailAddress  `json:"email_addresses"`
	FamilyName      string          `json:"family_name,omitempty"`
	GivenName       string          `json:"given_name,omitempty"`
	PostalAddresses []PostalAddress `json:"postal_addresses,omitempty"`
}

// PersonSignup is the body of the person signup helper.
type PersonSignup struct {
	Person  Person   `json:"person"`
	AddTags []string `json:"add_tags"`
}

// PersonPatch updates custom fields on an existing person.
// A nil value clears the field remotely.
type PersonPatch struct {
	CustomFields map[string]*string `json:"custom_fields"`
}

type link struct {
	Href string `json:"href"`
}

type halLinks struct {
	Self *link `json:"self,omitempty"`
	Next *link `json:"next,omitempty"`
}

type halResource struct {
	Links halLinks `json:"_links"`
}

type tagsPage struct {
	Links    halLinks `json:"_links"`
	Embedded struct {
		Tags []struct {
			Name string `json:"name"`
		} `json:"osdi:tags"`
	} `json:"_embedded"`
}

// Record is a person resource returned by the API.
type Record struct {
	client   *Client
	SelfHref string
	State    json.RawMessage
}
