package schema

import "strings"

// usStates maps US state and territory names to their USPS codes.
// Action Network geocodes on region, so exports with full state names
// are normalized before sending when --normalize-states is set.
var usStates = map[string]string{
	"alabama":        "AL",
	"alaska":         "AK",
	"arizona":        "AZ",
	"arkansas":       "AR",
	"california":     "CA",
	"colorado":       "CO",
	"connecticut":    "CT",
	"delaware":       "DE",
	"florida":        "FL",
	"georgia":        "GA",
	"hawaii":         "HI",
	"idaho":          "ID",
	"illinois":       "IL",
	"indiana":        "IN",
	"iowa":           "IA",
	"kansas":         "KS",
	"kentucky":       "KY",
	"louisiana":      "LA",
	"maine":          "ME",
	"maryland":       "MD",
	"massachusetts":  "MA",
	"michigan":       "MI",
	"minnesota":      "MN",
	"mississippi":    "MS",
	"missouri":       "MO",
	"montana":        "MT",
	"nebraska":       "NE",
	"nevada":         "NV",
	"new hampshire":  "NH",
	"new jersey":     "NJ",
	"new mexico":     "NM",
	"new york":       "NY",
	"north carolina": "NC",
	"north dakota":   "ND",
	"ohio":           "OH",
	"oklahoma":       "OK",
	"oregon":         "OR",
	"pennsylvania":   "PA",
	"rhode island":   "RI",
	"south carolina": "SC",
	"south dakota":   "SD",
	"tennessee":      "TN",
	"texas":          "TX",
	"utah":           "UT",
	"vermont":        "VT",
	"virginia":       "VA",
	"washington":     "WA",
	"west virginia":  "WV",
	"wisconsin":      "WI",
	"wyoming":        "WY",

	"district of columbia":     "DC",
	"washington dc":            "DC",
	"washington d.c.":          "DC",
	"puerto rico":              "PR",
	"guam":                     "GU",
	"us virgin islands":        "VI",
	"american samoa":           "AS",
	"northern mariana islands": "MP",
}

// usCodes is the set of valid codes, built once from usStates.
var usCodes = func() map[string]bool {
	codes := make(map[string]bool, len(usStates))
	for _, code := range usStates {
		codes[code] = true
	}
	return codes
}()

// NormalizeUsState converts US state names to their 2-letter codes.
// Codes are upper-cased; anything unrecognized is returned trimmed but
// otherwise unchanged.
func NormalizeUsState(s string) string {
	s = strings.TrimSpace(s)
	key := strings.Join(strings.Fields(strings.ToLower(s)), " ")

	if code, ok := usStates[key]; ok {
		return code
	}
	if upper := strings.ToUpper(key); usCodes[upper] {
		return upper
	}
	return s
}
