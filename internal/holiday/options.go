package holiday

import (
	"strconv"
	"strings"
)

// Country is a selectable country.
type Country struct {
	Code string
	Name string
}

// Label renders the country the way pickers show it, e.g. "United States (US)".
func (c Country) Label() string {
	return c.Name + " (" + c.Code + ")"
}

// Countries offered by the search form, ordered by name.
var Countries = []Country{
	{"AF", "Afghanistan"}, {"AL", "Albania"}, {"DZ", "Algeria"}, {"AR", "Argentina"},
	{"AU", "Australia"}, {"AT", "Austria"}, {"BD", "Bangladesh"}, {"BE", "Belgium"},
	{"BR", "Brazil"}, {"CA", "Canada"}, {"CL", "Chile"}, {"CN", "China"},
	{"CO", "Colombia"}, {"HR", "Croatia"}, {"CZ", "Czech Republic"}, {"DK", "Denmark"},
	{"EG", "Egypt"}, {"FI", "Finland"}, {"FR", "France"}, {"DE", "Germany"},
	{"GR", "Greece"}, {"HK", "Hong Kong"}, {"HU", "Hungary"}, {"IN", "India"},
	{"ID", "Indonesia"}, {"IE", "Ireland"}, {"IL", "Israel"}, {"IT", "Italy"},
	{"JP", "Japan"}, {"KE", "Kenya"}, {"KR", "South Korea"}, {"MY", "Malaysia"},
	{"MX", "Mexico"}, {"NL", "Netherlands"}, {"NZ", "New Zealand"}, {"NG", "Nigeria"},
	{"NO", "Norway"}, {"PK", "Pakistan"}, {"PH", "Philippines"}, {"PL", "Poland"},
	{"PT", "Portugal"}, {"RO", "Romania"}, {"RU", "Russia"}, {"SA", "Saudi Arabia"},
	{"SG", "Singapore"}, {"ZA", "South Africa"}, {"ES", "Spain"}, {"SE", "Sweden"},
	{"CH", "Switzerland"}, {"TW", "Taiwan"}, {"TH", "Thailand"}, {"TR", "Turkey"},
	{"UA", "Ukraine"}, {"AE", "United Arab Emirates"}, {"GB", "United Kingdom"},
	{"US", "United States"}, {"VN", "Vietnam"},
}

// Selectable year range, inclusive.
const (
	FirstYear = 2020
	LastYear  = 2030
)

// Years returns the selectable years in ascending order.
func Years() []int {
	years := make([]int, 0, LastYear-FirstYear+1)
	for y := FirstYear; y <= LastYear; y++ {
		years = append(years, y)
	}
	return years
}

// LookupCountry finds a country by code, case-insensitively.
func LookupCountry(code string) (Country, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// YearIndex returns the position of year within Years, clamped to the range.
func YearIndex(year string) int {
	n, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil || n < FirstYear {
		return 0
	}
	if n > LastYear {
		return LastYear - FirstYear
	}
	return n - FirstYear
}
