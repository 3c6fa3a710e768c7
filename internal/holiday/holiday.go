// Package holiday holds the data exchanged with the holiday API.
package holiday

import (
	"bytes"
	"strconv"
	"strings"

	apperrors "github.com/cristianoliveira/holiday-explorer/internal/errors"
)

// Criteria selects the holidays to fetch.
type Criteria struct {
	Country string
	Year    string
}

// Normalize trims surrounding whitespace from both fields.
func (c Criteria) Normalize() Criteria {
	return Criteria{
		Country: strings.TrimSpace(c.Country),
		Year:    strings.TrimSpace(c.Year),
	}
}

// Validate checks that both fields are present. Format is not checked.
func (c Criteria) Validate() error {
	n := c.Normalize()
	if n.Country == "" || n.Year == "" {
		return apperrors.Validation()
	}
	return nil
}

// Record is one holiday as returned by the API. Optional text fields are empty when absent.
type Record struct {
	Name        string `json:"name"`
	NameLocal   string `json:"name_local,omitempty"`
	Type        string `json:"type,omitempty"`
	Date        string `json:"date,omitempty"`
	DateYear    Int    `json:"date_year"`
	DateMonth   Int    `json:"date_month"`
	DateDay     Int    `json:"date_day"`
	WeekDay     string `json:"week_day,omitempty"`
	Location    string `json:"location,omitempty"`
	Country     string `json:"country"`
	Description string `json:"description,omitempty"`
}

// Response is the API envelope.
type Response struct {
	Success  bool     `json:"success"`
	Holidays []Record `json:"holidays,omitempty"`
	Error    string   `json:"error,omitempty"`
	// Source names the upstream that answered, e.g. "Nager.Date".
	Source string `json:"source,omitempty"`
}

// Int is a date component. The API sends these as numbers or as numeric strings
// ("2024", "12"); anything unparseable decodes to 0.
type Int int

// UnmarshalJSON accepts 12, "12", "", and null.
func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}
	s := strings.TrimSpace(strings.Trim(string(data), `"`))
	n, err := strconv.Atoi(s)
	if err != nil {
		*i = 0
		return nil
	}
	*i = Int(n)
	return nil
}
