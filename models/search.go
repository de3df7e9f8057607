package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// OptionalInt is a numeric search filter that may be absent. Form-driven
// clients send numbers as quoted strings, so both representations are
// accepted; anything non-numeric is rejected at decode time.
type OptionalInt struct {
	Value int
	Set   bool
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var quoted string
		if err := json.Unmarshal(data, &quoted); err != nil {
			return err
		}
		s = strings.TrimSpace(quoted)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid numeric value %s", s)
	}
	o.Value = n
	o.Set = true
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(o.Value)), nil
}

// SearchCriteria carries the optional filters of a property search. Absent
// fields impose no predicate; supplied ones are combined conjunctively.
type SearchCriteria struct {
	Location  string      `json:"location,omitempty"`
	Bedrooms  OptionalInt `json:"bedrooms,omitempty"`
	Bathrooms OptionalInt `json:"bathrooms,omitempty"`
	Price     OptionalInt `json:"price,omitempty"`
	Amenities []string    `json:"amenities,omitempty"`
}
