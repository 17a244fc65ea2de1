package wargame

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Stat is a profile value such as attacks or AP. The backend sends these
// either as JSON numbers or as strings ("3", "X", "-1").
type Stat string

// UnmarshalJSON accepts both string and numeric encodings
func (s *Stat) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Stat(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = Stat(num.String())
	return nil
}

// Int parses the stat as an integer
func (s Stat) Int() (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(string(s)))
	if err != nil {
		return 0, false
	}
	return v, true
}

// String returns the raw stat text
func (s Stat) String() string {
	return string(s)
}
