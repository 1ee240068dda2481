package models

import (
	"encoding/json"
	"strings"
)

// FieldValue is a raw calculator input field. It unmarshals from a JSON string
// (kept verbatim), a JSON number (kept as its literal text) or null (empty).
// Any other JSON value is kept as text and later fails numeric validation.
type FieldValue string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FieldValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))

	switch {
	case s == "null":
		*f = ""
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*f = FieldValue(str)
	default:
		*f = FieldValue(s)
	}
	return nil
}

func (f FieldValue) String() string {
	return string(f)
}
