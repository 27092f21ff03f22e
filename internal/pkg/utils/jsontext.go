package utils

import (
	"encoding/json"
	"strings"
)

// ToJSONString marshals v for storage in a text column. Nil and empty
// values become "" so the column stays blank.
func ToJSONString(v any) string {
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	s := string(data)
	if s == "null" || s == "{}" || s == "[]" {
		return ""
	}
	return s
}

// FromJSONString reverses ToJSONString. A blank or invalid string yields nil.
func FromJSONString(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil
	}
	return v
}
