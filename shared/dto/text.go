package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var errNotScalar = errors.New("expected a string, number, boolean or null")

// Text is a request field that accepts any JSON scalar and keeps its textual form.
// Numbers keep their literal spelling, booleans become "true"/"false" and null becomes "".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*t = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err //nolint:wrapcheck
		}

		*t = Text(s)
	case data[0] == '{', data[0] == '[':
		return errNotScalar
	default:
		*t = Text(data)
	}

	return nil
}

func (t Text) String() string {
	return string(t)
}

// Trimmed returns the value without surrounding whitespace.
func (t Text) Trimmed() string {
	return strings.TrimSpace(string(t))
}

// Optional returns nil for a blank value so it is stored as NULL.
func (t Text) Optional() *string {
	trimmed := t.Trimmed()
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
