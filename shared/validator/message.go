package validator

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":   "{field} is required",
		"looseemail": "Invalid email address",
		"email":      "Invalid email address",
		"oneof":      "{field} must be one of {param}",
		"max":        "{field} must be at most {param} characters",
		"min":        "{field} must have at least {param} entries",
		"url":        "{field} must be a valid URL",
		"gte":        "{field} must be greater than or equal to {param}",
		"lte":        "{field} must be less than or equal to {param}",
		"dive":       "{field} is invalid",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr == "" {
				continue
			}

			errStr = strings.ReplaceAll(errStr, "{field}", label(valErr.Field()))
			errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

			return errStr
		}

		return valErrors.Error()
	}

	return err.Error()
}

// label turns a json field name into sentence case, e.g. cover_image becomes "Cover image".
func label(field string) string {
	var b strings.Builder

	for i, r := range field {
		switch {
		case r == '_':
			b.WriteByte(' ')
		case i > 0 && unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}

	s := b.String()
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(first)) + s[size:]
}
