package validator

import (
	"encoding/json"
	"errors"
	"io"
	"portfolio/shared/failure"
	"reflect"
	"regexp"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// MessageInvalidBody is returned for any body that does not decode into the request type.
const MessageInvalidBody = "Invalid request body"

var (
	validate *val.Validate

	// looseEmail accepts anything shaped like local@domain.tld without whitespace.
	looseEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Normalizer is implemented by request types that clean their input before validation.
type Normalizer interface {
	Normalize()
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("looseemail", func(fl val.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})
}

// Validate decodes a JSON body into data, normalizes it when supported and validates the result.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequestFromString(MessageInvalidBody) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct reports the first failing rule in field order as a 400 failure.
func ValidateStruct[T any](data *T) error {
	if normalizer, ok := any(data).(Normalizer); ok {
		normalizer.Normalize()
	}

	if err := validate.Struct(data); err != nil {
		var invalid *val.InvalidValidationError
		if errors.As(err, &invalid) {
			return failure.BadRequestFromString(MessageInvalidBody) //nolint:wrapcheck
		}

		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
