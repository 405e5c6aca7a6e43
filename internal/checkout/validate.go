package checkout

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PostalCodeRule decides whether a non-empty postal code is valid.
// The default rule encodes the Norwegian 4-digit convention; shops in
// other markets plug in their own.
type PostalCodeRule func(code string) bool

var (
	norwegianPostalCode = regexp.MustCompile(`^\d{4}$`)
	emailShape          = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// NorwegianPostalCode accepts exactly four decimal digits.
func NorwegianPostalCode(code string) bool {
	return norwegianPostalCode.MatchString(code)
}

var requiredMessages = map[string]string{
	"email":      "E-post er påkrevd",
	"name":       "Navn er påkrevd",
	"address":    "Adresse er påkrevd",
	"city":       "By er påkrevd",
	"postalCode": "Postnummer er påkrevd",
	"phone":      "Telefon er påkrevd",
}

var formatMessages = map[string]string{
	"email":      "Ugyldig e-postadresse",
	"postalCode": "Postnummer må være 4 siffer",
}

// Validator checks a CustomerInfo record before checkout submission.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a Validator with the given postal-code rule.
// A nil rule falls back to NorwegianPostalCode.
func NewValidator(rule PostalCodeRule) (*Validator, error) {
	if rule == nil {
		rule = NorwegianPostalCode
	}

	v := validator.New()

	// Report errors under the json field names the form uses.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err := v.RegisterValidation("shopemail", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register email rule: %w", err)
	}

	err = v.RegisterValidation("postalcode", func(fl validator.FieldLevel) bool {
		return rule(fl.Field().String())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register postal code rule: %w", err)
	}

	return &Validator{validate: v}, nil
}

// Validate returns one message per failing field, keyed by the form's
// field name. An empty map means the record is valid. Fields are
// checked independently; a blank field reports "required" and a
// non-blank malformed field reports its format message.
func (v *Validator) Validate(info CustomerInfo) map[string]string {
	fieldErrors := map[string]string{}

	err := v.validate.Struct(info)
	if err == nil {
		return fieldErrors
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		// Struct-level failures cannot happen for a plain string
		// record; treat anything else as every-field-unknown.
		return map[string]string{"form": err.Error()}
	}

	for _, vErr := range vErrs {
		field := vErr.Field()
		switch vErr.Tag() {
		case "required":
			fieldErrors[field] = requiredMessages[field]
		default:
			fieldErrors[field] = formatMessages[field]
		}
	}
	return fieldErrors
}
