package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInfo() CustomerInfo {
	return CustomerInfo{
		Email:      "ola@nordmann.no",
		Name:       "Ola Nordmann",
		Address:    "Storgata 1",
		City:       "Oslo",
		PostalCode: "0123",
		Phone:      "12345678",
	}
}

func TestValidateValidRecord(t *testing.T) {
	v, err := NewValidator(nil)
	require.NoError(t, err)

	assert.Empty(t, v.Validate(validInfo()))
}

func TestValidateMissingEmailOnly(t *testing.T) {
	v, err := NewValidator(nil)
	require.NoError(t, err)

	info := validInfo()
	info.Email = ""

	errs := v.Validate(info)
	require.Len(t, errs, 1)
	assert.Equal(t, "E-post er påkrevd", errs["email"])
}

func TestValidateShortPostalCodeOnly(t *testing.T) {
	v, err := NewValidator(nil)
	require.NoError(t, err)

	info := validInfo()
	info.PostalCode = "123"

	errs := v.Validate(info)
	require.Len(t, errs, 1)
	assert.Equal(t, "Postnummer må være 4 siffer", errs["postalCode"])
}

func TestValidatePostalCodeWithLetters(t *testing.T) {
	v, err := NewValidator(nil)
	require.NoError(t, err)

	info := validInfo()
	info.PostalCode = "12a4"

	errs := v.Validate(info)
	require.Len(t, errs, 1)
	assert.Equal(t, "Postnummer må være 4 siffer", errs["postalCode"])
}

func TestValidateMalformedEmail(t *testing.T) {
	v, err := NewValidator(nil)
	require.NoError(t, err)

	for _, bad := range []string{"not-an-email", "a@b", "a b@c.no", "@no-local.no"} {
		info := validInfo()
		info.Email = bad

		errs := v.Validate(info)
		require.Len(t, errs, 1, "email %q", bad)
		assert.Equal(t, "Ugyldig e-postadresse", errs["email"])
	}
}

func TestValidateAllFieldsMissing(t *testing.T) {
	v, err := NewValidator(nil)
	require.NoError(t, err)

	errs := v.Validate(CustomerInfo{})
	assert.Equal(t, map[string]string{
		"email":      "E-post er påkrevd",
		"name":       "Navn er påkrevd",
		"address":    "Adresse er påkrevd",
		"city":       "By er påkrevd",
		"postalCode": "Postnummer er påkrevd",
		"phone":      "Telefon er påkrevd",
	}, errs)
}

func TestValidateCustomPostalCodeRule(t *testing.T) {
	fiveDigits := func(code string) bool { return len(code) == 5 }

	v, err := NewValidator(fiveDigits)
	require.NoError(t, err)

	info := validInfo()
	info.PostalCode = "12345"
	assert.Empty(t, v.Validate(info))

	info.PostalCode = "0123"
	errs := v.Validate(info)
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "postalCode")
}
