package registration

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestValidateField_EmptyIsRequired(t *testing.T) {
	want := map[Field]string{
		FirstName:   "This field is required.",
		LastName:    "This field is required.",
		Username:    "This field is required.",
		Email:       "Email is required.",
		Password:    "Password is required.",
		PhoneNumber: "Phone number is required.",
		Country:     "Country is required.",
		City:        "City is required.",
		PanNo:       "PAN number is required.",
		AadharNo:    "Aadhar number is required.",
	}
	for _, f := range Fields() {
		if f == PhoneCountryCode {
			require.Empty(t, ValidateField(f, ""), "phone country code is never validated")
			continue
		}
		require.Equal(t, want[f], ValidateField(f, ""), "field %s", f)
	}
}

func TestValidateField_WhitespaceOnly(t *testing.T) {
	require.Equal(t, "This field is required.", ValidateField(FirstName, "   "))
	require.Equal(t, "Email is required.", ValidateField(Email, " \t"))
	require.Equal(t, "Phone number is required.", ValidateField(PhoneNumber, "  "))
	require.Equal(t, "PAN number is required.", ValidateField(PanNo, " "))
	require.Equal(t, "Aadhar number is required.", ValidateField(AadharNo, "\t"))
	require.Equal(t, "This field is required.", ValidateField(Username, "\u00a0\ufeff"))

	// Password, country and city only reject the truly empty string.
	require.Equal(t, "Password must be at least 8 characters long.", ValidateField(Password, "   "))
	require.Empty(t, ValidateField(Country, " "))
	require.Empty(t, ValidateField(City, " "))
}

func TestValidateField_Email(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"user@example.com", ""},
		{"a@b.c", ""},
		{"a@b.c.", ""}, // single trailing token char is enough
		{"userexample.com", "Email is invalid."},
		{"user@example", "Email is invalid."},
		{"@example.com", "Email is invalid."},
		{"user@.com", "Email is invalid."},
		{"a\u00a0@b.c", "Email is invalid."},
		{"a@b.\u00a0", "Email is invalid."},
		{"a@\u2003.c", "Email is invalid."},
		{"a\v@b.c", "Email is invalid."},
		{"a\ufeff@b.c", "Email is invalid."},
		{"x a\u00a0b@c.d", ""}, // unanchored: "b@c.d" still matches
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			require.Equal(t, tt.want, ValidateField(Email, tt.value))
		})
	}
}

func TestValidateField_Password(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"too short", "abc", "Password must be at least 8 characters long."},
		{"lowercase only", "abcdefgh", "Password must contain at least one uppercase letter."},
		{"no lowercase", "ABCDEFGH", "Password must contain at least one lowercase letter."},
		{"no digit", "Abcdefgh", "Password must contain at least one number."},
		{"no special", "Abcdefg1", "Password must contain at least one special character (!@#$%^&*)."},
		{"valid", "Abcdefg1!", ""},
		{"length before case", "Ab1!", "Password must be at least 8 characters long."},
		{"astral chars count twice", "Ab1!\U0001F600\U0001F600", ""},
		{"three BMP chars short", "Ab1!äöü", "Password must be at least 8 characters long."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ValidateField(Password, tt.value))
		})
	}
}

func TestValidateField_PhoneNumber(t *testing.T) {
	require.Empty(t, ValidateField(PhoneNumber, "9876543210"))
	require.Equal(t, "Phone number must be 10 digits.", ValidateField(PhoneNumber, "987654321"))
	require.Equal(t, "Phone number must be 10 digits.", ValidateField(PhoneNumber, "98765432101"))
	require.Equal(t, "Phone number must be 10 digits.", ValidateField(PhoneNumber, "98765-4321"))
	require.Equal(t, "Phone number must be 10 digits.", ValidateField(PhoneNumber, " 9876543210"))
}

func TestValidateField_PAN(t *testing.T) {
	require.Empty(t, ValidateField(PanNo, "ABCDE1234F"))
	require.Equal(t, "Invalid PAN number format (e.g., ABCDE1234F).", ValidateField(PanNo, "abcde1234f"))
	require.Equal(t, "Invalid PAN number format (e.g., ABCDE1234F).", ValidateField(PanNo, "ABCDE12345"))
	require.Equal(t, "Invalid PAN number format (e.g., ABCDE1234F).", ValidateField(PanNo, "ABCDE1234FG"))
}

func TestValidateField_Aadhar(t *testing.T) {
	require.Empty(t, ValidateField(AadharNo, "123456789012"))
	require.Equal(t, "Aadhar number must be 12 digits.", ValidateField(AadharNo, "12345"))
	require.Equal(t, "Aadhar number must be 12 digits.", ValidateField(AadharNo, "12345678901a"))
}

func TestRules_PhoneCountryCodeHasNone(t *testing.T) {
	require.Nil(t, Rules(PhoneCountryCode))
	require.Len(t, Rules(Password), 6)
}

func TestValidateField_TenDigitPhoneAlwaysValid(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		phone := rapid.StringMatching(`[0-9]{10}`).Draw(rt, "phone")
		require.Empty(rt, ValidateField(PhoneNumber, phone))
	})
}

func TestValidateField_AadharRejectsWrongLength(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 30).Filter(func(n int) bool { return n != 12 }).Draw(rt, "n")
		digits := rapid.StringMatching(`[0-9]{` + strconv.Itoa(n) + `}`).Draw(rt, "digits")
		require.Equal(rt, "Aadhar number must be 12 digits.", ValidateField(AadharNo, digits))
	})
}

func TestValidateField_GeneratedPANAccepted(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		pan := rapid.StringMatching(`[A-Z]{5}[0-9]{4}[A-Z]`).Draw(rt, "pan")
		require.Empty(rt, ValidateField(PanNo, pan))
		require.NotEmpty(rt, ValidateField(PanNo, strings.ToLower(pan)))
	})
}

func TestValidateField_StrongPasswordAccepted(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		pw := rapid.StringMatching(`[A-Z][a-z][0-9][!@#$%^&*][A-Za-z0-9]{4,20}`).Draw(rt, "password")
		require.Empty(rt, ValidateField(Password, pw))
	})
}

func TestValidateField_ReturnsAtMostOneKnownMessage(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := rapid.SampledFrom(Fields()).Draw(rt, "field")
		value := rapid.String().Draw(rt, "value")
		msg := ValidateField(f, value)
		if msg == "" {
			return
		}
		var known []string
		for _, r := range Rules(f) {
			known = append(known, r.Message)
		}
		require.Contains(rt, known, msg)
	})
}
