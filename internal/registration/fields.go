// Package registration holds the registration form's data model and the
// validation rules applied to it.
//
// The package is pure: nothing here touches the terminal, the filesystem or
// the clock. The session package drives it from UI events.
package registration

import (
	"fmt"
	"strings"
	"unicode"
)

// Field names a single form input. The string value is the key used in
// config files, the validate command and the confirmation view.
type Field string

const (
	FirstName        Field = "firstName"
	LastName         Field = "lastName"
	Username         Field = "username"
	Email            Field = "email"
	Password         Field = "password"
	PhoneCountryCode Field = "phoneCountryCode"
	PhoneNumber      Field = "phoneNumber"
	Country          Field = "country"
	City             Field = "city"
	PanNo            Field = "panNo"
	AadharNo         Field = "aadharNo"
)

// fieldOrder is the fixed field set in display and validation order.
var fieldOrder = []Field{
	FirstName,
	LastName,
	Username,
	Email,
	Password,
	PhoneCountryCode,
	PhoneNumber,
	Country,
	City,
	PanNo,
	AadharNo,
}

// Fields returns every form field in display order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// ParseField maps a field key back to a Field.
func ParseField(name string) (Field, error) {
	for _, f := range fieldOrder {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", name)
}

// Label derives the display label for a field by inserting a space before
// every capital letter, so phoneCountryCode becomes "phone Country Code".
func (f Field) Label() string {
	var b strings.Builder
	for _, r := range string(f) {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// DialCode is one of the fixed phone country codes.
type DialCode struct {
	Code  string
	Label string
}

// DefaultDialCode is the phone country code a fresh form starts with.
const DefaultDialCode = "+91"

var dialCodes = []DialCode{
	{Code: "+1", Label: "+1 (USA/Canada)"},
	{Code: "+44", Label: "+44 (UK)"},
	{Code: "+91", Label: "+91 (India)"},
}

// DialCodes returns the selectable phone country codes in display order.
func DialCodes() []DialCode {
	out := make([]DialCode, len(dialCodes))
	copy(out, dialCodes)
	return out
}

// IsDialCode reports whether code is one of the selectable dial codes.
func IsDialCode(code string) bool {
	for _, dc := range dialCodes {
		if dc.Code == code {
			return true
		}
	}
	return false
}

// Values is the current form state: one string per field.
type Values map[Field]string

// NewValues returns a blank form. Every field is empty except the phone
// country code, which is set to dialCode (or DefaultDialCode when dialCode
// is not a known code).
func NewValues(dialCode string) Values {
	if !IsDialCode(dialCode) {
		dialCode = DefaultDialCode
	}
	v := make(Values, len(fieldOrder))
	for _, f := range fieldOrder {
		v[f] = ""
	}
	v[PhoneCountryCode] = dialCode
	return v
}

// Clone returns an independent copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// PasswordMask replaces the password on the confirmation view.
const PasswordMask = "********"

// SummaryLine is one label/value row of the confirmation view.
type SummaryLine struct {
	Field Field
	Label string
	Value string
}

// Summary lists every field with its label and value in display order.
// The password is always replaced by PasswordMask.
func Summary(v Values) []SummaryLine {
	lines := make([]SummaryLine, 0, len(fieldOrder))
	for _, f := range fieldOrder {
		value := v[f]
		if f == Password {
			value = PasswordMask
		}
		lines = append(lines, SummaryLine{Field: f, Label: f.Label(), Value: value})
	}
	return lines
}
