package registration

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Rule is a single predicate in a field's rule chain. Check returns true when
// the value passes; Message is reported when it does not.
type Rule struct {
	Check   func(value string) bool
	Message string
}

var (
	// nonSpace mirrors the ECMAScript \S class: RE2's \S lets \v, NBSP,
	// the U+2000 block and U+FEFF through.
	nonSpace         = `[^\s\v\p{Z}\x{FEFF}]`
	emailPattern     = regexp.MustCompile(nonSpace + `+@` + nonSpace + `+\.` + nonSpace)
	upperPattern     = regexp.MustCompile(`[A-Z]`)
	lowerPattern     = regexp.MustCompile(`[a-z]`)
	digitPattern     = regexp.MustCompile(`[0-9]`)
	specialPattern   = regexp.MustCompile(`[!@#$%^&*]`)
	phonePattern     = regexp.MustCompile(`^[0-9]{10}$`)
	panPattern       = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadharPattern    = regexp.MustCompile(`^[0-9]{12}$`)
	minPasswordUnits = 8
)

// utf16Len counts UTF-16 code units, so a character outside the BMP
// counts twice, as it does in a browser.
func utf16Len(value string) int {
	n := 0
	for _, r := range value {
		n += utf16.RuneLen(r)
	}
	return n
}

// notBlank trims like String.prototype.trim, which also strips U+FEFF.
func notBlank(value string) bool {
	return strings.TrimFunc(value, func(r rune) bool { return unicode.IsSpace(r) || r == '\uFEFF' }) != ""
}
func notEmpty(value string) bool { return value != "" }

func matches(re *regexp.Regexp) func(string) bool {
	return re.MatchString
}

func required(msg string) Rule { return Rule{Check: notBlank, Message: msg} }

// rules is the field validator table. Chains are evaluated in order and the
// first failing rule wins. Fields without an entry are never invalid.
var rules = map[Field][]Rule{
	FirstName: {required("This field is required.")},
	LastName:  {required("This field is required.")},
	Username:  {required("This field is required.")},
	Email: {
		required("Email is required."),
		{Check: matches(emailPattern), Message: "Email is invalid."},
	},
	Password: {
		{Check: notEmpty, Message: "Password is required."},
		{
			Check:   func(v string) bool { return utf16Len(v) >= minPasswordUnits },
			Message: "Password must be at least 8 characters long.",
		},
		{Check: matches(upperPattern), Message: "Password must contain at least one uppercase letter."},
		{Check: matches(lowerPattern), Message: "Password must contain at least one lowercase letter."},
		{Check: matches(digitPattern), Message: "Password must contain at least one number."},
		{Check: matches(specialPattern), Message: "Password must contain at least one special character (!@#$%^&*)."},
	},
	PhoneNumber: {
		required("Phone number is required."),
		{Check: matches(phonePattern), Message: "Phone number must be 10 digits."},
	},
	Country: {{Check: notEmpty, Message: "Country is required."}},
	City:    {{Check: notEmpty, Message: "City is required."}},
	PanNo: {
		required("PAN number is required."),
		{Check: matches(panPattern), Message: "Invalid PAN number format (e.g., ABCDE1234F)."},
	},
	AadharNo: {
		required("Aadhar number is required."),
		{Check: matches(aadharPattern), Message: "Aadhar number must be 12 digits."},
	},
}

// Rules returns the rule chain for a field. The result is nil for fields
// that are never validated (phoneCountryCode).
func Rules(f Field) []Rule {
	return rules[f]
}

// ValidateField runs the rule chain for a single field and returns the first
// failing rule's message, or "" when the value is valid.
func ValidateField(f Field, value string) string {
	for _, r := range rules[f] {
		if !r.Check(value) {
			return r.Message
		}
	}
	return ""
}
