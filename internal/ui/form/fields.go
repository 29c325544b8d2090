package form

import (
	"slices"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/session"
)

// FieldKind determines how a field is edited and rendered.
type FieldKind int

const (
	FieldKindText   FieldKind = iota // free text via textinput
	FieldKindSelect                  // fixed options cycled with ←/→
)

const (
	countryPlaceholder = "Select Country"
	cityPlaceholder    = "Select City"
	phonePlaceholder   = "e.g., 9876543210"
)

// fieldLabels are the section titles; they differ from registration.Field.Label,
// which is used on the confirmation view.
var fieldLabels = map[registration.Field]string{
	registration.FirstName:        "First Name",
	registration.LastName:         "Last Name",
	registration.Username:         "Username",
	registration.Email:            "E-mail",
	registration.Password:         "Password",
	registration.PhoneCountryCode: "Code",
	registration.PhoneNumber:      "Phone Number",
	registration.Country:          "Country",
	registration.City:             "City",
	registration.PanNo:            "PAN No.",
	registration.AadharNo:         "Aadhar No.",
}

// layoutRows groups fields into the rows they are drawn on. Focus order is
// the flattened row order, which matches registration.Fields.
var layoutRows = [][]registration.Field{
	{registration.FirstName, registration.LastName},
	{registration.Username},
	{registration.Email},
	{registration.Password},
	{registration.PhoneCountryCode, registration.PhoneNumber},
	{registration.Country, registration.City},
	{registration.PanNo, registration.AadharNo},
}

// dialCodeWidth is the fixed width of the dial-code section in the phone row.
const dialCodeWidth = 23

// fieldState holds the per-field widget state.
type fieldState struct {
	field     registration.Field
	kind      FieldKind
	textInput textinput.Model
}

func kindOf(f registration.Field) FieldKind {
	switch f {
	case registration.PhoneCountryCode, registration.Country, registration.City:
		return FieldKindSelect
	default:
		return FieldKindText
	}
}

func newFieldState(f registration.Field) fieldState {
	fs := fieldState{field: f, kind: kindOf(f)}
	if fs.kind == FieldKindText {
		ti := textinput.New()
		ti.Prompt = ""
		if f == registration.PhoneNumber {
			ti.Placeholder = phonePlaceholder
		}
		if f == registration.Password {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		fs.textInput = ti
	}
	return fs
}

// selectOptions returns the option values a select field cycles through.
// The empty string is the placeholder option for country and city.
func selectOptions(s session.State, f registration.Field) []string {
	switch f {
	case registration.PhoneCountryCode:
		var codes []string
		for _, dc := range registration.DialCodes() {
			codes = append(codes, dc.Code)
		}
		return codes
	case registration.Country:
		return append([]string{""}, s.Directory().Countries()...)
	case registration.City:
		return append([]string{""}, s.CityOptions()...)
	}
	return nil
}

// cycleOption moves delta steps from current, wrapping at both ends. An
// unknown current value starts from the first option.
func cycleOption(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	i := max(slices.Index(options, current), 0)
	n := len(options)
	return options[((i+delta)%n+n)%n]
}

// optionLabel is the text shown for a select value.
func optionLabel(f registration.Field, value string) string {
	switch f {
	case registration.PhoneCountryCode:
		for _, dc := range registration.DialCodes() {
			if dc.Code == value {
				return dc.Label
			}
		}
	case registration.Country:
		if value == "" {
			return countryPlaceholder
		}
	case registration.City:
		if value == "" {
			return cityPlaceholder
		}
	}
	return value
}

// isDisabled reports whether f cannot take focus in s. City stays disabled
// until a country is chosen.
func isDisabled(s session.State, f registration.Field) bool {
	return f == registration.City && s.Values[registration.Country] == ""
}
