package registration

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validValues() Values {
	v := NewValues("+44")
	v[FirstName] = "Asha"
	v[LastName] = "Rao"
	v[Username] = "asha"
	v[Email] = "asha@example.com"
	v[Password] = "Abcdefg1!"
	v[PhoneNumber] = "9876543210"
	v[Country] = "India"
	v[City] = "Delhi"
	v[PanNo] = "ABCDE1234F"
	v[AadharNo] = "123456789012"
	return v
}

func TestValidateForm_BlankFormReportsEveryRequiredField(t *testing.T) {
	errs, ok := ValidateForm(NewValues(""))
	require.False(t, ok)
	require.True(t, errs.HasErrors())
	require.Equal(t, 10, errs.Count())
	require.Len(t, errs, len(Fields()))
	require.Empty(t, errs[PhoneCountryCode])
	require.Equal(t, "Email is required.", errs[Email])
	require.NotContains(t, errs.Failing(), PhoneCountryCode)
	require.Equal(t, FirstName, errs.Failing()[0])
	require.Equal(t, AadharNo, errs.Failing()[9])
}

func TestValidateForm_ValidValues(t *testing.T) {
	errs, ok := ValidateForm(validValues())
	require.True(t, ok)
	require.False(t, errs.HasErrors())
	require.Zero(t, errs.Count())
	require.Empty(t, errs.Failing())
}

func TestValidateForm_SingleBadField(t *testing.T) {
	v := validValues()
	v[PanNo] = "ABCDE12345"
	errs, ok := ValidateForm(v)
	require.False(t, ok)
	require.Equal(t, []Field{PanNo}, errs.Failing())
	require.Equal(t, "Invalid PAN number format (e.g., ABCDE1234F).", errs[PanNo])
}

func TestValidateForm_AgreesWithValidateField(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := NewValues("")
		for _, f := range Fields() {
			v[f] = rapid.SampledFrom([]string{"", " ", "x", "Abcdefg1!", "9876543210", "123456789012", "ABCDE1234F", "a@b.co"}).Draw(rt, string(f))
		}
		errs, ok := ValidateForm(v)
		for _, f := range Fields() {
			require.Equal(rt, ValidateField(f, v[f]), errs[f])
		}
		require.Equal(rt, !errs.HasErrors(), ok)
	})
}

func TestErrors_Clone(t *testing.T) {
	errs := Errors{Email: "Email is invalid."}
	c := errs.Clone()
	c[Email] = ""
	require.Equal(t, "Email is invalid.", errs[Email])
}

func TestNewValues(t *testing.T) {
	v := NewValues("")
	require.Len(t, v, len(Fields()))
	require.Equal(t, DefaultDialCode, v[PhoneCountryCode])
	require.Empty(t, v[FirstName])

	require.Equal(t, "+1", NewValues("+1")[PhoneCountryCode])
	require.Equal(t, DefaultDialCode, NewValues("+33")[PhoneCountryCode])
}

func TestValues_Clone(t *testing.T) {
	v := NewValues("")
	c := v.Clone()
	c[FirstName] = "changed"
	require.Empty(t, v[FirstName])
}

func TestField_Label(t *testing.T) {
	require.Equal(t, "first Name", FirstName.Label())
	require.Equal(t, "phone Country Code", PhoneCountryCode.Label())
	require.Equal(t, "email", Email.Label())
	require.Equal(t, "pan No", PanNo.Label())
	require.Equal(t, "aadhar No", AadharNo.Label())
}

func TestParseField(t *testing.T) {
	f, err := ParseField("phoneNumber")
	require.NoError(t, err)
	require.Equal(t, PhoneNumber, f)

	_, err = ParseField("PhoneNumber")
	require.ErrorContains(t, err, `unknown field "PhoneNumber"`)
}

func TestDialCodes(t *testing.T) {
	codes := DialCodes()
	require.Len(t, codes, 3)
	require.Equal(t, "+1 (USA/Canada)", codes[0].Label)
	require.Equal(t, "+44 (UK)", codes[1].Label)
	require.Equal(t, "+91 (India)", codes[2].Label)
	require.True(t, IsDialCode("+44"))
	require.False(t, IsDialCode("44"))
}

func TestSummary_MasksPassword(t *testing.T) {
	lines := Summary(validValues())
	require.Len(t, lines, len(Fields()))
	require.Equal(t, "first Name", lines[0].Label)
	require.Equal(t, "Asha", lines[0].Value)

	for _, l := range lines {
		if l.Field == Password {
			require.Equal(t, "********", l.Value)
		}
		require.NotEqual(t, "Abcdefg1!", l.Value)
	}
	require.Equal(t, "+44", lines[5].Value)
	require.Equal(t, "phone Country Code", lines[5].Label)
}
