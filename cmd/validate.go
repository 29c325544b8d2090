package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/presentation"
	"github.com/zjrosen/signup/internal/registration"
)

var (
	validateFile   string
	validateFormat string
)

// errInvalidForm is returned after the report has been printed so the
// process exits non-zero.
var errInvalidForm = errors.New("form is invalid")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a YAML file of form values",
	Long: `Validate a YAML map of field to value with the same rules as the form.

Missing fields are treated as empty. phoneCountryCode defaults to +91.
Exits non-zero when any field is invalid.

Examples:
  # Text report
  signup validate --file values.yaml

  # JSON report
  signup validate -f values.yaml --format json | jq '.errors[].field'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), validateFile, validateFormat)
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "YAML file with field values (required)")
	validateCmd.Flags().StringVar(&validateFormat, "format", "text", "output format: text or json")
	_ = validateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(out io.Writer, path, format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("--format must be text or json, got %q", format)
	}

	values, err := readValues(path)
	if err != nil {
		return err
	}

	errs, valid := registration.ValidateForm(values)
	log.Info(log.CatForm, "headless validate", "path", path, "valid", valid, "errors", errs.Count())

	dto := presentation.FromValidation(errs, valid)
	formatter := presentation.NewFormatter(out)
	if format == "json" {
		err = formatter.FormatValidationJSON(dto)
	} else {
		err = formatter.FormatValidationText(dto)
	}
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if !valid {
		return errInvalidForm
	}
	return nil
}

// readValues decodes a flat YAML mapping of field names to scalars. Scalars
// are taken verbatim, so 9876543210 stays a digit string.
func readValues(path string) (registration.Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading values: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	values := registration.NewValues("")
	if len(doc.Content) == 0 {
		return values, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: expected a mapping of field to value", path)
	}

	var unknown []string
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		f, err := registration.ParseField(k.Value)
		if err != nil {
			unknown = append(unknown, k.Value)
			continue
		}
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%s: field %s must be a scalar (line %d)", path, k.Value, v.Line)
		}
		if v.Tag == "!!null" {
			values[f] = ""
			continue
		}
		values[f] = v.Value
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%s: unknown fields: %s", path, strings.Join(unknown, ", "))
	}
	if !registration.IsDialCode(values[registration.PhoneCountryCode]) {
		return nil, fmt.Errorf("%s: phoneCountryCode %q must be one of +1, +44, +91", path, values[registration.PhoneCountryCode])
	}
	return values, nil
}
