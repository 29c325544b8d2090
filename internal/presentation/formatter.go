package presentation

import (
	"encoding/json"
	"fmt"
	"io"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatValidationJSON writes the result as indented JSON.
func (f *Formatter) FormatValidationJSON(result ValidationDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// FormatValidationText writes one "label: message" line per failing field,
// or a single "valid" line.
func (f *Formatter) FormatValidationText(result ValidationDTO) error {
	if result.Valid {
		_, err := fmt.Fprintln(f.writer, "valid")
		return err
	}
	for _, e := range result.Errors {
		if _, err := fmt.Fprintf(f.writer, "%s: %s\n", e.Label, e.Message); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(f.writer, "%d invalid fields\n", len(result.Errors))
	return err
}

// FormatThemes writes the preset list, marking the active preset with "*".
func (f *Formatter) FormatThemes(themes []ThemeDTO) error {
	width := 0
	for _, t := range themes {
		width = max(width, len(t.Name))
	}
	for _, t := range themes {
		marker := " "
		if t.Active {
			marker = "*"
		}
		if _, err := fmt.Fprintf(f.writer, "%s %-*s  %s\n", marker, width, t.Name, t.Description); err != nil {
			return err
		}
	}
	return nil
}
