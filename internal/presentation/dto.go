package presentation

import (
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/styles"
)

// ValidationDTO is the validate command's result.
type ValidationDTO struct {
	Valid  bool            `json:"valid"`
	Errors []FieldErrorDTO `json:"errors"` // always present, empty when valid
}

// FieldErrorDTO is one failing field.
type FieldErrorDTO struct {
	Field   string `json:"field"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

// FromValidation converts a form validation result to a DTO, listing the
// failing fields in display order.
func FromValidation(errs registration.Errors, valid bool) ValidationDTO {
	failing := errs.Failing()
	out := ValidationDTO{Valid: valid, Errors: make([]FieldErrorDTO, 0, len(failing))}
	for _, f := range failing {
		out.Errors = append(out.Errors, FieldErrorDTO{
			Field:   string(f),
			Label:   f.Label(),
			Message: errs[f],
		})
	}
	return out
}

// ThemeDTO describes one theme preset.
type ThemeDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// FromPresets lists every preset, marking active as selected. An empty
// active name means the default preset.
func FromPresets(active string) []ThemeDTO {
	if active == "" {
		active = "default"
	}
	names := styles.PresetNames()
	out := make([]ThemeDTO, len(names))
	for i, name := range names {
		out[i] = ThemeDTO{
			Name:        name,
			Description: styles.Presets[name].Description,
			Active:      name == active,
		}
	}
	return out
}
