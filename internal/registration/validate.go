package registration

// Errors maps each field to its current validation message. An empty
// message means the field is valid.
type Errors map[Field]string

// HasErrors reports whether any entry carries a message.
func (e Errors) HasErrors() bool {
	for _, msg := range e {
		if msg != "" {
			return true
		}
	}
	return false
}

// Count returns the number of fields with a message.
func (e Errors) Count() int {
	n := 0
	for _, msg := range e {
		if msg != "" {
			n++
		}
	}
	return n
}

// Failing returns the fields that carry a message, in display order.
func (e Errors) Failing() []Field {
	var out []Field
	for _, f := range fieldOrder {
		if e[f] != "" {
			out = append(out, f)
		}
	}
	return out
}

// Clone returns an independent copy of e.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// ValidateForm runs ValidateField over every field and returns the complete
// error map. The form is valid when no entry carries a message.
func ValidateForm(v Values) (Errors, bool) {
	errs := make(Errors, len(fieldOrder))
	valid := true
	for _, f := range fieldOrder {
		msg := ValidateField(f, v[f])
		errs[f] = msg
		if msg != "" {
			valid = false
		}
	}
	return errs, valid
}
