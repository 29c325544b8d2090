package session

import (
	"github.com/zjrosen/signup/internal/registration"
)

// Reduce applies ev to s and returns the next state. It never mutates s.
// Events that do not apply in the current mode, and changes that would put
// a select field outside its options, return s unchanged.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case Change:
		if s.Mode != Editing || !acceptsChange(s, ev) {
			return s
		}
		return applyChange(s, ev)

	case Blur:
		if s.Mode != Editing {
			return s
		}
		if _, err := registration.ParseField(string(ev.Field)); err != nil {
			return s
		}
		next := s
		next.Errors = s.Errors.Clone()
		next.Errors[ev.Field] = registration.ValidateField(ev.Field, s.Values[ev.Field])
		return next

	case Submit:
		if s.Mode != Editing {
			return s
		}
		next := s
		next.Dirty = true
		errs, ok := registration.ValidateForm(s.Values)
		next.Errors = errs
		if ok {
			next.Mode = Submitted
		}
		return next

	case TogglePassword:
		if s.Mode != Editing {
			return s
		}
		next := s
		next.ShowPassword = !s.ShowPassword
		return next

	case Back:
		if s.Mode != Submitted {
			return s
		}
		return New(ev.SessionID, s.opts)
	}
	return s
}

func acceptsChange(s State, ev Change) bool {
	dir := s.opts.Directory
	switch ev.Field {
	case registration.PhoneCountryCode:
		return registration.IsDialCode(ev.Value)
	case registration.Country:
		return ev.Value == "" || dir.HasCountry(ev.Value)
	case registration.City:
		return ev.Value == "" || dir.HasCity(s.Values[registration.Country], ev.Value)
	}
	_, err := registration.ParseField(string(ev.Field))
	return err == nil
}

func applyChange(s State, ev Change) State {
	next := s
	next.Values = s.Values.Clone()
	if ev.Field == registration.Country && s.Values[registration.Country] != ev.Value {
		next.Values[registration.City] = ""
	}
	next.Values[ev.Field] = ev.Value
	next.Dirty = true
	next.Errors, _ = registration.ValidateForm(next.Values)
	return next
}
