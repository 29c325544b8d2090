// Package session is the form's state controller. Reduce is a pure reducer
// over registration values; Controller wraps it for the UI with logging and
// tracing.
package session

import (
	"github.com/zjrosen/signup/internal/registration"
)

// Mode is the top-level view the session is in.
type Mode int

const (
	Editing Mode = iota
	Submitted
)

func (m Mode) String() string {
	switch m {
	case Editing:
		return "editing"
	case Submitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Options are the per-session inputs that survive a Back.
type Options struct {
	Directory      registration.Directory
	DialCode       string
	RevealPassword bool
}

// State is one immutable snapshot of the form session.
type State struct {
	ID           string
	Mode         Mode
	Values       registration.Values
	Errors       registration.Errors
	Dirty        bool
	ShowPassword bool

	opts Options
}

// New returns a blank Editing state.
func New(id string, opts Options) State {
	return State{
		ID:           id,
		Mode:         Editing,
		Values:       registration.NewValues(opts.DialCode),
		Errors:       registration.Errors{},
		ShowPassword: opts.RevealPassword,
		opts:         opts,
	}
}

// Directory is the country directory the session validates selects against.
func (s State) Directory() registration.Directory {
	return s.opts.Directory
}

// CanSubmit reports whether the submit button is enabled: the form has been
// touched and no field carries an error.
func CanSubmit(s State) bool {
	return s.Dirty && !s.Errors.HasErrors()
}

// CityOptions lists the cities selectable for the current country.
func (s State) CityOptions() []string {
	return s.opts.Directory.Cities(s.Values[registration.Country])
}
