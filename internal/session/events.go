package session

import "github.com/zjrosen/signup/internal/registration"

// Event is an input to Reduce.
type Event interface {
	eventName() string
}

// Change sets a field value.
type Change struct {
	Field registration.Field
	Value string
}

// Blur validates a single field after focus leaves it.
type Blur struct {
	Field registration.Field
}

// Submit runs the final validation gate.
type Submit struct{}

// TogglePassword flips password visibility.
type TogglePassword struct{}

// Back leaves the confirmation view for a blank form. SessionID names the
// fresh session; Controller fills it in.
type Back struct {
	SessionID string
}

func (Change) eventName() string         { return "change" }
func (Blur) eventName() string           { return "blur" }
func (Submit) eventName() string         { return "submit" }
func (TogglePassword) eventName() string { return "toggle_password" }
func (Back) eventName() string           { return "back" }
