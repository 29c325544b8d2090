package session

import (
	"context"
	"fmt"
	"maps"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/tracing"
)

// Controller owns the live session state for the UI. It is not safe for
// concurrent use; the Bubble Tea update loop is its only caller.
type Controller struct {
	state  State
	tracer trace.Tracer
	newID  func() string
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithTracer records a form.submit span per submit attempt.
func WithTracer(t trace.Tracer) ControllerOption {
	return func(c *Controller) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithIDGenerator overrides session ID generation.
func WithIDGenerator(fn func() string) ControllerOption {
	return func(c *Controller) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// NewController starts a fresh Editing session.
func NewController(opts Options, options ...ControllerOption) *Controller {
	c := &Controller{
		tracer: noop.NewTracerProvider().Tracer(tracing.ServiceName),
		newID:  uuid.NewString,
	}
	for _, o := range options {
		o(c)
	}
	c.state = New(c.newID(), opts)
	log.Info(log.CatForm, "session started", "session", c.state.ID)
	return c
}

// State returns the current snapshot.
func (c *Controller) State() State {
	return c.state
}

// Dispatch reduces ev into the current state and returns the result.
func (c *Controller) Dispatch(ctx context.Context, ev Event) State {
	if back, ok := ev.(Back); ok && back.SessionID == "" {
		back.SessionID = c.newID()
		ev = back
	}

	if _, ok := ev.(Submit); ok {
		return c.submit(ctx)
	}

	prev := c.state
	c.state = Reduce(prev, ev)
	c.logTransition(prev, ev)
	return c.state
}

func (c *Controller) submit(ctx context.Context) State {
	_, span := c.tracer.Start(ctx, tracing.SpanFormSubmit,
		trace.WithAttributes(attribute.String(tracing.AttrSessionID, c.state.ID)))
	defer span.End()

	prev := c.state
	c.state = Reduce(prev, Submit{})
	c.logTransition(prev, Submit{})

	if prev.Mode != Editing {
		return c.state
	}

	failing := c.state.Errors.Failing()
	valid := c.state.Mode == Submitted
	span.SetAttributes(
		attribute.Bool(tracing.AttrValid, valid),
		attribute.Int(tracing.AttrErrorCount, len(failing)),
	)
	for _, f := range failing {
		span.AddEvent(tracing.EventFieldError, trace.WithAttributes(attribute.String(tracing.AttrField, string(f))))
	}
	if valid {
		span.SetStatus(codes.Ok, "")
	} else {
		span.SetStatus(codes.Error, fmt.Sprintf("%d invalid fields", len(failing)))
	}

	log.Info(log.CatForm, "submit", "session", c.state.ID, "valid", valid, "errors", len(failing))
	return c.state
}

func (c *Controller) logTransition(prev State, ev Event) {
	fields := []any{"session", c.state.ID, "event", ev.eventName()}
	if ch, ok := ev.(Change); ok {
		// Values are never logged; the password lives in the same map.
		fields = append(fields, "field", string(ch.Field), "len", len(ch.Value))
		if ch.Field == registration.Country && prev.Values[registration.City] != c.state.Values[registration.City] {
			fields = append(fields, "city_cleared", true)
		}
	}
	if prev.Mode != c.state.Mode {
		fields = append(fields, "mode", c.state.Mode.String())
	}
	if sameState(prev, c.state) {
		fields = append(fields, "unchanged", true)
	}
	log.Debug(log.CatForm, "event", fields...)
}

func sameState(a, b State) bool {
	return a.ID == b.ID && a.Mode == b.Mode && a.Dirty == b.Dirty &&
		a.ShowPassword == b.ShowPassword && maps.Equal(a.Values, b.Values) && maps.Equal(a.Errors, b.Errors)
}
