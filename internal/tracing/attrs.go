package tracing

// Span and attribute names recorded for form submissions.
const (
	SpanFormSubmit = "form.submit"

	AttrSessionID  = "form.session_id"
	AttrValid      = "form.valid"
	AttrErrorCount = "form.error_count"
	AttrField      = "form.field"

	EventFieldError = "form.field_error"
)
