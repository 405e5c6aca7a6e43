package logkey

// Keys used across the service so logs stay queryable by field.
const (
	TraceID = "trace_id"
	Error   = "error"
)
