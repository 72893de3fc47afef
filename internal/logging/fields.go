package logging

import "log/slog"

// Common field names for consistent logging across the service.
const (
	FieldService   = "service"
	FieldOwnerID   = "owner_id"
	FieldStudentID = "student_id"
	FieldKind      = "kind"
	FieldMonth     = "month"
	FieldTarget    = "target"
	FieldEndpoint  = "endpoint"
	FieldStatus    = "status"
	FieldCount     = "count"
	FieldError     = "error"
)

// Service returns a slog attribute for the service name.
func Service(name string) slog.Attr {
	return slog.String(FieldService, name)
}

// OwnerID returns a slog attribute for the event owner ID.
func OwnerID(id string) slog.Attr {
	return slog.String(FieldOwnerID, id)
}

// StudentID returns a slog attribute for the student ID.
func StudentID(id string) slog.Attr {
	return slog.String(FieldStudentID, id)
}

// Kind returns a slog attribute for the event kind.
func Kind(kind string) slog.Attr {
	return slog.String(FieldKind, kind)
}

// Month returns a slog attribute for a YYYY-MM month label.
func Month(label string) slog.Attr {
	return slog.String(FieldMonth, label)
}

// Target returns a slog attribute for the downstream service name.
func Target(name string) slog.Attr {
	return slog.String(FieldTarget, name)
}

// Endpoint returns a slog attribute for the downstream endpoint path.
func Endpoint(path string) slog.Attr {
	return slog.String(FieldEndpoint, path)
}

// Status returns a slog attribute for the HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int(FieldStatus, code)
}

// Count returns a slog attribute for a derived count.
func Count(n int) slog.Attr {
	return slog.Int(FieldCount, n)
}

// Error returns a slog attribute for an error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}
