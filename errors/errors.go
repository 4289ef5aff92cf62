package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode  Phase = "encode"  // adapter to encoded bytes
	PhaseDecode  Phase = "decode"  // encoded bytes to adapter
	PhaseConvert Phase = "convert" // foreign value to adapter value
)

// Kind categorizes the error
type Kind string

const (
	// KindSchemaMismatch reports a field-set disagreement between the wire
	// data and the declared schema, including header/payload inconsistency.
	KindSchemaMismatch Kind = "schema_mismatch"
	// KindUnknownVariant reports an enum tag outside the declared set.
	KindUnknownVariant Kind = "unknown_variant"
	// KindMalformedElement reports a structurally invalid element.
	KindMalformedElement Kind = "malformed_element"
	// KindRaggedGrid reports a 2D payload whose rows differ in length.
	KindRaggedGrid Kind = "ragged_grid"
	// KindInvalidData covers other invalid input.
	KindInvalidData Kind = "invalid_data"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Sensor string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Sensor != "" {
		b.WriteString(": sensor ")
		b.WriteString(e.Sensor)
	}

	if e.Detail != "" {
		if e.Sensor != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Sensor sets the sensor kind name
func (b *Builder) Sensor(s string) *Builder {
	b.err.Sensor = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// SchemaMismatch creates a schema mismatch error
func SchemaMismatch(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindSchemaMismatch,
		Path:   path,
		Detail: detail,
	}
}

// UnknownVariant creates an unknown enum tag error
func UnknownVariant(phase Phase, path []string, tag uint64, maxValid uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownVariant,
		Path:   path,
		Detail: fmt.Sprintf("tag %d out of range (max %d)", tag, maxValid),
		Value:  tag,
	}
}

// MalformedElement creates a structurally-invalid-element error
func MalformedElement(phase Phase, path []string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindMalformedElement,
		Path:  path,
		Cause: cause,
	}
}

// RaggedGrid creates a ragged 2D payload error
func RaggedGrid(phase Phase, path []string, row, got, want int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRaggedGrid,
		Path:   append(append([]string(nil), path...), fmt.Sprintf("[%d]", row)),
		Detail: fmt.Sprintf("row length %d, want %d", got, want),
		Value:  got,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
