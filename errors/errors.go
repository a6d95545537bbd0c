package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRead    Phase = "read"    // pulling bytes from the source
	PhaseDecode  Phase = "decode"  // schema grammar decoding
	PhaseExtract Phase = "extract" // locating a schema inside a WASM module
)

// Kind categorizes the error
type Kind string

const (
	KindUnexpectedEOF        Kind = "unexpected_eof"
	KindUnsupportedTypeTag   Kind = "unsupported_type_tag"
	KindUnsupportedFieldsTag Kind = "unsupported_fields_tag"
	KindUnsupportedOptionTag Kind = "unsupported_option_tag"
	KindMalformedText        Kind = "malformed_text"
	KindSchemaTooDeep        Kind = "schema_too_deep"
	KindInvalidModule        Kind = "invalid_module"
	KindNoSchema             Kind = "no_schema"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
	Offset int
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

	if e.Offset > 0 {
		fmt.Fprintf(&b, " (offset %d)", e.Offset)
	}

	if e.Value != nil {
		fmt.Fprintf(&b, ": value %v", e.Value)
	}

	if e.Detail != "" {
		if e.Value != nil {
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

// Path sets the decode path (contract name, entry point, field)
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value, typically a tag byte
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Offset sets the byte offset in the source where the error occurred
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
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

// UnexpectedEOF creates an end-of-input error for a short read
func UnexpectedEOF(phase Phase, offset, want, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnexpectedEOF,
		Offset: offset,
		Detail: fmt.Sprintf("wanted %d bytes, source ended after %d", want, got),
	}
}

// UnsupportedTag creates an unsupported tag byte error.
// kind selects which tagged union the byte failed to discriminate.
func UnsupportedTag(kind Kind, offset int, tag byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   kind,
		Offset: offset,
		Value:  tag,
		Detail: fmt.Sprintf("tag byte 0x%02x", tag),
	}
}

// MalformedText creates an invalid UTF-8 error
func MalformedText(offset int, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedText,
		Offset: offset,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// TooDeep creates a nesting bound error
func TooDeep(offset, limit int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindSchemaTooDeep,
		Offset: offset,
		Value:  limit,
		Detail: fmt.Sprintf("type nesting exceeds limit of %d", limit),
	}
}

// NoSchema creates an error for a WASM module without a schema section
func NoSchema(names []string) *Error {
	return &Error{
		Phase:  PhaseExtract,
		Kind:   KindNoSchema,
		Detail: fmt.Sprintf("no custom section named any of %v", names),
	}
}

// InvalidModule creates an error for bytes that are not a WASM module
func InvalidModule(cause error) *Error {
	return &Error{
		Phase: PhaseExtract,
		Kind:  KindInvalidModule,
		Cause: cause,
	}
}
