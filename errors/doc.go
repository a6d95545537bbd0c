// Package errors provides structured error types for the schema decoder.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the offending tag byte,
// the byte offset in the source, the decode path, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindUnsupportedTypeTag).
//		Offset(12).
//		Value(tag).
//		Detail("tag byte 0x%02x", tag).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedTag(errors.KindUnsupportedFieldsTag, off, tag)
//	err := errors.UnexpectedEOF(errors.PhaseRead, off, want, got)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when Phase and Kind agree, so
// callers can classify failures without inspecting the rest of the context.
package errors
