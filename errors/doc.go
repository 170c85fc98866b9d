// Package errors provides structured error types for the elfkit library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the section index involved, a detail
// message, the offending value, and a cause chain. Because every input byte
// comes from an untrusted file, all malformed-input conditions are reported
// through this one type; no accessor is allowed to panic.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseData, errors.KindBufferTooShort).
//		Section(5).
//		Detail("note payload is %d bytes, header needs 12", n).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.IndexOutOfRange(errors.PhaseSection, index)
//	err := errors.BufferTooShort(errors.PhaseData, 5, need, have)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
