package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in decoding the error occurred
type Phase string

const (
	PhaseHeader  Phase = "header"  // ELF file header parsing
	PhaseSection Phase = "section" // section header decode and field access
	PhaseData    Phase = "data"    // section payload materialization
	PhaseNote    Phase = "note"    // note record field extraction
	PhaseStrings Phase = "strings" // string table scanning
)

// Kind categorizes the error
type Kind string

const (
	KindIndexOutOfRange Kind = "index_out_of_range" // section index in the reserved range
	KindBufferTooShort  Kind = "buffer_too_short"   // byte window exceeds the file buffer
	KindMisaligned      Kind = "misaligned"         // overlay base not aligned for the record
	KindInvalidTypeCode Kind = "invalid_type_code"  // type code outside all defined sets
	KindNullSection     Kind = "null_section"       // name/data access on a Null section
	KindNotStringTable  Kind = "not_string_table"   // string scan on a non-string payload
	KindUnsupported     Kind = "unsupported"        // valid input the decoder cannot handle
	KindInvalidData     Kind = "invalid_data"       // structurally malformed content
	KindNotFound        Kind = "not_found"          // lookup matched no section
)

// NoSection marks errors that are not tied to a particular section index.
const NoSection = -1

// Error is the structured error type used throughout elfkit
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Detail  string
	Section int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Section != NoSection {
		fmt.Fprintf(&b, " at section %d", e.Section)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error's phase and kind.
// Section index, detail and cause are deliberately ignored so that
// callers can match against bare classification errors.
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
			Phase:   phase,
			Kind:    kind,
			Section: NoSection,
		},
	}
}

// Section sets the section index the error refers to
func (b *Builder) Section(index int) *Builder {
	b.err.Section = index
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

// IndexOutOfRange reports a section index in the reserved range
func IndexOutOfRange(phase Phase, index uint32) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindIndexOutOfRange,
		Section: int(index),
		Detail:  fmt.Sprintf("index 0x%x is in the reserved range", index),
		Value:   index,
	}
}

// BufferTooShort reports a byte window that does not fit the buffer
func BufferTooShort(phase Phase, section int, need, have uint64) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindBufferTooShort,
		Section: section,
		Detail:  fmt.Sprintf("need %d bytes, have %d", need, have),
	}
}

// InvalidTypeCode reports a code outside every defined set
func InvalidTypeCode(phase Phase, code uint32) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindInvalidTypeCode,
		Section: NoSection,
		Detail:  fmt.Sprintf("code 0x%x is not defined", code),
		Value:   code,
	}
}

// NullSection reports an operation that is meaningless on a Null section
func NullSection(phase Phase, op string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindNullSection,
		Section: NoSection,
		Detail:  fmt.Sprintf("cannot %s a null section", op),
	}
}

// NotStringTable reports a string scan over a non-string payload
func NotStringTable(phase Phase) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindNotStringTable,
		Section: NoSection,
		Detail:  "payload is not a string table",
	}
}

// Unsupported reports valid input the decoder does not handle
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindUnsupported,
		Section: NoSection,
		Detail:  what,
	}
}

// InvalidData reports structurally malformed content
func InvalidData(phase Phase, section int, detail string, args ...any) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindInvalidData,
		Section: section,
		Detail:  fmt.Sprintf(detail, args...),
	}
}
