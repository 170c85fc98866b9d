package elf

import (
	"bytes"

	"github.com/elfkit/elfkit/errors"
)

// StringIter lazily yields the NUL-delimited strings of a string table
// payload, in table order, one scan per call to Next. A string table
// opens with the NUL of the empty string; each step skips the previous
// terminator and scans to the next one. The iterator is single-pass and
// carries no rewind state: to scan again, construct a new one with
// Strings.
type StringIter struct {
	rest []byte
}

// Strings returns a scanner over a string table payload. Requesting a
// scan of any other payload shape fails with not_string_table.
func Strings(d SectionData) (*StringIter, error) {
	sa, ok := d.(StrArray)
	if !ok {
		return nil, errors.NotStringTable(errors.PhaseStrings)
	}
	return &StringIter{rest: sa}, nil
}

// Next yields the next string, or false when the table is exhausted.
// A table whose last string lacks its NUL terminator is tolerated: the
// tail is yielded as-is and the scan ends, treating the end of the
// payload as an implicit terminator.
func (it *StringIter) Next() (string, bool) {
	if len(it.rest) <= 1 {
		return "", false
	}
	it.rest = it.rest[1:]
	end := bytes.IndexByte(it.rest, 0)
	if end < 0 {
		// Unterminated tail: yield it and finish.
		s := string(it.rest)
		it.rest = nil
		return s, true
	}
	s := string(it.rest[:end])
	it.rest = it.rest[end:]
	return s, true
}
