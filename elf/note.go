package elf

import (
	"bytes"

	"github.com/elfkit/elfkit/errors"
)

// NoteHeader is the fixed 12-byte header of a note record: three 32-bit
// lengths and type fields, followed in the payload by a NUL-terminated
// name padded to 4-byte alignment and then the descriptor bytes.
type NoteHeader struct {
	NameSize uint32
	DescSize uint32
	Type     uint32
}

// Name extracts the note's name from the payload that follows the
// header. The name must be NUL-terminated and its length, excluding the
// terminator, must equal NameSize-1: the stored size counts the
// terminator.
func (n *NoteHeader) Name(payload []byte) (string, error) {
	end := bytes.IndexByte(payload, 0)
	if end < 0 {
		return "", errors.InvalidData(errors.PhaseNote, errors.NoSection, "note name is not NUL-terminated")
	}
	if n.NameSize == 0 || uint64(end) != uint64(n.NameSize)-1 {
		return "", errors.InvalidData(errors.PhaseNote, errors.NoSection,
			"note name is %d bytes, header declares %d", end, n.NameSize)
	}
	return string(payload[:end]), nil
}

// Desc extracts the note's descriptor bytes. The descriptor begins at
// the name size rounded up to 4-byte alignment and runs for DescSize
// bytes; a descriptor window that does not fit the payload is rejected.
func (n *NoteHeader) Desc(payload []byte) ([]byte, error) {
	start := (uint64(n.NameSize) + 3) &^ 3
	end := start + uint64(n.DescSize)
	if end < start || end > uint64(len(payload)) {
		return nil, errors.BufferTooShort(errors.PhaseNote, errors.NoSection, end, uint64(len(payload)))
	}
	return payload[start:end], nil
}
