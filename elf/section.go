package elf

import (
	stderrors "errors"
	"unsafe"

	"github.com/elfkit/elfkit/elf/internal/overlay"
	"github.com/elfkit/elfkit/errors"
)

// wordSize is the width family: every record whose layout differs only in
// the width of its address and size fields is written once against this
// constraint and instantiated for both classes.
type wordSize interface {
	uint32 | uint64
}

// shdr is the on-disk section header record. The field order and widths
// are the wire contract; the struct is only ever produced as an overlay
// of file bytes.
type shdr[P wordSize] struct {
	name      uint32
	shType    uint32
	flags     P
	addr      P
	off       P
	size      P
	link      uint32
	info      uint32
	addralign P
	entsize   P
}

// SectionHeader is a width-tagged handle onto one section table entry.
// All accessors widen the underlying 32- or 64-bit fields to a common
// representation. The handle borrows the file buffer; it stays valid as
// long as the buffer does.
type SectionHeader interface {
	// Class reports which on-disk layout the handle overlays.
	Class() Class

	// NameIndex returns the byte offset of the section name within the
	// file's section-name string table.
	NameIndex() uint32

	// TypeCode returns the raw 32-bit section type code.
	TypeCode() uint32

	// Type classifies the raw type code.
	Type() (SectionType, error)

	Flags() uint64
	Addr() uint64
	Offset() uint64
	Size() uint64
	Link() uint32
	Info() uint32
	AddrAlign() uint64
	EntSize() uint64

	// Name looks the section name up in the file's section-name string
	// table. O(length of the name). Null sections have no name.
	Name(f *File) (string, error)

	// RawData returns the section's byte window [offset, offset+size) of
	// the file buffer. Null sections have no data; windows that do not
	// fit the buffer are rejected rather than truncated.
	RawData(f *File) ([]byte, error)

	// Data materializes the section payload as the typed shape its
	// classified type prescribes.
	Data(f *File) (SectionData, error)
}

func (h *shdr[P]) Class() Class {
	if unsafe.Sizeof(P(0)) == 4 {
		return Class32
	}
	return Class64
}

func (h *shdr[P]) NameIndex() uint32 { return h.name }
func (h *shdr[P]) TypeCode() uint32  { return h.shType }
func (h *shdr[P]) Flags() uint64     { return uint64(h.flags) }
func (h *shdr[P]) Addr() uint64      { return uint64(h.addr) }
func (h *shdr[P]) Offset() uint64    { return uint64(h.off) }
func (h *shdr[P]) Size() uint64      { return uint64(h.size) }
func (h *shdr[P]) Link() uint32      { return h.link }
func (h *shdr[P]) Info() uint32      { return h.info }
func (h *shdr[P]) AddrAlign() uint64 { return uint64(h.addralign) }
func (h *shdr[P]) EntSize() uint64   { return uint64(h.entsize) }

func (h *shdr[P]) Type() (SectionType, error) {
	return ClassifyType(h.shType)
}

func (h *shdr[P]) Name(f *File) (string, error) {
	st, err := h.Type()
	if err != nil {
		return "", err
	}
	if st.Kind == KindNull {
		return "", errors.NullSection(errors.PhaseSection, "name")
	}
	return f.GetString(h.name)
}

func (h *shdr[P]) RawData(f *File) ([]byte, error) {
	st, err := h.Type()
	if err != nil {
		return nil, err
	}
	if st.Kind == KindNull {
		return nil, errors.NullSection(errors.PhaseSection, "read data of")
	}
	off := uint64(h.off)
	end := off + uint64(h.size)
	if end < off || end > uint64(len(f.Data)) {
		return nil, errors.BufferTooShort(errors.PhaseSection, errors.NoSection, end, uint64(len(f.Data)))
	}
	return f.Data[off:end], nil
}

func (h *shdr[P]) Data(f *File) (SectionData, error) {
	return materialize(h, f)
}

// overlayErr maps the overlay reader's sentinel errors onto the module's
// error taxonomy, keeping the low-level detail as the cause.
func overlayErr(phase errors.Phase, section int, err error) *errors.Error {
	kind := errors.KindBufferTooShort
	if stderrors.Is(err, overlay.ErrMisaligned) {
		kind = errors.KindMisaligned
	}
	return errors.New(phase, kind).Section(section).Cause(err).Build()
}
