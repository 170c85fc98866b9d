package elf

import (
	"bytes"
	stderrors "errors"
	"unsafe"

	"go.uber.org/zap"

	"github.com/elfkit/elfkit/elf/internal/overlay"
	"github.com/elfkit/elfkit/errors"
)

var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

const (
	identSize = 16

	ehdr32Size = unsafe.Sizeof(ehdr32{})
	ehdr64Size = unsafe.Sizeof(ehdr64{})
)

// Header summarizes the fields of the ELF file header that the section
// table engine needs: the file word width, the section table geometry and
// the index of the section-name string table.
type Header struct {
	Class            Class
	SectionOffset    uint64
	SectionEntrySize uint16
	SectionCount     uint32
	StringTableIndex uint32
}

// File is a read-only view over a complete ELF image already resident in
// memory. The engine never copies or mutates Data; every handle derived
// from a File borrows it and stays valid as long as Data does, so any
// number of goroutines may read the same File concurrently.
type File struct {
	Data   []byte
	Header Header
}

// New wraps an image whose header summary was obtained elsewhere.
func New(data []byte, header Header) *File {
	return &File{Data: data, Header: header}
}

// ehdr32 and ehdr64 are the on-disk ELF file headers, used only to fill
// in the Header summary.
type ehdr32 struct {
	ident     [16]byte
	fileType  uint16
	machine   uint16
	version   uint32
	entry     uint32
	phoff     uint32
	shoff     uint32
	flags     uint32
	ehsize    uint16
	phentsize uint16
	phnum     uint16
	shentsize uint16
	shnum     uint16
	shstrndx  uint16
}

type ehdr64 struct {
	ident     [16]byte
	fileType  uint16
	machine   uint16
	version   uint32
	entry     uint64
	phoff     uint64
	shoff     uint64
	flags     uint32
	ehsize    uint16
	phentsize uint16
	phnum     uint16
	shentsize uint16
	shnum     uint16
	shstrndx  uint16
}

// Parse validates the ELF identification of data and builds a File whose
// header summary is read from the image itself. It resolves the extended
// numbering escape hatches: a zero section count and an IndexXIndex
// string table index both redirect to fields of section 0.
func Parse(data []byte) (*File, error) {
	if len(data) < identSize {
		return nil, errors.BufferTooShort(errors.PhaseHeader, errors.NoSection, identSize, uint64(len(data)))
	}
	if !bytes.Equal(data[:4], elfMagic) {
		return nil, errors.InvalidData(errors.PhaseHeader, errors.NoSection, "bad magic % x", data[:4])
	}

	var hdr Header
	switch Class(data[4]) {
	case Class32:
		size := int(ehdr32Size)
		if len(data) < size {
			return nil, errors.BufferTooShort(errors.PhaseHeader, errors.NoSection, uint64(size), uint64(len(data)))
		}
		e, err := overlay.View[ehdr32](data[:size])
		if err != nil {
			return nil, overlayErr(errors.PhaseHeader, errors.NoSection, err)
		}
		hdr = Header{
			Class:            Class32,
			SectionOffset:    uint64(e.shoff),
			SectionEntrySize: e.shentsize,
			SectionCount:     uint32(e.shnum),
			StringTableIndex: uint32(e.shstrndx),
		}
	case Class64:
		size := int(ehdr64Size)
		if len(data) < size {
			return nil, errors.BufferTooShort(errors.PhaseHeader, errors.NoSection, uint64(size), uint64(len(data)))
		}
		e, err := overlay.View[ehdr64](data[:size])
		if err != nil {
			return nil, overlayErr(errors.PhaseHeader, errors.NoSection, err)
		}
		hdr = Header{
			Class:            Class64,
			SectionOffset:    e.shoff,
			SectionEntrySize: e.shentsize,
			SectionCount:     uint32(e.shnum),
			StringTableIndex: uint32(e.shstrndx),
		}
	default:
		return nil, errors.InvalidData(errors.PhaseHeader, errors.NoSection, "unknown ELF class %d", data[4])
	}

	f := New(data, hdr)

	// Extended numbering: the real count and string table index live in
	// section 0 when the 16-bit header fields cannot hold them.
	if f.Header.SectionCount == 0 && f.Header.SectionOffset != 0 {
		s0, err := f.SectionHeader(0)
		if err != nil {
			return nil, err
		}
		f.Header.SectionCount = uint32(s0.Size())
	}
	if f.Header.StringTableIndex == uint32(IndexXIndex) {
		s0, err := f.SectionHeader(0)
		if err != nil {
			return nil, err
		}
		f.Header.StringTableIndex = s0.Link()
	}

	Logger().Debug("parsed ELF header",
		zap.Uint8("class", uint8(f.Header.Class)),
		zap.Uint64("section_table_offset", f.Header.SectionOffset),
		zap.Uint32("section_count", f.Header.SectionCount))

	return f, nil
}

// SectionHeader decodes the section table entry at index into a
// width-tagged handle. Indices in the reserved range never address a
// table entry and are rejected before the buffer is touched.
func (f *File) SectionHeader(index uint16) (SectionHeader, error) {
	if index >= IndexLoReserve {
		return nil, errors.IndexOutOfRange(errors.PhaseSection, uint32(index))
	}

	// index and entSize are 16-bit, so only adding the table offset can
	// wrap; a wrapped window must not pass the bounds check below.
	entSize := uint64(f.Header.SectionEntrySize)
	start := uint64(index)*entSize + f.Header.SectionOffset
	end := start + entSize
	if start < f.Header.SectionOffset || end < start || end > uint64(len(f.Data)) {
		return nil, errors.BufferTooShort(errors.PhaseSection, int(index), end, uint64(len(f.Data)))
	}
	window := f.Data[start:end]

	switch f.Header.Class {
	case Class32:
		h, err := overlay.View[shdr[uint32]](window)
		if err != nil {
			return nil, overlayErr(errors.PhaseSection, int(index), err)
		}
		return h, nil
	case Class64:
		h, err := overlay.View[shdr[uint64]](window)
		if err != nil {
			return nil, overlayErr(errors.PhaseSection, int(index), err)
		}
		return h, nil
	default:
		return nil, errors.InvalidData(errors.PhaseHeader, int(index), "unknown ELF class %d", f.Header.Class)
	}
}

// GetString looks up the NUL-terminated string at offset in the file's
// section-name string table. O(length of the string): the terminator is
// found by scanning, not indexed.
func (f *File) GetString(offset uint32) (string, error) {
	strtabIndex := f.Header.StringTableIndex
	if strtabIndex >= uint32(IndexLoReserve) {
		return "", errors.IndexOutOfRange(errors.PhaseStrings, strtabIndex)
	}
	sh, err := f.SectionHeader(uint16(strtabIndex))
	if err != nil {
		return "", err
	}
	tab, err := sh.RawData(f)
	if err != nil {
		return "", err
	}
	if uint64(offset) >= uint64(len(tab)) {
		return "", errors.BufferTooShort(errors.PhaseStrings, int(strtabIndex), uint64(offset)+1, uint64(len(tab)))
	}
	end := bytes.IndexByte(tab[offset:], 0)
	if end < 0 {
		return "", errors.InvalidData(errors.PhaseStrings, int(strtabIndex), "string at offset %d is not NUL-terminated", offset)
	}
	return string(tab[offset : int(offset)+end]), nil
}

// SectionByName returns the first non-null section whose name equals
// name, or a not-found style error if no section matches.
func (f *File) SectionByName(name string) (SectionHeader, error) {
	it := f.Sections()
	for it.Next() {
		h := it.Section()
		n, err := h.Name(f)
		if err != nil {
			if stderrors.Is(err, &errors.Error{Phase: errors.PhaseSection, Kind: errors.KindNullSection}) {
				continue
			}
			return nil, err
		}
		if n == name {
			return h, nil
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return nil, errors.New(errors.PhaseSection, errors.KindNotFound).
		Detail("no section named %q", name).
		Build()
}
