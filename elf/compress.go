package elf

import (
	"github.com/elfkit/elfkit/elf/internal/overlay"
	"github.com/elfkit/elfkit/errors"
)

// CompressionKind classifies compression header type codes.
type CompressionKind int

const (
	CompressionZlib CompressionKind = iota
	CompressionOsSpecific
	CompressionProcessorSpecific
)

// CompressionType is a classified compression type code.
type CompressionType struct {
	Kind CompressionKind
	Code uint32
}

// ClassifyCompressionType maps a raw compression type code onto a
// CompressionType; codes outside the defined value and ranges are
// invalid.
func ClassifyCompressionType(code uint32) (CompressionType, error) {
	switch {
	case code == CompressZlib:
		return CompressionType{CompressionZlib, code}, nil
	case code >= CompressLoOS && code <= CompressHiOS:
		return CompressionType{CompressionOsSpecific, code}, nil
	case code >= CompressLoProc && code <= CompressHiProc:
		return CompressionType{CompressionProcessorSpecific, code}, nil
	}
	return CompressionType{}, errors.InvalidTypeCode(errors.PhaseSection, code)
}

// CompressionHeader is a width-tagged handle onto the header that leads
// a compressed section's data.
type CompressionHeader interface {
	TypeCode() uint32
	Type() (CompressionType, error)

	// Size is the uncompressed data size.
	Size() uint64

	// AddrAlign is the required alignment of the uncompressed data.
	AddrAlign() uint64
}

// compressionHeader32 and compressionHeader64 are the on-disk layouts;
// the 64-bit form carries a reserved word after the type code.
type compressionHeader32 struct {
	chType    uint32
	size      uint32
	addralign uint32
}

type compressionHeader64 struct {
	chType    uint32
	_         uint32
	size      uint64
	addralign uint64
}

func (h *compressionHeader32) TypeCode() uint32  { return h.chType }
func (h *compressionHeader32) Size() uint64      { return uint64(h.size) }
func (h *compressionHeader32) AddrAlign() uint64 { return uint64(h.addralign) }

func (h *compressionHeader32) Type() (CompressionType, error) {
	return ClassifyCompressionType(h.chType)
}

func (h *compressionHeader64) TypeCode() uint32  { return h.chType }
func (h *compressionHeader64) Size() uint64      { return h.size }
func (h *compressionHeader64) AddrAlign() uint64 { return h.addralign }

func (h *compressionHeader64) Type() (CompressionType, error) {
	return ClassifyCompressionType(h.chType)
}

const (
	compressionHeader32Size = 12
	compressionHeader64Size = 24
)

// CompressionHeader overlays the compression header that leads the data
// of a section carrying the COMPRESSED flag.
func (f *File) CompressionHeader(h SectionHeader) (CompressionHeader, error) {
	if h.Flags()&FlagCompressed == 0 {
		return nil, errors.InvalidData(errors.PhaseSection, errors.NoSection, "section is not compressed")
	}
	raw, err := h.RawData(f)
	if err != nil {
		return nil, err
	}

	switch f.Header.Class {
	case Class32:
		if len(raw) < compressionHeader32Size {
			return nil, errors.BufferTooShort(errors.PhaseSection, errors.NoSection, compressionHeader32Size, uint64(len(raw)))
		}
		ch, err := overlay.View[compressionHeader32](raw[:compressionHeader32Size])
		if err != nil {
			return nil, overlayErr(errors.PhaseSection, errors.NoSection, err)
		}
		return ch, nil
	case Class64:
		if len(raw) < compressionHeader64Size {
			return nil, errors.BufferTooShort(errors.PhaseSection, errors.NoSection, compressionHeader64Size, uint64(len(raw)))
		}
		ch, err := overlay.View[compressionHeader64](raw[:compressionHeader64Size])
		if err != nil {
			return nil, overlayErr(errors.PhaseSection, errors.NoSection, err)
		}
		return ch, nil
	default:
		return nil, errors.InvalidData(errors.PhaseHeader, errors.NoSection, "unknown ELF class %d", f.Header.Class)
	}
}
