package elf

import (
	"go.uber.org/zap"

	"github.com/elfkit/elfkit/elf/internal/overlay"
	"github.com/elfkit/elfkit/errors"
)

// SectionData is the typed payload of a section. Exactly one variant is
// produced per section kind; every variant overlays the file buffer
// without copying.
//
// The variants are:
//
//	Empty             Null, NoBits
//	Undefined         ProgBits, ShLib and the three open type ranges
//	StrArray          StrTab
//	Group             Group
//	FnArray32/64      InitArray, FiniArray, PreInitArray
//	SymbolTable32/64  SymTab
//	DynSymbolTable32/64  DynSym
//	SymTabShIndex     SymTabShIndex
//	Note64            Note (64-bit class only)
//	RelaTable32/64    Rela
//	RelTable32/64     Rel
//	DynamicTable32/64 Dynamic
//	*HashTable        Hash
type SectionData interface {
	isSectionData()
}

// Empty is the payload of sections that carry no bytes in the file. A
// NoBits section may declare a nonzero size, but the window refers to
// memory at runtime, not to file content.
type Empty struct{}

// Undefined is an opaque payload: the engine exposes the raw bytes and
// attaches no structure to them.
type Undefined []byte

// StrArray is a string table payload, consumed through Strings.
type StrArray []byte

// Group is a section group: a flags word followed by the member section
// indices. Both parts overlay the same payload slice.
type Group struct {
	Flags   uint32
	Indices []uint32
}

// FnArray32 and FnArray64 hold function-pointer-sized words of the
// init/fini/preinit array sections.
type (
	FnArray32 []uint32
	FnArray64 []uint64
)

// Symbol and dynamic-symbol table payloads, width per file class.
type (
	SymbolTable32    []Sym32
	SymbolTable64    []Sym64
	DynSymbolTable32 []DynSym32
	DynSymbolTable64 []DynSym64
)

// SymTabShIndex holds the extended section indices that accompany a
// symbol table whose 16-bit index fields overflowed.
type SymTabShIndex []uint32

// Note64 is a 64-bit class note section: the fixed header followed by
// the name and descriptor region it describes.
type Note64 struct {
	Header  *NoteHeader
	Payload []byte
}

// Relocation table payloads, width per file class.
type (
	RelaTable32 []Rela32
	RelaTable64 []Rela64
	RelTable32  []Rel32
	RelTable64  []Rel64
)

// Dynamic-linking entry payloads, width per file class.
type (
	DynamicTable32 []Dyn32
	DynamicTable64 []Dyn64
)

func (Empty) isSectionData()            {}
func (Undefined) isSectionData()        {}
func (StrArray) isSectionData()         {}
func (Group) isSectionData()            {}
func (FnArray32) isSectionData()        {}
func (FnArray64) isSectionData()        {}
func (SymbolTable32) isSectionData()    {}
func (SymbolTable64) isSectionData()    {}
func (DynSymbolTable32) isSectionData() {}
func (DynSymbolTable64) isSectionData() {}
func (SymTabShIndex) isSectionData()    {}
func (Note64) isSectionData()           {}
func (RelaTable32) isSectionData()      {}
func (RelaTable64) isSectionData()      {}
func (RelTable32) isSectionData()       {}
func (RelTable64) isSectionData()       {}
func (DynamicTable32) isSectionData()   {}
func (DynamicTable64) isSectionData()   {}
func (*HashTable) isSectionData()       {}

const noteHeaderSize = 12

// materialize dispatches on the classified section type and reinterprets
// the section's byte window as the one payload shape that type
// prescribes.
func materialize(h SectionHeader, f *File) (SectionData, error) {
	cls := f.Header.Class
	if cls != Class32 && cls != Class64 {
		return nil, errors.InvalidData(errors.PhaseData, errors.NoSection, "unknown ELF class %d", cls)
	}

	st, err := h.Type()
	if err != nil {
		return nil, err
	}

	switch st.Kind {
	case KindNull, KindNoBits:
		return Empty{}, nil

	case KindProgBits, KindShLib, KindOsSpecific, KindProcessorSpecific, KindUser:
		raw, err := h.RawData(f)
		if err != nil {
			return nil, err
		}
		return Undefined(raw), nil

	case KindStrTab:
		raw, err := h.RawData(f)
		if err != nil {
			return nil, err
		}
		return StrArray(raw), nil

	case KindSymTab:
		if cls == Class32 {
			a, err := table[Sym32](h, f)
			if err != nil {
				return nil, err
			}
			return SymbolTable32(a), nil
		}
		a, err := table[Sym64](h, f)
		if err != nil {
			return nil, err
		}
		return SymbolTable64(a), nil

	case KindDynSym:
		if cls == Class32 {
			a, err := table[DynSym32](h, f)
			if err != nil {
				return nil, err
			}
			return DynSymbolTable32(a), nil
		}
		a, err := table[DynSym64](h, f)
		if err != nil {
			return nil, err
		}
		return DynSymbolTable64(a), nil

	case KindInitArray, KindFiniArray, KindPreInitArray:
		if cls == Class32 {
			a, err := table[uint32](h, f)
			if err != nil {
				return nil, err
			}
			return FnArray32(a), nil
		}
		a, err := table[uint64](h, f)
		if err != nil {
			return nil, err
		}
		return FnArray64(a), nil

	case KindRela:
		if cls == Class32 {
			a, err := table[Rela32](h, f)
			if err != nil {
				return nil, err
			}
			return RelaTable32(a), nil
		}
		a, err := table[Rela64](h, f)
		if err != nil {
			return nil, err
		}
		return RelaTable64(a), nil

	case KindRel:
		if cls == Class32 {
			a, err := table[Rel32](h, f)
			if err != nil {
				return nil, err
			}
			return RelTable32(a), nil
		}
		a, err := table[Rel64](h, f)
		if err != nil {
			return nil, err
		}
		return RelTable64(a), nil

	case KindDynamic:
		if cls == Class32 {
			a, err := table[Dyn32](h, f)
			if err != nil {
				return nil, err
			}
			return DynamicTable32(a), nil
		}
		a, err := table[Dyn64](h, f)
		if err != nil {
			return nil, err
		}
		return DynamicTable64(a), nil

	case KindGroup:
		raw, err := h.RawData(f)
		if err != nil {
			return nil, err
		}
		if len(raw) < 4 {
			return nil, errors.BufferTooShort(errors.PhaseData, errors.NoSection, 4, uint64(len(raw)))
		}
		flags, err := overlay.View[uint32](raw[:4])
		if err != nil {
			return nil, overlayErr(errors.PhaseData, errors.NoSection, err)
		}
		indices, err := overlay.Array[uint32](raw[4:])
		if err != nil {
			return nil, overlayErr(errors.PhaseData, errors.NoSection, err)
		}
		return Group{Flags: *flags, Indices: indices}, nil

	case KindSymTabShIndex:
		a, err := table[uint32](h, f)
		if err != nil {
			return nil, err
		}
		return SymTabShIndex(a), nil

	case KindNote:
		if cls == Class32 {
			// The 4-byte-word note layout is not confirmed; refuse
			// rather than misparse.
			Logger().Warn("32-bit note section encountered", zap.Uint64("offset", h.Offset()))
			return nil, errors.Unsupported(errors.PhaseData, "32-bit note sections are not implemented")
		}
		raw, err := h.RawData(f)
		if err != nil {
			return nil, err
		}
		if len(raw) < noteHeaderSize {
			return nil, errors.BufferTooShort(errors.PhaseData, errors.NoSection, noteHeaderSize, uint64(len(raw)))
		}
		hdr, err := overlay.View[NoteHeader](raw[:noteHeaderSize])
		if err != nil {
			return nil, overlayErr(errors.PhaseData, errors.NoSection, err)
		}
		return Note64{Header: hdr, Payload: raw[noteHeaderSize:]}, nil

	case KindHash:
		raw, err := h.RawData(f)
		if err != nil {
			return nil, err
		}
		if len(raw) < hashHeaderSize {
			return nil, errors.BufferTooShort(errors.PhaseData, errors.NoSection, hashHeaderSize, uint64(len(raw)))
		}
		ht, err := overlay.View[HashTable](raw[:hashHeaderSize])
		if err != nil {
			return nil, overlayErr(errors.PhaseData, errors.NoSection, err)
		}
		return ht, nil
	}

	return nil, errors.InvalidTypeCode(errors.PhaseData, st.Code)
}

// table overlays a section's byte window as an array of T, requiring the
// window length to be an exact multiple of the record size.
func table[T any](h SectionHeader, f *File) ([]T, error) {
	raw, err := h.RawData(f)
	if err != nil {
		return nil, err
	}
	a, err := overlay.Array[T](raw)
	if err != nil {
		return nil, overlayErr(errors.PhaseData, errors.NoSection, err)
	}
	return a, nil
}
