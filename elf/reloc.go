package elf

import "unsafe"

// Rel is a relocation record without an addend; Rela carries one. The
// info field packs a symbol table index and a relocation type code, with
// a bit split that differs by width: 32-bit files use an 8-bit type in
// the low byte, 64-bit files a 32-bit type in the low word.
type Rel[P wordSize] struct {
	off  P
	info P
}

type Rela[P wordSize] struct {
	off    P
	info   P
	addend P
}

type (
	Rel32  = Rel[uint32]
	Rel64  = Rel[uint64]
	Rela32 = Rela[uint32]
	Rela64 = Rela[uint64]
)

// Offset returns the location the relocation applies to.
func (r Rel[P]) Offset() uint64 { return uint64(r.off) }

// SymbolTableIndex extracts the symbol table index from the info field.
func (r Rel[P]) SymbolTableIndex() uint32 {
	return relSymbolIndex(uint64(r.info), unsafe.Sizeof(r.info))
}

// Type extracts the relocation type code from the info field.
func (r Rel[P]) Type() uint32 {
	return relType(uint64(r.info), unsafe.Sizeof(r.info))
}

// Offset returns the location the relocation applies to.
func (r Rela[P]) Offset() uint64 { return uint64(r.off) }

// Addend returns the constant added to the symbol's resolved value.
func (r Rela[P]) Addend() uint64 { return uint64(r.addend) }

// SymbolTableIndex extracts the symbol table index from the info field.
func (r Rela[P]) SymbolTableIndex() uint32 {
	return relSymbolIndex(uint64(r.info), unsafe.Sizeof(r.info))
}

// Type extracts the relocation type code from the info field.
func (r Rela[P]) Type() uint32 {
	return relType(uint64(r.info), unsafe.Sizeof(r.info))
}

func relSymbolIndex(info uint64, width uintptr) uint32 {
	if width == 4 {
		return uint32(info >> 8)
	}
	return uint32(info >> 32)
}

func relType(info uint64, width uintptr) uint32 {
	if width == 4 {
		return uint32(info & 0xff)
	}
	return uint32(info & 0xffffffff)
}
