package elf

// Sym32 and Sym64 are the on-disk symbol table entries. The two widths
// do not just widen fields, they reorder them, so they are separate
// records rather than a width-family instantiation. Interpreting the
// Info/Other bit fields is the symbol table collaborator's concern.
type Sym32 struct {
	Name  uint32 // string table offset of the symbol name
	Value uint32
	Size  uint32
	Info  uint8
	Other uint8
	Shndx uint16 // section index, possibly a reserved escape value
}

type Sym64 struct {
	Name  uint32 // string table offset of the symbol name
	Info  uint8
	Other uint8
	Shndx uint16 // section index, possibly a reserved escape value
	Value uint64
	Size  uint64
}

// DynSym32 and DynSym64 share the symbol entry layout but come from a
// DynSym section; the distinct types keep the two tables from mixing.
type (
	DynSym32 Sym32
	DynSym64 Sym64
)
