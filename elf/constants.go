package elf

// Class identifies the file word width, taken from the fifth byte of the
// ELF identification. It selects between the 32- and 64-bit on-disk
// layouts of every width-polymorphic record in this package.
type Class uint8

const (
	ClassNone Class = 0 // invalid class
	Class32   Class = 1 // 32-bit address and size fields
	Class64   Class = 2 // 64-bit address and size fields
)

// Distinguished section indices. Indices at IndexLoReserve and above never
// address a real section table entry; they are escape hatches encoded in
// 16-bit index fields.
const (
	IndexUndef     uint16 = 0      // undefined section reference
	IndexLoReserve uint16 = 0xff00 // start of the reserved index range
	IndexLoProc    uint16 = 0xff00 // start of processor-specific indices
	IndexHiProc    uint16 = 0xff1f // end of processor-specific indices
	IndexLoOS      uint16 = 0xff20 // start of OS-specific indices
	IndexHiOS      uint16 = 0xff3f // end of OS-specific indices
	IndexAbs       uint16 = 0xfff1 // symbol has an absolute value
	IndexCommon    uint16 = 0xfff2 // symbol is a common block
	IndexXIndex    uint16 = 0xffff // real index is stored elsewhere
	IndexHiReserve uint16 = 0xffff // end of the reserved index range
)

// Section type code ranges. Codes inside these ranges are valid but carry
// OS-, processor- or application-defined meaning.
const (
	TypeLoOS   uint32 = 0x60000000 // start of OS-specific type codes
	TypeHiOS   uint32 = 0x6fffffff // end of OS-specific type codes
	TypeLoProc uint32 = 0x70000000 // start of processor-specific type codes
	TypeHiProc uint32 = 0x7fffffff // end of processor-specific type codes
	TypeLoUser uint32 = 0x80000000 // start of application-specific type codes
	TypeHiUser uint32 = 0xffffffff // end of application-specific type codes
)

// Section flag bits, as found in the (widened) flags field.
const (
	FlagWrite           uint64 = 0x1        // writable during execution
	FlagAlloc           uint64 = 0x2        // occupies memory during execution
	FlagExecInstr       uint64 = 0x4        // contains executable instructions
	FlagMerge           uint64 = 0x10       // may be merged to eliminate duplicates
	FlagStrings         uint64 = 0x20       // contains NUL-terminated strings
	FlagInfoLink        uint64 = 0x40       // info field holds a section index
	FlagLinkOrder       uint64 = 0x80       // special ordering requirement
	FlagOSNonconforming uint64 = 0x100      // OS-specific processing required
	FlagGroup           uint64 = 0x200      // member of a section group
	FlagTLS             uint64 = 0x400      // holds thread-local storage
	FlagCompressed      uint64 = 0x800      // section data is compressed
	FlagMaskOS          uint64 = 0x0ff00000 // OS-specific flag bits
	FlagMaskProc        uint64 = 0xf0000000 // processor-specific flag bits
)

// Section group flags, the first word of a Group section's payload.
const (
	GroupComdat   uint32 = 0x1        // COMDAT group: duplicates are discarded
	GroupMaskOS   uint32 = 0x0ff00000 // OS-specific group flags
	GroupMaskProc uint32 = 0xf0000000 // processor-specific group flags
)

// Compression type codes and ranges for compressed-section headers.
const (
	CompressZlib   uint32 = 1          // zlib/deflate compressed data
	CompressLoOS   uint32 = 0x60000000 // start of OS-specific compression codes
	CompressHiOS   uint32 = 0x6fffffff // end of OS-specific compression codes
	CompressLoProc uint32 = 0x70000000 // start of processor-specific compression codes
	CompressHiProc uint32 = 0x7fffffff // end of processor-specific compression codes
)
