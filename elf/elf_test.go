package elf_test

import (
	"encoding/binary"
	"testing"

	"github.com/elfkit/elfkit/elf"
)

// testSection describes one synthetic section for buildFile. The builder
// prepends the mandatory null section and appends a .shstrtab holding
// the names, so user sections start at index 1.
type testSection struct {
	name    string
	typ     uint32
	flags   uint64
	data    []byte
	size    uint64 // declared size; defaults to len(data)
	link    uint32
	info    uint32
	entsize uint64
}

// buildFile assembles a flat image: payload blobs first, each aligned to
// 8 bytes, then the section header table. The returned File carries a
// synthetic header summary, the way an external file-header parser would
// supply one.
func buildFile(t *testing.T, class elf.Class, secs []testSection) *elf.File {
	t.Helper()

	shstrtab := []byte{0}
	nameOff := func(s string) uint32 {
		off := uint32(len(shstrtab))
		shstrtab = append(shstrtab, s...)
		shstrtab = append(shstrtab, 0)
		return off
	}

	type placed struct {
		nameOff uint32
		sec     testSection
		off     uint64
		size    uint64
	}

	all := make([]placed, 0, len(secs)+2)
	all = append(all, placed{sec: testSection{typ: 0}}) // null section

	var img []byte
	pad := func() {
		for len(img)%8 != 0 {
			img = append(img, 0)
		}
	}
	place := func(p placed) placed {
		pad()
		p.off = uint64(len(img))
		img = append(img, p.sec.data...)
		p.size = uint64(len(p.sec.data))
		if p.sec.size != 0 {
			p.size = p.sec.size
		}
		return p
	}

	for _, s := range secs {
		all = append(all, place(placed{nameOff: nameOff(s.name), sec: s}))
	}
	strtabName := nameOff(".shstrtab")
	all = append(all, place(placed{
		nameOff: strtabName,
		sec:     testSection{name: ".shstrtab", typ: 3, data: shstrtab},
	}))

	pad()
	tableOff := uint64(len(img))
	entSize := uint16(64)
	if class == elf.Class32 {
		entSize = 40
	}
	for _, p := range all {
		img = append(img, encodeShdr(class, p.nameOff, p.sec, p.off, p.size)...)
	}

	return elf.New(img, elf.Header{
		Class:            class,
		SectionOffset:    tableOff,
		SectionEntrySize: entSize,
		SectionCount:     uint32(len(all)),
		StringTableIndex: uint32(len(all) - 1),
	})
}

// encodeShdr writes one section header entry in the given class's
// on-disk layout, native endianness.
func encodeShdr(class elf.Class, nameOff uint32, s testSection, off, size uint64) []byte {
	ne := binary.NativeEndian
	if class == elf.Class32 {
		e := make([]byte, 40)
		ne.PutUint32(e[0:], nameOff)
		ne.PutUint32(e[4:], s.typ)
		ne.PutUint32(e[8:], uint32(s.flags))
		ne.PutUint32(e[16:], uint32(off))
		ne.PutUint32(e[20:], uint32(size))
		ne.PutUint32(e[24:], s.link)
		ne.PutUint32(e[28:], s.info)
		ne.PutUint32(e[36:], uint32(s.entsize))
		return e
	}
	e := make([]byte, 64)
	ne.PutUint32(e[0:], nameOff)
	ne.PutUint32(e[4:], s.typ)
	ne.PutUint64(e[8:], s.flags)
	ne.PutUint64(e[24:], off)
	ne.PutUint64(e[32:], size)
	ne.PutUint32(e[40:], s.link)
	ne.PutUint32(e[44:], s.info)
	ne.PutUint64(e[56:], s.entsize)
	return e
}

// u32s and u64s build little payload arrays in native byte order.
func u32s(vals ...uint32) []byte {
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.NativeEndian.PutUint32(b[i*4:], v)
	}
	return b
}

func u64s(vals ...uint64) []byte {
	b := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.NativeEndian.PutUint64(b[i*8:], v)
	}
	return b
}
