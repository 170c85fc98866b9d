package elf

// SectionIter walks the section header table in on-disk order, from
// index 0 up to the file's declared section count. Each step decodes one
// entry; a decode failure stops the iteration and is reported by Err.
//
//	it := f.Sections()
//	for it.Next() {
//		h := it.Section()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type SectionIter struct {
	file  *File
	cur   SectionHeader
	err   error
	next  uint32
	index uint32
}

// Sections returns an iterator over the file's section header table.
func (f *File) Sections() *SectionIter {
	return &SectionIter{file: f}
}

// Next advances to the next section header; it returns false when the
// table is exhausted or an entry fails to decode.
func (it *SectionIter) Next() bool {
	if it.err != nil || it.next >= it.file.Header.SectionCount {
		return false
	}
	h, err := it.file.SectionHeader(uint16(it.next))
	if err != nil {
		it.err = err
		return false
	}
	it.cur = h
	it.index = it.next
	it.next++
	return true
}

// Section returns the header decoded by the last successful Next.
func (it *SectionIter) Section() SectionHeader { return it.cur }

// Index returns the table index of the header decoded by the last
// successful Next.
func (it *SectionIter) Index() uint32 { return it.index }

// Err returns the decode error that stopped the iteration, if any.
func (it *SectionIter) Err() error { return it.err }
