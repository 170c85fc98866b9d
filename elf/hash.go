package elf

// HashTable is the fixed header of a hash section: the bucket and chain
// counts followed by the first bucket word. Bucket and chain traversal
// is the symbol lookup collaborator's concern; this engine only overlays
// the header.
type HashTable struct {
	BucketCount uint32
	ChainCount  uint32
	FirstBucket uint32
}

const hashHeaderSize = 12
