package elf

// Dyn is a dynamic-linking entry: a tag and a value whose meaning
// depends on the tag. This engine exposes the raw typed array only;
// tag interpretation belongs to the dynamic linking collaborator.
type Dyn[P wordSize] struct {
	Tag P
	Val P
}

type (
	Dyn32 = Dyn[uint32]
	Dyn64 = Dyn[uint64]
)
