// Package overlay reinterprets byte slices as fixed-layout records without
// copying. Every view is produced through a validated path: the slice length
// must match the record size exactly (or be an exact multiple of it for
// arrays) and the base pointer must satisfy the record's alignment. This is
// the only package in the module that touches unsafe.
//
// Record types must be fixed-size plain data: no pointers, slices, maps or
// strings, and a layout that matches the on-disk encoding field for field.
package overlay

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrSizeMismatch is returned when the slice length does not match the
// record size (or is not an exact multiple of it for arrays).
var ErrSizeMismatch = errors.New("overlay: size mismatch")

// ErrMisaligned is returned when the slice base pointer does not satisfy
// the record type's alignment.
var ErrMisaligned = errors.New("overlay: misaligned")

// View reinterprets b as a single record of type T. The slice must be
// exactly unsafe.Sizeof(T) bytes long and aligned for T. The returned
// pointer aliases b; it is valid only while b's backing array is.
func View[T any](b []byte) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(b) != size {
		return nil, fmt.Errorf("%w: record is %d bytes, slice is %d", ErrSizeMismatch, size, len(b))
	}
	if err := checkAlign(b, unsafe.Alignof(zero)); err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// Array reinterprets b as a slice of records of type T. The slice length
// must be an exact multiple of unsafe.Sizeof(T) and aligned for T. An empty
// input yields a nil slice. The returned slice aliases b.
func Array[T any](b []byte) ([]T, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(b)%size != 0 {
		return nil, fmt.Errorf("%w: slice of %d bytes is not a multiple of the %d-byte record", ErrSizeMismatch, len(b), size)
	}
	if err := checkAlign(b, unsafe.Alignof(zero)); err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/size), nil
}

func checkAlign(b []byte, align uintptr) error {
	if addr := uintptr(unsafe.Pointer(unsafe.SliceData(b))); addr%align != 0 {
		return fmt.Errorf("%w: base address %#x needs %d-byte alignment", ErrMisaligned, addr, align)
	}
	return nil
}
