// Package elf decodes the section header table of an ELF image and
// materializes typed, zero-copy views of each section's payload.
//
// The input is a raw byte buffer that may come from an untrusted
// executable or object file. Every derived value is a read-only overlay
// onto that buffer: nothing is copied, nothing is mutated, and every
// reinterpretation of bytes as a record passes through a validated path
// that checks the window size and alignment first. Malformed input is
// reported through the structured errors package; no accessor panics.
//
// # On-disk layouts
//
// Section header entries exist in two widths, selected by the file
// class byte:
//
//	32-bit entry (40 bytes)          64-bit entry (64 bytes)
//	─────────────────────────        ─────────────────────────
//	name        u32                  name        u32
//	type        u32                  type        u32
//	flags       u32                  flags       u64
//	address     u32                  address     u64
//	offset      u32                  offset      u64
//	size        u32                  size        u64
//	link        u32                  link        u32
//	info        u32                  info        u32
//	align       u32                  align       u64
//	entry size  u32                  entry size  u64
//
// SectionHeader hides the split: accessors widen every field to a common
// representation, and the width-dependent logic is written once against
// the word-size type parameter.
//
// # Decoding flow
//
//  1. Parse(data) or New(data, header) → *File
//  2. (*File).SectionHeader(i) or (*File).Sections() → SectionHeader
//  3. SectionHeader.Data(f) → SectionData (one typed variant per kind)
//  4. Strings(data) for string tables, NoteHeader.Name/Desc for notes
//
// Classification of the raw 32-bit type code is total over the defined
// sets: seventeen fixed codes plus the OS-specific, processor-specific
// and application-defined ranges. Codes 12 and 13 sit in a hole the
// format never assigned; they classify as invalid_type_code, as does
// everything else outside the defined sets.
//
// # Concurrency
//
// The engine performs no I/O and keeps no mutable state outside
// iterators. Any number of goroutines may decode from the same File
// concurrently as long as the buffer outlives every derived handle.
//
// # Errors
//
// All failures are *errors.Error values from the module's errors
// package, matchable with errors.Is against a bare {Phase, Kind} value.
// Detection is lazy: a failing accessor yields nothing for that query
// and leaves every other section and query unaffected.
package elf
