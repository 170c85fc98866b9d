package elf_test

import (
	stdelf "debug/elf"
	"testing"

	"github.com/elfkit/elfkit/elf"
)

// The constants are this module's own wire contract, but they must agree
// with the values the rest of the ecosystem uses; debug/elf is the
// reference.
func TestIndexConstantsMatchStdlib(t *testing.T) {
	tests := []struct {
		name string
		got  uint16
		want uint16
	}{
		{"IndexUndef", elf.IndexUndef, uint16(stdelf.SHN_UNDEF)},
		{"IndexLoReserve", elf.IndexLoReserve, uint16(stdelf.SHN_LORESERVE)},
		{"IndexLoProc", elf.IndexLoProc, uint16(stdelf.SHN_LOPROC)},
		{"IndexHiProc", elf.IndexHiProc, uint16(stdelf.SHN_HIPROC)},
		{"IndexLoOS", elf.IndexLoOS, uint16(stdelf.SHN_LOOS)},
		{"IndexHiOS", elf.IndexHiOS, uint16(stdelf.SHN_HIOS)},
		{"IndexAbs", elf.IndexAbs, uint16(stdelf.SHN_ABS)},
		{"IndexCommon", elf.IndexCommon, uint16(stdelf.SHN_COMMON)},
		{"IndexXIndex", elf.IndexXIndex, uint16(stdelf.SHN_XINDEX)},
		{"IndexHiReserve", elf.IndexHiReserve, uint16(stdelf.SHN_HIRESERVE)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}

func TestTypeRangeConstantsMatchStdlib(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"TypeLoOS", elf.TypeLoOS, uint32(stdelf.SHT_LOOS)},
		{"TypeHiOS", elf.TypeHiOS, uint32(stdelf.SHT_HIOS)},
		{"TypeLoProc", elf.TypeLoProc, uint32(stdelf.SHT_LOPROC)},
		{"TypeHiProc", elf.TypeHiProc, uint32(stdelf.SHT_HIPROC)},
		{"TypeLoUser", elf.TypeLoUser, uint32(stdelf.SHT_LOUSER)},
		{"TypeHiUser", elf.TypeHiUser, uint32(stdelf.SHT_HIUSER)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}

func TestFlagConstantsMatchStdlib(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"FlagWrite", elf.FlagWrite, uint64(stdelf.SHF_WRITE)},
		{"FlagAlloc", elf.FlagAlloc, uint64(stdelf.SHF_ALLOC)},
		{"FlagExecInstr", elf.FlagExecInstr, uint64(stdelf.SHF_EXECINSTR)},
		{"FlagMerge", elf.FlagMerge, uint64(stdelf.SHF_MERGE)},
		{"FlagStrings", elf.FlagStrings, uint64(stdelf.SHF_STRINGS)},
		{"FlagInfoLink", elf.FlagInfoLink, uint64(stdelf.SHF_INFO_LINK)},
		{"FlagLinkOrder", elf.FlagLinkOrder, uint64(stdelf.SHF_LINK_ORDER)},
		{"FlagOSNonconforming", elf.FlagOSNonconforming, uint64(stdelf.SHF_OS_NONCONFORMING)},
		{"FlagGroup", elf.FlagGroup, uint64(stdelf.SHF_GROUP)},
		{"FlagTLS", elf.FlagTLS, uint64(stdelf.SHF_TLS)},
		{"FlagCompressed", elf.FlagCompressed, uint64(stdelf.SHF_COMPRESSED)},
		{"FlagMaskOS", elf.FlagMaskOS, uint64(stdelf.SHF_MASKOS)},
		{"FlagMaskProc", elf.FlagMaskProc, uint64(stdelf.SHF_MASKPROC)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}

// debug/elf defines no GRP_* constants, so the group flags have no
// stdlib counterpart to compare against.
func TestCompressionConstantsMatchStdlib(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"CompressZlib", elf.CompressZlib, uint32(stdelf.COMPRESS_ZLIB)},
		{"CompressLoOS", elf.CompressLoOS, uint32(stdelf.COMPRESS_LOOS)},
		{"CompressHiOS", elf.CompressHiOS, uint32(stdelf.COMPRESS_HIOS)},
		{"CompressLoProc", elf.CompressLoProc, uint32(stdelf.COMPRESS_LOPROC)},
		{"CompressHiProc", elf.CompressHiProc, uint32(stdelf.COMPRESS_HIPROC)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}
