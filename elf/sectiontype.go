package elf

import "github.com/elfkit/elfkit/errors"

// SectionKind is the closed classification of section type codes. The
// three open-ended kinds carry the raw code in SectionType.Code.
type SectionKind int

const (
	KindNull SectionKind = iota
	KindProgBits
	KindSymTab
	KindStrTab
	KindRela
	KindHash
	KindDynamic
	KindNote
	KindNoBits
	KindRel
	KindShLib
	KindDynSym
	KindInitArray
	KindFiniArray
	KindPreInitArray
	KindGroup
	KindSymTabShIndex
	KindOsSpecific
	KindProcessorSpecific
	KindUser
)

var sectionKindNames = map[SectionKind]string{
	KindNull:              "null",
	KindProgBits:          "progbits",
	KindSymTab:            "symtab",
	KindStrTab:            "strtab",
	KindRela:              "rela",
	KindHash:              "hash",
	KindDynamic:           "dynamic",
	KindNote:              "note",
	KindNoBits:            "nobits",
	KindRel:               "rel",
	KindShLib:             "shlib",
	KindDynSym:            "dynsym",
	KindInitArray:         "init_array",
	KindFiniArray:         "fini_array",
	KindPreInitArray:      "preinit_array",
	KindGroup:             "group",
	KindSymTabShIndex:     "symtab_shndx",
	KindOsSpecific:        "os_specific",
	KindProcessorSpecific: "processor_specific",
	KindUser:              "user",
}

func (k SectionKind) String() string {
	if name, ok := sectionKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// SectionType is a classified section type: the kind plus the raw 32-bit
// code it was classified from.
type SectionType struct {
	Kind SectionKind
	Code uint32
}

func (t SectionType) String() string {
	return t.Kind.String()
}

// ClassifyType maps a raw section type code onto a SectionType. Codes 12
// and 13 are not assigned by the format, and codes between 19 and the
// OS-specific range belong to no defined set; both classify as
// invalid_type_code rather than any open range.
func ClassifyType(code uint32) (SectionType, error) {
	switch code {
	case 0:
		return SectionType{KindNull, code}, nil
	case 1:
		return SectionType{KindProgBits, code}, nil
	case 2:
		return SectionType{KindSymTab, code}, nil
	case 3:
		return SectionType{KindStrTab, code}, nil
	case 4:
		return SectionType{KindRela, code}, nil
	case 5:
		return SectionType{KindHash, code}, nil
	case 6:
		return SectionType{KindDynamic, code}, nil
	case 7:
		return SectionType{KindNote, code}, nil
	case 8:
		return SectionType{KindNoBits, code}, nil
	case 9:
		return SectionType{KindRel, code}, nil
	case 10:
		return SectionType{KindShLib, code}, nil
	case 11:
		return SectionType{KindDynSym, code}, nil
	case 14:
		return SectionType{KindInitArray, code}, nil
	case 15:
		return SectionType{KindFiniArray, code}, nil
	case 16:
		return SectionType{KindPreInitArray, code}, nil
	case 17:
		return SectionType{KindGroup, code}, nil
	case 18:
		return SectionType{KindSymTabShIndex, code}, nil
	}

	switch {
	case code >= TypeLoOS && code <= TypeHiOS:
		return SectionType{KindOsSpecific, code}, nil
	case code >= TypeLoProc && code <= TypeHiProc:
		return SectionType{KindProcessorSpecific, code}, nil
	case code >= TypeLoUser:
		return SectionType{KindUser, code}, nil
	}

	return SectionType{}, errors.InvalidTypeCode(errors.PhaseSection, code)
}
