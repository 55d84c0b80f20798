// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpuid

import (
	"strconv"
	"strings"
)

// Leaf is the primary index of an identification query.
type Leaf uint32

// Subleaf is the secondary index refining a leaf query. Valid sub-leaves
// are dense starting at 0; the upper bound is leaf-dependent and is
// discovered at runtime by the Enumerator.
type Subleaf uint32

// Base leaves of the three conventional query ranges. The ranges are
// probed independently of each other.
const (
	LEAF_STANDARD   = Leaf(0x00000000) // Basic processor information.
	LEAF_HYPERVISOR = Leaf(0x40000000) // Hypervisor vendor range.
	LEAF_EXTENDED   = Leaf(0x80000000) // Extended processor information.
)

// RegIndex selects one of the four result registers by position.
type RegIndex int

//go:generate go tool stringer -linecomment -type=RegIndex
const (
	REG_EAX = RegIndex(0) // eax
	REG_EBX = RegIndex(1) // ebx
	REG_ECX = RegIndex(2) // ecx
	REG_EDX = RegIndex(3) // edx
)

// Registers is the complete result of one identification query.
type Registers struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// Reg returns the register at the given position.
func (regs Registers) Reg(index RegIndex) (value uint32) {
	switch index {
	case REG_EAX:
		value = regs.EAX
	case REG_EBX:
		value = regs.EBX
	case REG_ECX:
		value = regs.ECX
	case REG_EDX:
		value = regs.EDX
	}
	return
}

// IsZero reports whether all four registers are zero.
func (regs Registers) IsZero() bool {
	return regs == Registers{}
}

// ProbeFunc issues the identification instruction for exactly the given
// leaf and sub-leaf and returns the four result registers.
type ProbeFunc func(leaf Leaf, subleaf Subleaf) Registers

// ParseIndex parses a leaf or sub-leaf index from text. A "0x" or "0X"
// prefix selects hexadecimal; bare text parses as decimal first, then as
// hexadecimal for forms like "4000000b". Case-insensitive.
func ParseIndex(text string) (value uint32, err error) {
	word := strings.ToLower(strings.TrimSpace(text))
	if word == "" {
		err = ErrParseIndex(text)
		return
	}

	var v64 uint64
	if after, ok := strings.CutPrefix(word, "0x"); ok {
		v64, err = strconv.ParseUint(after, 16, 32)
	} else {
		v64, err = strconv.ParseUint(word, 10, 32)
		if err != nil {
			v64, err = strconv.ParseUint(word, 16, 32)
		}
	}
	if err != nil {
		err = ErrParseIndex(text)
		return
	}

	value = uint32(v64)
	return
}
