// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package feature

import (
	"slices"

	"github.com/ezrec/cpuinspect/cpuid"
)

// Vendor identifies a processor vendor family by its leaf-0 identity
// string.
type Vendor int

//go:generate go tool stringer -linecomment -type=Vendor
const (
	VENDOR_INTEL = Vendor(0) // GenuineIntel
	VENDOR_AMD   = Vendor(1) // AuthenticAMD
)

// VendorOf maps a leaf-0 identity string to its vendor constant.
func VendorOf(identity string) (vendor Vendor, ok bool) {
	for v := VENDOR_INTEL; v <= VENDOR_AMD; v++ {
		if v.String() == identity {
			return v, true
		}
	}
	return
}

// Bit pairs a bit position with the capability it reports.
type Bit struct {
	Pos  int    // Bit position, 0 to 31.
	Name string // Capability description.
}

// TableKey selects the bit table for one vendor, leaf, and register.
type TableKey struct {
	Vendor Vendor
	Leaf   cpuid.Leaf
	Reg    cpuid.RegIndex
}

// tables holds every registered bit table. The tables_*.go files
// populate it at init.
var tables = map[TableKey][]Bit{}

// Table returns the ordered bit table for the combination, or
// ErrTableMissing when none is registered.
func Table(vendor Vendor, leaf cpuid.Leaf, reg cpuid.RegIndex) (bits []Bit, err error) {
	key := TableKey{Vendor: vendor, Leaf: leaf, Reg: reg}
	bits, ok := tables[key]
	if !ok {
		err = ErrTableMissing(key)
	}
	return
}

// Leaves returns the leaves that have at least one bit table for the
// vendor, in increasing order.
func Leaves(vendor Vendor) (leaves []cpuid.Leaf) {
	seen := map[cpuid.Leaf]bool{}
	for key := range tables {
		if key.Vendor != vendor || seen[key.Leaf] {
			continue
		}
		seen[key.Leaf] = true
		leaves = append(leaves, key.Leaf)
	}

	slices.Sort(leaves)

	return
}
