// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpuid

import (
	"log"
)

const (
	SCAN_LIMIT = 512 // Default iteration cap for enumeration loops.
)

// Enumerator discovers which leaves and sub-leaves the host processor
// answers, by probing upward from zero until a termination rule fires.
type Enumerator struct {
	Verbose bool      // If set, verbosely logs every probe.
	Probe   ProbeFunc // Issues the identification queries.
	Limit   int       // Iteration cap per loop; SCAN_LIMIT if zero.
}

func (en *Enumerator) limit() int {
	if en.Limit > 0 {
		return en.Limit
	}
	return SCAN_LIMIT
}

// MaxSubleaf returns the inclusive upper bound of valid sub-leaves for
// the leaf. Sub-leaves are probed in increasing order starting at 0; the
// space is exhausted when two consecutive probes answer with the same
// first register, and the bound is the index before the repeat. A leaf
// with a single sub-leaf therefore takes two probes and reports 0.
//
// Returns ErrScanDiverged if the repeat rule has not fired within the
// iteration cap.
func (en *Enumerator) MaxSubleaf(leaf Leaf) (max Subleaf, err error) {
	var previous uint32
	seen := false

	for subleaf := Subleaf(0); int(subleaf) < en.limit(); subleaf++ {
		regs := en.Probe(leaf, subleaf)
		if en.Verbose {
			log.Printf("probe %08x.%02x: eax=%08x", uint32(leaf), uint32(subleaf), regs.EAX)
		}
		if seen && regs.EAX == previous {
			max = subleaf - 1
			return
		}
		previous = regs.EAX
		seen = true
	}

	err = ErrScanDiverged(leaf)
	return
}

// MaxLeaf returns the inclusive upper bound of valid leaves in the range
// starting at base. Leaves are probed in increasing order at sub-leaf 0;
// the first leaf whose first register answers zero ends the range, and
// the bound is the last leaf recorded before it.
//
// The zero-answer rule is a heuristic: no architecture document promises
// that a valid leaf never returns zero in its first register. It holds
// on known hardware and hypervisors, and the iteration cap bounds the
// loop when it does not.
//
// ok is false when the base leaf itself answers zero, meaning the range
// is absent. Returns ErrScanDiverged if no zero answer arrives within
// the iteration cap.
func (en *Enumerator) MaxLeaf(base Leaf) (max Leaf, ok bool, err error) {
	for n := 0; n < en.limit(); n++ {
		leaf := base + Leaf(n)
		regs := en.Probe(leaf, 0)
		if en.Verbose {
			log.Printf("probe %08x.00: eax=%08x", uint32(leaf), regs.EAX)
		}
		if regs.EAX == 0 {
			return
		}
		max = leaf
		ok = true
	}

	err = ErrScanDiverged(base)
	return
}
