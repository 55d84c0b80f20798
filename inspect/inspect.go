// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package inspect wires the probe, the enumerator, and the feature
// decoder into whole-processor operations: the full leaf scan, vendor
// and brand identity, per-leaf feature listings, and check expressions
// over probed registers.
package inspect

import (
	"iter"
	"strings"

	"github.com/ezrec/cpuinspect/cpuid"
	"github.com/ezrec/cpuinspect/feature"
	"github.com/ezrec/cpuinspect/internal"
)

// Inspector runs identification queries against one probe. The probe is
// fixed at construction; all methods are synchronous reads with no
// shared state between calls.
type Inspector struct {
	Verbose bool            // If set, enables verbose enumeration logging.
	Probe   cpuid.ProbeFunc // Issues the identification queries.
	Enum    cpuid.Enumerator
}

// NewInspector creates an Inspector over the given probe.
func NewInspector(probe cpuid.ProbeFunc) (in *Inspector) {
	in = &Inspector{
		Probe: probe,
		Enum:  cpuid.Enumerator{Probe: probe},
	}

	return
}

// Read probes exactly one leaf and sub-leaf.
func (in *Inspector) Read(leaf cpuid.Leaf, subleaf cpuid.Subleaf) cpuid.Registers {
	return in.Probe(leaf, subleaf)
}

// Vendor returns the processor's 12-byte identity string from leaf 0.
func (in *Inspector) Vendor() string {
	return feature.VendorString(in.Probe(cpuid.LEAF_STANDARD, 0))
}

// VendorID maps the identity string to a known vendor family.
func (in *Inspector) VendorID() (vendor feature.Vendor, ok bool) {
	return feature.VendorOf(in.Vendor())
}

// Brand returns the 48-byte marketing name from the extended range,
// leaves 0x80000002 through 0x80000004, sixteen registers packed in
// query and register order. Empty when the range does not reach the
// brand leaves.
func (in *Inspector) Brand() string {
	en := in.enum()
	max, ok, err := en.MaxLeaf(cpuid.LEAF_EXTENDED)
	if !ok || err != nil || max < cpuid.LEAF_EXTENDED+4 {
		return ""
	}

	var sb strings.Builder
	for leaf := cpuid.LEAF_EXTENDED + 2; leaf <= cpuid.LEAF_EXTENDED+4; leaf++ {
		regs := in.Probe(leaf, 0)
		for reg := cpuid.REG_EAX; reg <= cpuid.REG_EDX; reg++ {
			sb.WriteString(feature.PackedASCII(regs.Reg(reg)))
		}
	}

	return strings.Trim(sb.String(), " .")
}

// Row is one probed (leaf, sub-leaf) pair of a scan.
type Row struct {
	Leaf      cpuid.Leaf
	Subleaf   cpuid.Subleaf
	Registers cpuid.Registers
}

// Scan enumerates every discoverable leaf and sub-leaf across the
// standard, hypervisor, and extended ranges, yielding one row per
// probed pair. A leaf whose sub-leaf enumeration diverges yields the
// error for that leaf and the scan proceeds with the next; a range
// whose discovery diverges yields the error and the scan proceeds with
// the next range. Ranges that answer zero at their base are skipped.
func (in *Inspector) Scan() iter.Seq2[Row, error] {
	return internal.IterSeq2Concat(
		in.scanRange(cpuid.LEAF_STANDARD),
		in.scanRange(cpuid.LEAF_HYPERVISOR),
		in.scanRange(cpuid.LEAF_EXTENDED),
	)
}

func (in *Inspector) scanRange(base cpuid.Leaf) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		en := in.enum()

		max, ok, err := en.MaxLeaf(base)
		if err != nil {
			yield(Row{Leaf: base}, err)
			return
		}
		if !ok {
			return
		}

		for leaf := base; leaf <= max; leaf++ {
			maxSub, err := en.MaxSubleaf(leaf)
			if err != nil {
				if !yield(Row{Leaf: leaf}, err) {
					return
				}
				continue
			}

			for sub := cpuid.Subleaf(0); sub <= maxSub; sub++ {
				row := Row{
					Leaf:      leaf,
					Subleaf:   sub,
					Registers: in.Probe(leaf, sub),
				}
				if !yield(row, nil) {
					return
				}
			}
		}
	}
}

// Features decodes every register of the leaf that has a bit table for
// the vendor, yielding the register position and its decoded bits in
// most-significant-first table order.
func (in *Inspector) Features(vendor feature.Vendor, leaf cpuid.Leaf) iter.Seq2[cpuid.RegIndex, []feature.DecodedBit] {
	return func(yield func(cpuid.RegIndex, []feature.DecodedBit) bool) {
		regs := in.Probe(leaf, 0)
		for reg := cpuid.REG_EAX; reg <= cpuid.REG_EDX; reg++ {
			bits, err := feature.Table(vendor, leaf, reg)
			if err != nil {
				continue
			}
			decoded, err := feature.Decode(bits, regs.Reg(reg))
			if err != nil {
				continue
			}
			if !yield(reg, decoded) {
				return
			}
		}
	}
}

// Record captures a full scan into a Recording for offline replay.
// Diverged leaves are skipped; the first error encountered is returned
// alongside whatever was captured.
func (in *Inspector) Record() (rec *cpuid.Recording, err error) {
	rec = &cpuid.Recording{}

	for row, rerr := range in.Scan() {
		if rerr != nil {
			if err == nil {
				err = rerr
			}
			continue
		}
		rec.Record(row.Leaf, row.Subleaf, row.Registers)
	}

	return
}

func (in *Inspector) enum() cpuid.Enumerator {
	en := in.Enum
	en.Probe = in.Probe
	en.Verbose = in.Verbose
	return en
}
