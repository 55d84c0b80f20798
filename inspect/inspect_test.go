package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cpuinspect/cpuid"
	"github.com/ezrec/cpuinspect/feature"
)

// fakeIntel scripts a small GenuineIntel processor: two standard
// leaves, no hypervisor range, and an extended range reaching the
// brand leaves. Every leaf echoes its sub-leaf 0 answer at sub-leaf 1,
// the way hardware answers leaves that ignore the sub-leaf index, so
// each leaf reports a single valid sub-leaf.
func fakeIntel() cpuid.ProbeFunc {
	rec := &cpuid.Recording{}

	echo := func(leaf cpuid.Leaf, regs cpuid.Registers) {
		rec.Record(leaf, 0, regs)
		rec.Record(leaf, 1, regs)
	}

	echo(0x0, cpuid.Registers{EAX: 0x1, EBX: 0x756e6547, ECX: 0x6c65746e, EDX: 0x49656e69})
	echo(0x1, cpuid.Registers{EAX: 0x000906ea, EBX: 0x00100800, ECX: 1 << 28, EDX: 1 << 25})

	echo(0x80000000, cpuid.Registers{EAX: 0x80000004})
	echo(0x80000001, cpuid.Registers{EAX: 0x1})
	// 48-byte brand text packed across the three brand leaves.
	echo(0x80000002, cpuid.Registers{
		EAX: pack("Fake"), EBX: pack(" CPU"), ECX: pack("(R) "), EDX: pack("Mode")})
	echo(0x80000003, cpuid.Registers{
		EAX: pack("l On"), EBX: pack("e @ "), ECX: pack("1.00"), EDX: pack("GHz")})
	echo(0x80000004, cpuid.Registers{EAX: pack(" ")})

	return rec.Probe()
}

// pack packs up to four ASCII characters little-endian, as the brand
// string leaves do.
func pack(text string) (value uint32) {
	for n := len(text) - 1; n >= 0; n-- {
		value = (value << 8) | uint32(text[n])
	}
	return
}

func TestInspectorVendor(t *testing.T) {
	assert := assert.New(t)

	in := NewInspector(fakeIntel())
	assert.Equal("GenuineIntel", in.Vendor())

	vendor, ok := in.VendorID()
	assert.True(ok)
	assert.Equal(feature.VENDOR_INTEL, vendor)
}

func TestInspectorBrand(t *testing.T) {
	assert := assert.New(t)

	in := NewInspector(fakeIntel())
	assert.Equal("Fake CPU(R) Model One @ 1.00GHz", in.Brand())
}

func TestInspectorScan(t *testing.T) {
	assert := assert.New(t)

	in := NewInspector(fakeIntel())

	rows := []Row{}
	for row, err := range in.Scan() {
		assert.NoError(err)
		rows = append(rows, row)
	}

	// Standard leaves 0..1, no hypervisor range, extended 0x80000000..4,
	// one sub-leaf each.
	leaves := []cpuid.Leaf{}
	for _, row := range rows {
		assert.Equal(cpuid.Subleaf(0), row.Subleaf)
		leaves = append(leaves, row.Leaf)
	}
	assert.Equal([]cpuid.Leaf{
		0x0, 0x1,
		0x80000000, 0x80000001, 0x80000002, 0x80000003, 0x80000004,
	}, leaves)
}

func TestInspectorScanContinuesPastDivergence(t *testing.T) {
	assert := assert.New(t)

	// Leaf 1 answers a fresh EAX on every sub-leaf probe, so its
	// sub-leaf scan diverges; the scan still reports the other leaves.
	fresh := uint32(0)
	in := NewInspector(func(leaf cpuid.Leaf, subleaf cpuid.Subleaf) cpuid.Registers {
		switch {
		case leaf == 0x0:
			return cpuid.Registers{EAX: 0x2}
		case leaf == 0x1:
			fresh++
			return cpuid.Registers{EAX: fresh}
		case leaf == 0x2 && subleaf <= 1:
			return cpuid.Registers{EAX: 0x99}
		}
		return cpuid.Registers{}
	})
	in.Enum.Limit = 32

	leaves := []cpuid.Leaf{}
	errs := []error{}
	for row, err := range in.Scan() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		leaves = append(leaves, row.Leaf)
	}

	assert.Len(errs, 1)
	assert.ErrorIs(errs[0], cpuid.ErrScanDiverged(0))
	assert.Equal([]cpuid.Leaf{0x0, 0x2}, leaves)
}

func TestInspectorFeatures(t *testing.T) {
	assert := assert.New(t)

	in := NewInspector(fakeIntel())

	// Leaf 1 scripts AVX (ECX bit 28) and SSE (EDX bit 25).
	found := map[cpuid.RegIndex]bool{}
	for reg, decoded := range in.Features(feature.VENDOR_INTEL, 0x1) {
		found[reg] = true
		assert.Len(decoded, 32)
		for _, bit := range decoded {
			switch {
			case reg == cpuid.REG_ECX && bit.Pos == 28:
				assert.True(bit.Set, bit.Name)
			case reg == cpuid.REG_EDX && bit.Pos == 25:
				assert.True(bit.Set, bit.Name)
			default:
				assert.False(bit.Set, bit.Name)
			}
		}
	}

	// Leaf 1 has ECX and EDX tables only.
	assert.Equal(map[cpuid.RegIndex]bool{cpuid.REG_ECX: true, cpuid.REG_EDX: true}, found)
}

func TestInspectorRecord(t *testing.T) {
	assert := assert.New(t)

	in := NewInspector(fakeIntel())
	rec, err := in.Record()
	assert.NoError(err)
	assert.Len(rec.Answer, 7)

	// Replaying the recording reproduces the original answers.
	replay := NewInspector(rec.Probe())
	assert.Equal("GenuineIntel", replay.Vendor())
}

func TestCheck(t *testing.T) {
	assert := assert.New(t)

	regs := cpuid.Registers{EAX: 0x10, EBX: 1 << 5, ECX: 0, EDX: 0xffffffff}

	table := [](struct {
		Expr  string
		Value uint32
		Bad   bool
	}){
		{Expr: "eax", Value: 0x10},
		{Expr: "(ebx >> 5) & 1", Value: 1},
		{Expr: "(ecx >> 5) & 1", Value: 0},
		{Expr: "edx & 0xff", Value: 0xff},
		{Expr: "eax + ebx", Value: 0x30},
		{Expr: "'text'", Bad: true},
		{Expr: "not an expression at all", Bad: true},
		{Expr: "undefined_register", Bad: true},
	}

	for _, testcase := range table {
		value, err := Check(testcase.Expr, regs)
		if testcase.Bad {
			assert.Error(err, testcase.Expr)
		} else {
			assert.NoError(err, testcase.Expr)
			assert.Equal(testcase.Value, value, testcase.Expr)
		}
	}
}
