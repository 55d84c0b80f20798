package feature

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cpuinspect/cpuid"
)

func TestRegisteredTables(t *testing.T) {
	assert := assert.New(t)

	// Every registered table is a complete ordered enumeration of all
	// 32 bit positions, 31 down to 0.
	assert.NotEmpty(tables)
	for key, bits := range tables {
		name := fmt.Sprintf("%v leaf %#x %v", key.Vendor, uint32(key.Leaf), key.Reg)

		assert.Len(bits, 32, name)
		for n, bit := range bits {
			assert.Equal(31-n, bit.Pos, name)
			assert.NotEmpty(bit.Name, name)
		}
	}
}

func TestTableLookup(t *testing.T) {
	assert := assert.New(t)

	bits, err := Table(VENDOR_INTEL, 0x7, cpuid.REG_EBX)
	assert.NoError(err)
	assert.Len(bits, 32)

	_, err = Table(VENDOR_INTEL, 0x9999, cpuid.REG_EBX)
	assert.ErrorIs(err, ErrTableMissing{})

	leaves := Leaves(VENDOR_INTEL)
	assert.Equal([]cpuid.Leaf{0x1, 0x7}, leaves)

	leaves = Leaves(VENDOR_AMD)
	assert.Equal([]cpuid.Leaf{0x1, 0x80000001}, leaves)
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	bits, err := Table(VENDOR_INTEL, 0x7, cpuid.REG_EBX)
	assert.NoError(err)

	// AVX2 is bit 5; SHA is bit 29.
	value := uint32((1 << 5) | (1 << 29))
	decoded, err := Decode(bits, value)
	assert.NoError(err)
	assert.Len(decoded, 32)

	for n, bit := range decoded {
		assert.Equal(31-n, bit.Pos)
		assert.Equal(bit.Pos == 5 || bit.Pos == 29, bit.Set, bit.Name)
	}

	assert.Equal("AVX2 instructions", decoded[31-5].Name)
	assert.True(decoded[31-5].Set)
}

func TestDecodeRejectsMalformedTable(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Name string
		Bits []Bit
	}){
		{Name: "empty", Bits: []Bit{}},
		{Name: "short", Bits: []Bit{{Pos: 31, Name: "x"}}},
		{Name: "ascending", Bits: func() (bits []Bit) {
			for n := range 32 {
				bits = append(bits, Bit{Pos: n, Name: "x"})
			}
			return
		}()},
		{Name: "duplicate", Bits: func() (bits []Bit) {
			for range 32 {
				bits = append(bits, Bit{Pos: 31, Name: "x"})
			}
			return
		}()},
	}

	for _, testcase := range table {
		_, err := Decode(testcase.Bits, 0)
		assert.ErrorIs(err, ErrTableInvalid(0), testcase.Name)
	}
}
