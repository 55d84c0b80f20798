package cpuid

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistersReg(t *testing.T) {
	assert := assert.New(t)

	regs := Registers{EAX: 1, EBX: 2, ECX: 3, EDX: 4}
	assert.Equal(uint32(1), regs.Reg(REG_EAX))
	assert.Equal(uint32(2), regs.Reg(REG_EBX))
	assert.Equal(uint32(3), regs.Reg(REG_ECX))
	assert.Equal(uint32(4), regs.Reg(REG_EDX))

	assert.False(regs.IsZero())
	assert.True(Registers{}.IsZero())
}

func TestParseIndex(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Text  string
		Value uint32
		Bad   bool
	}){
		{Text: "0", Value: 0},
		{Text: "7", Value: 7},
		{Text: "0x7", Value: 7},
		{Text: "0X1F", Value: 0x1f},
		{Text: "10", Value: 10},
		{Text: "4000000b", Value: 0x4000000b},
		{Text: " 0x80000000 ", Value: 0x80000000},
		{Text: "", Bad: true},
		{Text: "0x", Bad: true},
		{Text: "leaf", Bad: true},
		{Text: "0x100000000", Bad: true},
	}

	for _, testcase := range table {
		value, err := ParseIndex(testcase.Text)
		if testcase.Bad {
			assert.Error(err, testcase.Text)
			assert.Equal(ErrParseIndex(testcase.Text), err, testcase.Text)
		} else {
			assert.NoError(err, testcase.Text)
			assert.Equal(testcase.Value, value, testcase.Text)
		}
	}
}

func TestNativeProbe(t *testing.T) {
	assert := assert.New(t)

	probe, err := NativeProbe()
	if runtime.GOARCH != "amd64" {
		assert.ErrorIs(err, ErrNoNativeProbe)
		return
	}

	assert.NoError(err)

	// Leaf 0 always answers: EAX is the maximum standard leaf and the
	// identity registers are never all zero.
	regs := probe(LEAF_STANDARD, 0)
	assert.NotZero(regs.EBX | regs.ECX | regs.EDX)
}
