package cpuid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordingRoundTrip(t *testing.T) {
	assert := assert.New(t)

	rec := &Recording{}
	rec.Record(0, 0, Registers{EAX: 0xd, EBX: 0x756e6547, ECX: 0x6c65746e, EDX: 0x49656e69})
	rec.Record(7, 0, Registers{EAX: 1, EBX: 0x20, ECX: 0, EDX: 0})
	rec.Record(7, 1, Registers{})
	rec.Record(0x80000000, 0, Registers{EAX: 0x80000008})

	var sb strings.Builder
	err := rec.Save(&sb)
	assert.NoError(err)

	loaded := &Recording{}
	err = loaded.Load(strings.NewReader(sb.String()))
	assert.NoError(err)
	assert.Equal(rec.Answer, loaded.Answer)

	// Replay answers recorded queries exactly, and zero for the rest.
	probe := loaded.Probe()
	assert.Equal(uint32(0x756e6547), probe(0, 0).EBX)
	assert.Equal(uint32(0x20), probe(7, 0).EBX)
	assert.True(probe(0x15, 0).IsZero())
}

func TestRecordingLoadRejectsMalformed(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Name  string
		Chart string
		Line  int
	}){
		{Name: "missing dot", Chart: "00000000    00000005  00000000  00000000  00000000\n", Line: 1},
		{Name: "short", Chart: "00000000.00    00000005  00000000\n", Line: 1},
		{Name: "not hex", Chart: "00000000.00    0000000G  00000000  00000000  00000000\n", Line: 1},
		{Name: "second line", Chart: "00000000.00    00000005  00000000  00000000  00000000\nbogus line here with six fields in it\n", Line: 2},
	}

	for _, testcase := range table {
		rec := &Recording{}
		err := rec.Load(strings.NewReader(testcase.Chart))
		assert.Error(err, testcase.Name)

		echart, ok := err.(ErrChartLine)
		assert.True(ok, testcase.Name)
		assert.Equal(testcase.Line, echart.LineNo, testcase.Name)
	}
}

func TestRecordingLoadSkipsHeader(t *testing.T) {
	assert := assert.New(t)

	chart := "leaf     sub   eax       ebx       ecx       edx\n" +
		"\n" +
		"00000001.00    000906EA  00100800  7FFAFBFF  BFEBFBFF\n"

	rec := &Recording{}
	err := rec.Load(strings.NewReader(chart))
	assert.NoError(err)
	assert.Len(rec.Answer, 1)
	assert.Equal(uint32(0x000906ea), rec.Answer[Query{Leaf: 1}].EAX)
}
