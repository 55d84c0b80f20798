package cpuid

import (
	"errors"

	"github.com/ezrec/cpuinspect/translate"
)

var f = translate.From

var (
	// Probe errors
	ErrNoNativeProbe = errors.New(f("no native identification instruction on this architecture"))
)

// ErrScanDiverged indicates an enumeration loop hit its iteration cap
// without converging on the named leaf.
type ErrScanDiverged Leaf

func (es ErrScanDiverged) Error() string {
	return f("leaf %#08x scan did not converge", uint32(es))
}

func (es ErrScanDiverged) Is(err error) (ok bool) {
	_, ok = err.(ErrScanDiverged)
	return
}

// ErrParseIndex indicates text that is not a leaf or sub-leaf index.
type ErrParseIndex string

func (ep ErrParseIndex) Error() string {
	return f("'%v' is not an index value", string(ep))
}

// ErrChartLine indicates a malformed line in a recorded register chart.
type ErrChartLine struct {
	LineNo int
	Line   string
}

func (ec ErrChartLine) Error() string {
	return f("chart line %d '%v' is not leaf.sub followed by four registers", ec.LineNo, ec.Line)
}
