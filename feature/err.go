package feature

import (
	"github.com/ezrec/cpuinspect/translate"
)

var f = translate.From

// ErrParseBinary indicates text that is not a 32-character binary value.
type ErrParseBinary string

func (eb ErrParseBinary) Error() string {
	return f("'%v' is not a 32-bit binary value", string(eb))
}

// ErrParseHex indicates text that is not a 32-bit hexadecimal value.
type ErrParseHex string

func (eh ErrParseHex) Error() string {
	return f("'%v' is not a 32-bit hexadecimal value", string(eh))
}

// ErrTableMissing indicates no bit table is registered for a
// vendor/leaf/register combination.
type ErrTableMissing TableKey

func (et ErrTableMissing) Error() string {
	return f("no bit table for %v leaf %#x %v", et.Vendor, uint32(et.Leaf), et.Reg)
}

func (et ErrTableMissing) Is(err error) (ok bool) {
	_, ok = err.(ErrTableMissing)
	return
}

// ErrTableInvalid indicates a bit table that is not a complete ordered
// enumeration of positions 31 down to 0.
type ErrTableInvalid int

func (et ErrTableInvalid) Error() string {
	return f("bit table entry %d out of order or duplicated", int(et))
}

func (et ErrTableInvalid) Is(err error) (ok bool) {
	_, ok = err.(ErrTableInvalid)
	return
}
