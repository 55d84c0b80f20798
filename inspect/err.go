package inspect

import (
	"github.com/ezrec/cpuinspect/translate"
)

var f = translate.From

// ErrCheckExpr indicates a check expression that did not evaluate to an
// integer.
type ErrCheckExpr string

func (ec ErrCheckExpr) Error() string {
	return f("'%v' is not an integer register expression", string(ec))
}
