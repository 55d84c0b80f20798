package inspect

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/cpuinspect/cpuid"
)

// Check evaluates an expression against the four registers of one probe
// result. The register values are predeclared as the integers eax, ebx,
// ecx, and edx, so expressions like "(ebx >> 5) & 1" report a single
// capability bit. The expression must produce an integer.
func Check(expr string, regs cpuid.Registers) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"eax": starlark.MakeUint64(uint64(regs.EAX)),
		"ebx": starlark.MakeUint64(uint64(regs.EBX)),
		"ecx": starlark.MakeUint64(uint64(regs.ECX)),
		"edx": starlark.MakeUint64(uint64(regs.EDX)),
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrCheckExpr(expr)
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrCheckExpr(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrCheckExpr(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrCheckExpr(expr)
		return
	}

	value = uint32(st_int64)
	return
}
