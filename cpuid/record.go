package cpuid

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Query addresses one recorded probe result.
type Query struct {
	Leaf    Leaf
	Subleaf Subleaf
}

// Recording is a set of captured probe results. It replays a previous
// scan without the host processor, for offline analysis of register
// dumps from other machines.
type Recording struct {
	Answer map[Query]Registers
}

// Record stores the result of one query, replacing any previous answer.
func (rec *Recording) Record(leaf Leaf, subleaf Subleaf, regs Registers) {
	if rec.Answer == nil {
		rec.Answer = map[Query]Registers{}
	}
	rec.Answer[Query{Leaf: leaf, Subleaf: subleaf}] = regs
}

// Probe returns a ProbeFunc over the recorded answers. Queries that were
// never recorded answer all-zero registers, matching how hardware
// answers undefined leaves.
func (rec *Recording) Probe() ProbeFunc {
	return func(leaf Leaf, subleaf Subleaf) Registers {
		return rec.Answer[Query{Leaf: leaf, Subleaf: subleaf}]
	}
}

// Save writes the recording as a register chart, one query per line:
//
//	leaf     sub   eax       ebx       ecx       edx
//	00000007.01    00000010  00000000  00000000  00000000
//
// Lines are ordered by leaf, then sub-leaf.
func (rec *Recording) Save(out io.Writer) (err error) {
	_, err = fmt.Fprintf(out, "leaf     sub   eax       ebx       ecx       edx\n")
	if err != nil {
		return
	}

	queries := slices.SortedFunc(maps.Keys(rec.Answer), func(a, b Query) int {
		if a.Leaf != b.Leaf {
			if a.Leaf < b.Leaf {
				return -1
			}
			return 1
		}
		if a.Subleaf < b.Subleaf {
			return -1
		}
		if a.Subleaf > b.Subleaf {
			return 1
		}
		return 0
	})

	for _, query := range queries {
		regs := rec.Answer[query]
		_, err = fmt.Fprintf(out, "%08X.%02X    %08X  %08X  %08X  %08X\n",
			uint32(query.Leaf), uint32(query.Subleaf),
			regs.EAX, regs.EBX, regs.ECX, regs.EDX)
		if err != nil {
			return
		}
	}

	return
}

// Load reads a register chart written by Save. The header line and blank
// lines are skipped; any other malformed line is rejected with its line
// number.
func (rec *Recording) Load(in io.Reader) (err error) {
	scanner := bufio.NewScanner(in)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "leaf ") {
			continue
		}

		query, regs, ok := parseChartLine(line)
		if !ok {
			err = ErrChartLine{LineNo: lineno, Line: line}
			return
		}

		rec.Record(query.Leaf, query.Subleaf, regs)
	}

	err = scanner.Err()
	return
}

func parseChartLine(line string) (query Query, regs Registers, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return
	}

	leafText, subText, found := strings.Cut(fields[0], ".")
	if !found {
		return
	}

	leaf, err := strconv.ParseUint(leafText, 16, 32)
	if err != nil {
		return
	}
	sub, err := strconv.ParseUint(subText, 16, 32)
	if err != nil {
		return
	}

	values := [4]uint32{}
	for n, field := range fields[1:] {
		v64, err := strconv.ParseUint(field, 16, 32)
		if err != nil {
			return
		}
		values[n] = uint32(v64)
	}

	query = Query{Leaf: Leaf(leaf), Subleaf: Subleaf(sub)}
	regs = Registers{EAX: values[0], EBX: values[1], ECX: values[2], EDX: values[3]}
	ok = true
	return
}
