// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/cpuinspect/cpuid"
	"github.com/ezrec/cpuinspect/feature"
	"github.com/ezrec/cpuinspect/inspect"
)

func main() {
	var leafText string
	var subleafText string
	var registers string
	var vendorName string
	var expr string
	var features bool
	var scan bool
	var record string
	var replay string
	var verbose bool

	flag.StringVar(&leafText, "l", "", "Leaf to probe (hex or decimal)")
	flag.StringVar(&subleafText, "s", "0", "Sub-leaf to probe")
	flag.StringVar(&registers, "r", "", "Decode four registers 'eax,ebx,ecx,edx' without probing")
	flag.StringVar(&vendorName, "vendor", "", "Vendor for feature tables (GenuineIntel, AuthenticAMD)")
	flag.StringVar(&expr, "e", "", "Check expression over eax/ebx/ecx/edx")
	flag.BoolVar(&features, "f", false, "Decode feature bits for the probed leaf")
	flag.BoolVar(&scan, "scan", false, "Scan all leaf ranges and print the register chart")
	flag.StringVar(&record, "o", "", "Save the scan as a register chart file")
	flag.StringVar(&replay, "i", "", "Replay a register chart file instead of probing")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if registers != "" {
		regs, err := parseRegisters(registers)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		printRegisters(regs)
		if expr != "" {
			runCheck(expr, regs)
		}
		return
	}

	probe, err := openProbe(replay)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	in := inspect.NewInspector(probe)
	in.Verbose = verbose

	vendor, vendorKnown := in.VendorID()
	if vendorName != "" {
		vendor, vendorKnown = feature.VendorOf(vendorName)
		if !vendorKnown {
			log.Fatalf("%v: unknown vendor '%v'", os.Args[0], vendorName)
		}
	}

	switch {
	case scan || record != "":
		runScan(in, record)

	case leafText != "":
		leaf, err := cpuid.ParseIndex(leafText)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		sub, err := cpuid.ParseIndex(subleafText)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}

		regs := in.Read(cpuid.Leaf(leaf), cpuid.Subleaf(sub))
		fmt.Printf("leaf     sub   eax       ebx       ecx       edx\n")
		fmt.Printf("%08X.%02X    %08X  %08X  %08X  %08X\n\n", leaf, sub, regs.EAX, regs.EBX, regs.ECX, regs.EDX)
		printRegisters(regs)

		if features {
			if !vendorKnown {
				log.Fatalf("%v: vendor unknown; use -vendor", os.Args[0])
			}
			printFeatures(in, vendor, cpuid.Leaf(leaf))
		}
		if expr != "" {
			runCheck(expr, regs)
		}

	case features:
		if !vendorKnown {
			log.Fatalf("%v: vendor unknown; use -vendor", os.Args[0])
		}
		for _, leaf := range feature.Leaves(vendor) {
			fmt.Printf("leaf %08X:\n", uint32(leaf))
			printFeatures(in, vendor, leaf)
		}

	default:
		fmt.Printf("Vendor: %v\n", in.Vendor())
		if brand := in.Brand(); brand != "" {
			fmt.Printf("Brand:  %v\n", brand)
		}
	}
}

// openProbe selects the native probe, or a recorded chart when replaying.
func openProbe(replay string) (probe cpuid.ProbeFunc, err error) {
	if replay == "" {
		return cpuid.NativeProbe()
	}

	inf, err := os.Open(replay)
	if err != nil {
		return
	}
	defer inf.Close()

	rec := &cpuid.Recording{}
	err = rec.Load(inf)
	if err != nil {
		return
	}

	probe = rec.Probe()
	return
}

// parseRegisters parses "eax,ebx,ecx,edx" hex text into a register quad.
func parseRegisters(text string) (regs cpuid.Registers, err error) {
	words := strings.Split(text, ",")
	if len(words) != 4 {
		err = fmt.Errorf("'%v' is not four comma-separated registers", text)
		return
	}

	values := [4]uint32{}
	for n, word := range words {
		values[n], err = feature.ParseRegister(word)
		if err != nil {
			return
		}
	}

	regs = cpuid.Registers{EAX: values[0], EBX: values[1], ECX: values[2], EDX: values[3]}
	return
}

func printRegisters(regs cpuid.Registers) {
	for reg := cpuid.REG_EAX; reg <= cpuid.REG_EDX; reg++ {
		value := regs.Reg(reg)
		fmt.Printf("%v: 0x%08X  %v  '%v'\n",
			strings.ToUpper(reg.String()), value,
			feature.BinaryString(value), feature.PackedASCII(value))
	}
}

func printFeatures(in *inspect.Inspector, vendor feature.Vendor, leaf cpuid.Leaf) {
	for reg, decoded := range in.Features(vendor, leaf) {
		fmt.Printf("\n%v features [%v]:\n", vendor, reg)
		for _, bit := range decoded {
			mark := "-"
			if bit.Set {
				mark = "+"
			}
			fmt.Printf("  %v bit %2d  %v\n", mark, bit.Pos, bit.Name)
		}
	}
}

func runCheck(expr string, regs cpuid.Registers) {
	value, err := inspect.Check(expr, regs)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	fmt.Printf("%v = %v (0x%X)\n", expr, value, value)
}

func runScan(in *inspect.Inspector, record string) {
	rec, err := in.Record()
	if err != nil {
		log.Printf("%v: %v", os.Args[0], err)
	}

	if record != "" {
		ouf, cerr := os.Create(record)
		if cerr != nil {
			log.Fatalf("%v: %v", record, cerr)
		}
		defer ouf.Close()
		if serr := rec.Save(ouf); serr != nil {
			log.Fatalf("%v: %v", record, serr)
		}
		return
	}

	if serr := rec.Save(os.Stdout); serr != nil {
		log.Fatalf("%v: %v", os.Args[0], serr)
	}
}
