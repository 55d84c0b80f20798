package feature

import (
	"github.com/ezrec/cpuinspect/cpuid"
)

func init() {
	tables[TableKey{Vendor: VENDOR_AMD, Leaf: 0x1, Reg: cpuid.REG_ECX}] = amdLeaf1Ecx
	tables[TableKey{Vendor: VENDOR_AMD, Leaf: 0x1, Reg: cpuid.REG_EDX}] = amdLeaf1Edx
	tables[TableKey{Vendor: VENDOR_AMD, Leaf: 0x80000001, Reg: cpuid.REG_ECX}] = amdExt1Ecx
	tables[TableKey{Vendor: VENDOR_AMD, Leaf: 0x80000001, Reg: cpuid.REG_EDX}] = amdExt1Edx
}

var amdLeaf1Ecx = []Bit{
	{Pos: 31, Name: "Reserved for hypervisor use (RAZ)"},
	{Pos: 30, Name: "RDRAND instruction"},
	{Pos: 29, Name: "F16C half-precision convert"},
	{Pos: 28, Name: "AVX instructions"},
	{Pos: 27, Name: "OSXSAVE enabled"},
	{Pos: 26, Name: "XSAVE/XRSTOR states"},
	{Pos: 25, Name: "AES instructions (AESNI)"},
	{Pos: 24, Name: "Reserved"},
	{Pos: 23, Name: "POPCNT instruction"},
	{Pos: 22, Name: "MOVBE instruction"},
	{Pos: 21, Name: "x2APIC"},
	{Pos: 20, Name: "SSE4.2 instructions"},
	{Pos: 19, Name: "SSE4.1 instructions"},
	{Pos: 18, Name: "Reserved"},
	{Pos: 17, Name: "Reserved"},
	{Pos: 16, Name: "Reserved"},
	{Pos: 15, Name: "Reserved"},
	{Pos: 14, Name: "Reserved"},
	{Pos: 13, Name: "CMPXCHG16B instruction"},
	{Pos: 12, Name: "Fused multiply-add (FMA)"},
	{Pos: 11, Name: "Reserved"},
	{Pos: 10, Name: "Reserved"},
	{Pos: 9, Name: "SSSE3 instructions"},
	{Pos: 8, Name: "Reserved"},
	{Pos: 7, Name: "Reserved"},
	{Pos: 6, Name: "Reserved"},
	{Pos: 5, Name: "Reserved"},
	{Pos: 4, Name: "Reserved"},
	{Pos: 3, Name: "MONITOR/MWAIT instructions"},
	{Pos: 2, Name: "Reserved"},
	{Pos: 1, Name: "PCLMULQDQ instruction"},
	{Pos: 0, Name: "SSE3 instructions"},
}

var amdLeaf1Edx = []Bit{
	{Pos: 31, Name: "Reserved"},
	{Pos: 30, Name: "Reserved"},
	{Pos: 29, Name: "Reserved"},
	{Pos: 28, Name: "Max APIC IDs reserved field valid (HTT)"},
	{Pos: 27, Name: "Reserved"},
	{Pos: 26, Name: "SSE2 instructions"},
	{Pos: 25, Name: "SSE instructions"},
	{Pos: 24, Name: "FXSAVE/FXRSTOR instructions"},
	{Pos: 23, Name: "MMX instructions"},
	{Pos: 22, Name: "Reserved"},
	{Pos: 21, Name: "Reserved"},
	{Pos: 20, Name: "Reserved"},
	{Pos: 19, Name: "CLFLUSH instruction"},
	{Pos: 18, Name: "Reserved"},
	{Pos: 17, Name: "36-bit page size extension (PSE-36)"},
	{Pos: 16, Name: "Page attribute table (PAT)"},
	{Pos: 15, Name: "Conditional move (CMOV)"},
	{Pos: 14, Name: "Machine check architecture (MCA)"},
	{Pos: 13, Name: "Page global enable (PGE)"},
	{Pos: 12, Name: "Memory type range registers (MTRR)"},
	{Pos: 11, Name: "SYSENTER/SYSEXIT instructions (SEP)"},
	{Pos: 10, Name: "Reserved"},
	{Pos: 9, Name: "On-chip APIC"},
	{Pos: 8, Name: "CMPXCHG8B instruction (CX8)"},
	{Pos: 7, Name: "Machine check exception (MCE)"},
	{Pos: 6, Name: "Physical address extension (PAE)"},
	{Pos: 5, Name: "Model-specific registers (MSR)"},
	{Pos: 4, Name: "Time stamp counter (TSC)"},
	{Pos: 3, Name: "Page size extension (PSE)"},
	{Pos: 2, Name: "Debugging extensions (DE)"},
	{Pos: 1, Name: "Virtual 8086 mode enhancements (VME)"},
	{Pos: 0, Name: "x87 FPU on chip"},
}

var amdExt1Ecx = []Bit{
	{Pos: 31, Name: "Reserved"},
	{Pos: 30, Name: "Reserved"},
	{Pos: 29, Name: "MONITORX/MWAITX instructions"},
	{Pos: 28, Name: "Last level cache perf counters (PerfCtrExtLLC)"},
	{Pos: 27, Name: "Performance time stamp counter (PerfTsc)"},
	{Pos: 26, Name: "Data breakpoint extension (DataBkptExt)"},
	{Pos: 25, Name: "Reserved"},
	{Pos: 24, Name: "Northbridge perf counters (PerfCtrExtNB)"},
	{Pos: 23, Name: "Core perf counters (PerfCtrExtCore)"},
	{Pos: 22, Name: "Topology extensions"},
	{Pos: 21, Name: "Trailing bit manipulation (TBM)"},
	{Pos: 20, Name: "Reserved"},
	{Pos: 19, Name: "NodeId MSR"},
	{Pos: 18, Name: "Reserved"},
	{Pos: 17, Name: "Translation cache extension (TCE)"},
	{Pos: 16, Name: "FMA4 instructions"},
	{Pos: 15, Name: "Lightweight profiling (LWP)"},
	{Pos: 14, Name: "Reserved"},
	{Pos: 13, Name: "Watchdog timer (WDT)"},
	{Pos: 12, Name: "SKINIT and STGI instructions"},
	{Pos: 11, Name: "XOP instructions"},
	{Pos: 10, Name: "Instruction based sampling (IBS)"},
	{Pos: 9, Name: "OS visible workaround (OSVW)"},
	{Pos: 8, Name: "3DNow prefetch (PREFETCHW)"},
	{Pos: 7, Name: "Misaligned SSE mode"},
	{Pos: 6, Name: "SSE4A instructions"},
	{Pos: 5, Name: "Advanced bit manipulation (ABM/LZCNT)"},
	{Pos: 4, Name: "LOCK MOV CR0 as MOV CR8 (AltMovCr8)"},
	{Pos: 3, Name: "Extended APIC space"},
	{Pos: 2, Name: "Secure virtual machine (SVM)"},
	{Pos: 1, Name: "Core multi-processing legacy mode (CmpLegacy)"},
	{Pos: 0, Name: "LAHF/SAHF in 64-bit mode"},
}

var amdExt1Edx = []Bit{
	{Pos: 31, Name: "3DNow instructions"},
	{Pos: 30, Name: "Extended 3DNow instructions"},
	{Pos: 29, Name: "Long mode (LM)"},
	{Pos: 28, Name: "Reserved"},
	{Pos: 27, Name: "RDTSCP instruction"},
	{Pos: 26, Name: "1GB pages (Page1GB)"},
	{Pos: 25, Name: "Fast FXSAVE/FXRSTOR (FFXSR)"},
	{Pos: 24, Name: "FXSAVE/FXRSTOR instructions"},
	{Pos: 23, Name: "MMX instructions"},
	{Pos: 22, Name: "MMX extensions (MmxExt)"},
	{Pos: 21, Name: "Reserved"},
	{Pos: 20, Name: "No-execute page protection (NX)"},
	{Pos: 19, Name: "Reserved"},
	{Pos: 18, Name: "Reserved"},
	{Pos: 17, Name: "36-bit page size extension (PSE-36)"},
	{Pos: 16, Name: "Page attribute table (PAT)"},
	{Pos: 15, Name: "Conditional move (CMOV)"},
	{Pos: 14, Name: "Machine check architecture (MCA)"},
	{Pos: 13, Name: "Page global enable (PGE)"},
	{Pos: 12, Name: "Memory type range registers (MTRR)"},
	{Pos: 11, Name: "SYSCALL/SYSRET instructions"},
	{Pos: 10, Name: "Reserved"},
	{Pos: 9, Name: "On-chip APIC"},
	{Pos: 8, Name: "CMPXCHG8B instruction (CX8)"},
	{Pos: 7, Name: "Machine check exception (MCE)"},
	{Pos: 6, Name: "Physical address extension (PAE)"},
	{Pos: 5, Name: "Model-specific registers (MSR)"},
	{Pos: 4, Name: "Time stamp counter (TSC)"},
	{Pos: 3, Name: "Page size extension (PSE)"},
	{Pos: 2, Name: "Debugging extensions (DE)"},
	{Pos: 1, Name: "Virtual 8086 mode enhancements (VME)"},
	{Pos: 0, Name: "x87 FPU on chip"},
}
