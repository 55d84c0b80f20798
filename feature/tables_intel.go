package feature

import (
	"github.com/ezrec/cpuinspect/cpuid"
)

func init() {
	tables[TableKey{Vendor: VENDOR_INTEL, Leaf: 0x1, Reg: cpuid.REG_ECX}] = intelLeaf1Ecx
	tables[TableKey{Vendor: VENDOR_INTEL, Leaf: 0x1, Reg: cpuid.REG_EDX}] = intelLeaf1Edx
	tables[TableKey{Vendor: VENDOR_INTEL, Leaf: 0x7, Reg: cpuid.REG_EBX}] = intelLeaf7Ebx
	tables[TableKey{Vendor: VENDOR_INTEL, Leaf: 0x7, Reg: cpuid.REG_ECX}] = intelLeaf7Ecx
	tables[TableKey{Vendor: VENDOR_INTEL, Leaf: 0x7, Reg: cpuid.REG_EDX}] = intelLeaf7Edx
}

var intelLeaf1Ecx = []Bit{
	{Pos: 31, Name: "Hypervisor present"},
	{Pos: 30, Name: "RDRAND instruction"},
	{Pos: 29, Name: "F16C half-precision convert"},
	{Pos: 28, Name: "AVX instructions"},
	{Pos: 27, Name: "OSXSAVE enabled"},
	{Pos: 26, Name: "XSAVE/XRSTOR states"},
	{Pos: 25, Name: "AES instructions (AESNI)"},
	{Pos: 24, Name: "TSC deadline timer"},
	{Pos: 23, Name: "POPCNT instruction"},
	{Pos: 22, Name: "MOVBE instruction"},
	{Pos: 21, Name: "x2APIC"},
	{Pos: 20, Name: "SSE4.2 instructions"},
	{Pos: 19, Name: "SSE4.1 instructions"},
	{Pos: 18, Name: "Direct cache access (DCA)"},
	{Pos: 17, Name: "Process-context identifiers (PCID)"},
	{Pos: 16, Name: "Reserved"},
	{Pos: 15, Name: "Perfmon and debug capability (PDCM)"},
	{Pos: 14, Name: "xTPR update control"},
	{Pos: 13, Name: "CMPXCHG16B instruction"},
	{Pos: 12, Name: "Fused multiply-add (FMA)"},
	{Pos: 11, Name: "Silicon debug (SDBG)"},
	{Pos: 10, Name: "L1 context ID (CNXT-ID)"},
	{Pos: 9, Name: "SSSE3 instructions"},
	{Pos: 8, Name: "Thermal monitor 2 (TM2)"},
	{Pos: 7, Name: "Enhanced SpeedStep (EIST)"},
	{Pos: 6, Name: "Safer mode extensions (SMX)"},
	{Pos: 5, Name: "Virtual machine extensions (VMX)"},
	{Pos: 4, Name: "CPL-qualified debug store (DS-CPL)"},
	{Pos: 3, Name: "MONITOR/MWAIT instructions"},
	{Pos: 2, Name: "64-bit debug store (DTES64)"},
	{Pos: 1, Name: "PCLMULQDQ instruction"},
	{Pos: 0, Name: "SSE3 instructions"},
}

var intelLeaf1Edx = []Bit{
	{Pos: 31, Name: "Pending break enable (PBE)"},
	{Pos: 30, Name: "Reserved"},
	{Pos: 29, Name: "Thermal monitor (TM)"},
	{Pos: 28, Name: "Max APIC IDs reserved field valid (HTT)"},
	{Pos: 27, Name: "Self snoop (SS)"},
	{Pos: 26, Name: "SSE2 instructions"},
	{Pos: 25, Name: "SSE instructions"},
	{Pos: 24, Name: "FXSAVE/FXRSTOR instructions"},
	{Pos: 23, Name: "MMX instructions"},
	{Pos: 22, Name: "Thermal monitor and clock control (ACPI)"},
	{Pos: 21, Name: "Debug store (DS)"},
	{Pos: 20, Name: "Reserved"},
	{Pos: 19, Name: "CLFLUSH instruction"},
	{Pos: 18, Name: "Processor serial number (PSN)"},
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

var intelLeaf7Ebx = []Bit{
	{Pos: 31, Name: "AVX512 vector length extensions (AVX512VL)"},
	{Pos: 30, Name: "AVX512 byte/word instructions (AVX512BW)"},
	{Pos: 29, Name: "SHA extensions"},
	{Pos: 28, Name: "AVX512 conflict detection (AVX512CD)"},
	{Pos: 27, Name: "AVX512 exponent/reciprocal (AVX512ER)"},
	{Pos: 26, Name: "AVX512 prefetch (AVX512PF)"},
	{Pos: 25, Name: "Processor trace (PT)"},
	{Pos: 24, Name: "CLWB instruction"},
	{Pos: 23, Name: "CLFLUSHOPT instruction"},
	{Pos: 22, Name: "Reserved"},
	{Pos: 21, Name: "AVX512 integer FMA (AVX512_IFMA)"},
	{Pos: 20, Name: "Supervisor mode access prevention (SMAP)"},
	{Pos: 19, Name: "ADX multi-precision add-carry"},
	{Pos: 18, Name: "RDSEED instruction"},
	{Pos: 17, Name: "AVX512 doubleword/quadword (AVX512DQ)"},
	{Pos: 16, Name: "AVX512 foundation (AVX512F)"},
	{Pos: 15, Name: "Resource director allocation (RDT-A)"},
	{Pos: 14, Name: "Memory protection extensions (MPX)"},
	{Pos: 13, Name: "FPU CS/DS deprecated"},
	{Pos: 12, Name: "Resource director monitoring (RDT-M)"},
	{Pos: 11, Name: "Restricted transactional memory (RTM)"},
	{Pos: 10, Name: "INVPCID instruction"},
	{Pos: 9, Name: "Enhanced REP MOVSB/STOSB (ERMS)"},
	{Pos: 8, Name: "BMI2 bit manipulation"},
	{Pos: 7, Name: "Supervisor mode execution prevention (SMEP)"},
	{Pos: 6, Name: "FDP exception only"},
	{Pos: 5, Name: "AVX2 instructions"},
	{Pos: 4, Name: "Hardware lock elision (HLE)"},
	{Pos: 3, Name: "BMI1 bit manipulation"},
	{Pos: 2, Name: "Software guard extensions (SGX)"},
	{Pos: 1, Name: "IA32_TSC_ADJUST MSR"},
	{Pos: 0, Name: "FSGSBASE instructions"},
}

var intelLeaf7Ecx = []Bit{
	{Pos: 31, Name: "Protection keys for supervisor pages (PKS)"},
	{Pos: 30, Name: "SGX launch configuration (SGX_LC)"},
	{Pos: 29, Name: "ENQCMD instruction"},
	{Pos: 28, Name: "MOVDIR64B instruction"},
	{Pos: 27, Name: "MOVDIRI instruction"},
	{Pos: 26, Name: "Reserved"},
	{Pos: 25, Name: "CLDEMOTE instruction"},
	{Pos: 24, Name: "Bus lock detection"},
	{Pos: 23, Name: "Key locker (KL)"},
	{Pos: 22, Name: "RDPID instruction"},
	{Pos: 21, Name: "MPX address width adjust bit 4"},
	{Pos: 20, Name: "MPX address width adjust bit 3"},
	{Pos: 19, Name: "MPX address width adjust bit 2"},
	{Pos: 18, Name: "MPX address width adjust bit 1"},
	{Pos: 17, Name: "MPX address width adjust bit 0"},
	{Pos: 16, Name: "57-bit linear addresses (LA57)"},
	{Pos: 15, Name: "Reserved"},
	{Pos: 14, Name: "AVX512 population count (AVX512_VPOPCNTDQ)"},
	{Pos: 13, Name: "Total memory encryption (TME)"},
	{Pos: 12, Name: "AVX512 bit algorithms (AVX512_BITALG)"},
	{Pos: 11, Name: "AVX512 neural network (AVX512_VNNI)"},
	{Pos: 10, Name: "VPCLMULQDQ instruction"},
	{Pos: 9, Name: "Vector AES (VAES)"},
	{Pos: 8, Name: "Galois field instructions (GFNI)"},
	{Pos: 7, Name: "Shadow stack (CET_SS)"},
	{Pos: 6, Name: "AVX512 vector byte manipulation 2 (AVX512_VBMI2)"},
	{Pos: 5, Name: "WAITPKG instructions"},
	{Pos: 4, Name: "Protection keys enabled (OSPKE)"},
	{Pos: 3, Name: "Protection keys for user pages (PKU)"},
	{Pos: 2, Name: "User mode instruction prevention (UMIP)"},
	{Pos: 1, Name: "AVX512 vector byte manipulation (AVX512_VBMI)"},
	{Pos: 0, Name: "PREFETCHWT1 instruction"},
}

var intelLeaf7Edx = []Bit{
	{Pos: 31, Name: "Speculative store bypass disable (SSBD)"},
	{Pos: 30, Name: "IA32_CORE_CAPABILITIES MSR"},
	{Pos: 29, Name: "IA32_ARCH_CAPABILITIES MSR"},
	{Pos: 28, Name: "L1 data cache flush (L1D_FLUSH)"},
	{Pos: 27, Name: "Single thread indirect branch predictors (STIBP)"},
	{Pos: 26, Name: "Speculation control (IBRS/IBPB)"},
	{Pos: 25, Name: "AMX 8-bit integer tiles (AMX-INT8)"},
	{Pos: 24, Name: "AMX tile architecture (AMX-TILE)"},
	{Pos: 23, Name: "AVX512 half precision (AVX512_FP16)"},
	{Pos: 22, Name: "AMX bfloat16 tiles (AMX-BF16)"},
	{Pos: 21, Name: "Reserved"},
	{Pos: 20, Name: "Indirect branch tracking (CET_IBT)"},
	{Pos: 19, Name: "Architectural LBRs"},
	{Pos: 18, Name: "PCONFIG instruction"},
	{Pos: 17, Name: "Reserved"},
	{Pos: 16, Name: "TSX suspend load tracking (TSXLDTRK)"},
	{Pos: 15, Name: "Hybrid part"},
	{Pos: 14, Name: "SERIALIZE instruction"},
	{Pos: 13, Name: "TSX force abort MSR"},
	{Pos: 12, Name: "Reserved"},
	{Pos: 11, Name: "RTM always aborts"},
	{Pos: 10, Name: "VERW buffer overwrite (MD_CLEAR)"},
	{Pos: 9, Name: "SRBDS mitigation MSR"},
	{Pos: 8, Name: "AVX512 intersect (AVX512_VP2INTERSECT)"},
	{Pos: 7, Name: "Reserved"},
	{Pos: 6, Name: "Reserved"},
	{Pos: 5, Name: "User interrupts (UINTR)"},
	{Pos: 4, Name: "Fast short REP MOV"},
	{Pos: 3, Name: "AVX512 multiply accumulation (AVX512_4FMAPS)"},
	{Pos: 2, Name: "AVX512 neural network word (AVX512_4VNNIW)"},
	{Pos: 1, Name: "SGX attestation services (SGX-KEYS)"},
	{Pos: 0, Name: "Reserved"},
}
