package cpuid

// rawCpuid executes the CPUID instruction with the given leaf in EAX and
// sub-leaf in ECX. Implemented in cpuid_amd64.s.
//
//go:noescape
func rawCpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

// NativeProbe returns a ProbeFunc backed by the host processor's
// identification instruction. The capability is resolved at build time;
// there is no runtime failure mode on this architecture.
func NativeProbe() (probe ProbeFunc, err error) {
	probe = func(leaf Leaf, subleaf Subleaf) (regs Registers) {
		regs.EAX, regs.EBX, regs.ECX, regs.EDX = rawCpuid(uint32(leaf), uint32(subleaf))
		return
	}
	return
}
