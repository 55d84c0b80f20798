// Package cpuid issues the processor identification instruction and
// enumerates the space of queries it answers.
//
// A query is addressed by a leaf and a sub-leaf index and returns four
// 32-bit registers. The probe is a direct invocation of the instruction
// with no caching or reinterpretation; the Enumerator discovers, at
// runtime, how many leaves and sub-leaves the host answers. A Recording
// captures probe results in a text chart so the same analysis can be
// replayed without the host processor.
package cpuid
