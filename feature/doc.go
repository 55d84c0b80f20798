// Package feature decodes identification registers into named
// capability bits and text projections.
//
// Bit meanings are vendor-, leaf-, and register-specific, so the
// decoder is table-driven: one ordered 32-entry table per (vendor,
// leaf, register) combination, walked from bit 31 down to bit 0. The
// text projections cover the binary form of a register and the packed
// little-endian ASCII form used by vendor and brand strings.
package feature
