package feature

// DecodedBit is one table entry applied to a register value.
type DecodedBit struct {
	Pos  int    // Bit position, 0 to 31.
	Set  bool   // Extracted value of the bit.
	Name string // Capability description carried from the table.
}

// checkTable verifies the structural invariant of a bit table: exactly
// 32 entries, positions 31 down to 0 each appearing exactly once.
func checkTable(bits []Bit) (err error) {
	if len(bits) != 32 {
		err = ErrTableInvalid(len(bits))
		return
	}
	for n, bit := range bits {
		if bit.Pos != 31-n {
			err = ErrTableInvalid(n)
			return
		}
	}
	return
}

// Decode applies the bit table to one register value, producing one
// entry per table row in table order (most significant bit first).
// The table must be a complete ordered enumeration of all 32 positions;
// a malformed table is rejected with ErrTableInvalid.
func Decode(bits []Bit, value uint32) (decoded []DecodedBit, err error) {
	err = checkTable(bits)
	if err != nil {
		return
	}

	decoded = make([]DecodedBit, 0, len(bits))
	for _, bit := range bits {
		decoded = append(decoded, DecodedBit{
			Pos:  bit.Pos,
			Set:  ((value >> bit.Pos) & 1) == 1,
			Name: bit.Name,
		})
	}

	return
}
