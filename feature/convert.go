package feature

import (
	"strconv"
	"strings"

	"github.com/ezrec/cpuinspect/cpuid"
)

const (
	PLACEHOLDER = '.' // Substituted for non-printable packed bytes.
)

// BinaryString renders a register value as 32 binary characters, most
// significant bit first.
func BinaryString(value uint32) string {
	var sb strings.Builder
	for n := 31; n >= 0; n-- {
		if ((value >> n) & 1) == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParseBinary is the exact inverse of BinaryString. The text must be 32
// characters of '0' and '1'.
func ParseBinary(text string) (value uint32, err error) {
	if len(text) != 32 {
		err = ErrParseBinary(text)
		return
	}
	for _, ch := range text {
		value <<= 1
		switch ch {
		case '1':
			value |= 1
		case '0':
		default:
			value = 0
			err = ErrParseBinary(text)
			return
		}
	}
	return
}

// PackedASCII renders a register value as the four ASCII bytes it
// packs, least significant byte first. Vendor and brand strings pack
// their text across registers this way. Bytes outside the printable
// range 32..126 render as PLACEHOLDER.
func PackedASCII(value uint32) string {
	var sb strings.Builder
	for n := range 4 {
		ch := byte((value >> (8 * n)) & 0xff)
		if ch < 32 || ch > 126 {
			ch = PLACEHOLDER
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

// ParseRegister parses a register value from hexadecimal text, with or
// without a "0x" prefix, case-insensitive. Odd-length text gains a
// leading zero nibble. PackedASCII of the result always equals
// PackedASCII of the numeric value the text denotes; there is exactly
// one conversion path.
func ParseRegister(text string) (value uint32, err error) {
	word := strings.ToLower(strings.TrimSpace(text))
	word, _ = strings.CutPrefix(word, "0x")
	if word == "" || len(word) > 8 {
		err = ErrParseHex(text)
		return
	}
	if len(word)%2 == 1 {
		word = "0" + word
	}

	v64, perr := strconv.ParseUint(word, 16, 32)
	if perr != nil {
		err = ErrParseHex(text)
		return
	}

	value = uint32(v64)
	return
}

// VendorString extracts the 12-byte identity string from the leaf-0
// registers, packed across EBX, EDX, ECX in that order.
func VendorString(regs cpuid.Registers) string {
	return PackedASCII(regs.EBX) + PackedASCII(regs.EDX) + PackedASCII(regs.ECX)
}
