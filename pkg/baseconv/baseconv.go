// Package baseconv renders integers as binary and uppercase hexadecimal
// strings. Non-negative values use minimal unsigned digits; negative
// values use a fixed-width two's complement encoding.
package baseconv

import (
	"strconv"
	"strings"
)

// Fixed two's-complement widths for negative values. These are policy,
// not derived from input magnitude: negatives always render as exactly
// 10 bits and 10 hex digits. Values whose magnitude exceeds the width
// wrap silently to their low-order bits.
const (
	negativeBinaryBits = 10
	negativeHexBits    = 40
)

const hexDigits = "0123456789ABCDEF"

// ToBinary returns the binary representation of v. Zero renders as "0";
// other non-negative values have no leading zeros. Negative values render
// as 10-bit two's complement, so -1 is "1111111111".
func ToBinary(v int64) string {
	if v >= 0 {
		return strconv.FormatInt(v, 2)
	}

	unsigned := int64(1)<<negativeBinaryBits + v

	var b strings.Builder
	b.Grow(negativeBinaryBits)
	for i := negativeBinaryBits - 1; i >= 0; i-- {
		b.WriteByte('0' + byte((unsigned>>i)&1))
	}
	return b.String()
}

// ToHex returns the uppercase hexadecimal representation of v. Zero
// renders as "0"; other non-negative values have no leading zeros.
// Negative values render as 40-bit two's complement (10 hex digits), so
// -1 is "FFFFFFFFFF".
func ToHex(v int64) string {
	if v >= 0 {
		return strings.ToUpper(strconv.FormatInt(v, 16))
	}

	unsigned := int64(1)<<negativeHexBits + v

	var b strings.Builder
	b.Grow(negativeHexBits / 4)
	for shift := negativeHexBits - 4; shift >= 0; shift -= 4 {
		b.WriteByte(hexDigits[(unsigned>>shift)&0xF])
	}
	return b.String()
}
