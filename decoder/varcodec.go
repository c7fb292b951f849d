package decoder

import "strconv"

// DecodeIntegerVar renders an integer-encoded variable word as its decimal
// text. The word is the integer's value in two's complement at the mode's
// width.
func DecodeIntegerVar[T encodedVariable](encodedVar T) string {
	return strconv.FormatInt(int64(encodedVar), 10)
}

// DecodeFloatVar renders a float-encoded variable word back into the decimal
// text the encoder consumed.
//
// The word packs, from the least significant bit up: the decimal point's
// position from the right minus 1, the digit count minus 1, the digits as a
// plain integer, and the sign in the most significant bit. Eight-byte words
// use 4+4 bits for the two small fields and 54 bits for the digits;
// four-byte words use 3+3 bits and 25 digit bits.
func DecodeFloatVar[T encodedVariable](encodedVar T) string {
	var (
		decimalPointPos int
		numDigits       int
		digits          uint64
		negative        bool
	)

	switch v := any(encodedVar).(type) {
	case int64:
		decimalPointPos = int(v&0x0F) + 1
		numDigits = int((v>>4)&0x0F) + 1
		digits = uint64(v>>8) & 0x003F_FFFF_FFFF_FFFF
		negative = v < 0
	case int32:
		decimalPointPos = int(v&0x07) + 1
		numDigits = int((v>>3)&0x07) + 1
		digits = uint64(v>>6) & 0x01FF_FFFF
		negative = v < 0
	}

	length := numDigits + 1
	if negative {
		length++
	}
	value := make([]byte, length)

	remaining := length
	if negative {
		value[0] = '-'
		remaining--
	}

	// Write the digits right of the decimal point, from the right.
	pos := length - 1
	if stop := length - 1 - decimalPointPos; stop >= 0 {
		for ; pos > stop; pos-- {
			value[pos] = byte('0' + digits%10)
			digits /= 10
			remaining--
		}
	}

	value[pos] = '.'
	pos--
	remaining--

	// Write the digits left of the decimal point.
	for remaining > 0 {
		value[pos] = byte('0' + digits%10)
		digits /= 10
		pos--
		remaining--
	}

	return string(value)
}
