package decoder

import "github.com/arloliu/irstream/protocol"

// isVariableTag classifies a tag encountered in the variable-accumulation
// position. isVar reports whether the tag opens a variable record at all;
// when it does, isEncodedVar distinguishes an encoded-variable word from a
// dictionary variable.
//
// The classification is positional and mode-dependent: the VarStrLen* tags
// are only dictionary-variable markers here (they are rejected in the
// logtype-length position), and each mode accepts only its own
// encoded-variable tag. The other mode's encoded-variable tag is NOT a
// variable tag, so it falls through to the logtype-length check and is
// rejected there as corruption.
func isVariableTag(tag protocol.Tag, mode protocol.Mode) (isEncodedVar bool, isVar bool) {
	switch tag {
	case protocol.VarStrLenUByte, protocol.VarStrLenUShort, protocol.VarStrLenInt:
		return false, true
	}

	switch mode {
	case protocol.ModeEightByte:
		if tag == protocol.VarEightByteEncoding {
			return true, true
		}
	case protocol.ModeFourByte:
		if tag == protocol.VarFourByteEncoding {
			return true, true
		}
	}

	return false, false
}
