package lexer

const utf8RuneSelf = 0x80

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isOpByte reports whether b can form a punctuation token. Delimiters and
// quotes are handled before this check in the main loop.
func isOpByte(b byte) bool {
	switch b {
	case '!', '#', '$', '%', '&', '*', '+', ',', '-', '.', '/', ':', ';',
		'<', '=', '>', '?', '@', '\\', '^', '`', '|', '~':
		return true
	}
	return false
}
