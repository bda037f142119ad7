package validators

// IsHexText reports whether b, read as text, is a hexadecimal string: an
// optional "0x" or "0X" prefix followed by a non-empty, even-length run of
// hex digits.
func IsHexText(b []byte) bool {
	if len(b) >= 2 && b[0] == '0' && (b[1] == 'x' || b[1] == 'X') {
		b = b[2:]
	}

	if len(b) == 0 || len(b)%2 != 0 {
		return false
	}

	for _, c := range b {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}

	return true
}
