package tokenid

import "strings"

// PadHex left-pads the digit portion of a 0x-prefixed hex string with
// zeros until the digits reach totalLength-2, the prefix counting
// toward totalLength. Strings already long enough pass through
// unchanged; the function never truncates.
//
// Inputs without the prefix fail with a FormatError wrapping
// ErrMissingHexPrefix. This is the codec's only failing operation.
func PadHex(s string, totalLength int) (string, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", &FormatError{Input: s, Err: ErrMissingHexPrefix}
	}
	digits := s[2:]
	if want := totalLength - 2; len(digits) < want {
		digits = strings.Repeat("0", want-len(digits)) + digits
	}
	return s[:2] + digits, nil
}

// MustPadHex is like PadHex but panics on error.
// Use only with strings known to carry the prefix.
func MustPadHex(s string, totalLength int) string {
	padded, err := PadHex(s, totalLength)
	if err != nil {
		panic(err)
	}
	return padded
}
