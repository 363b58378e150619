package serial

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

// HexToBytes parses hex text into bytes. Whitespace anywhere is ignored,
// so "AA BB", "aabb" and "A ABB" all decode to the same two bytes. An odd
// number of hex digits or any other character is an error.
func HexToBytes(s string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if len(compact)%2 != 0 {
		return nil, fmt.Errorf("hex input has an odd number of digits (%d)", len(compact))
	}
	out, err := hex.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return out, nil
}

// BytesToHex renders b as upper-case two-digit groups separated by single
// spaces. HexToBytes inverts it exactly.
func BytesToHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for i, x := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", x)
	}
	return sb.String()
}

// BytesToDisplay renders b for the text view: printable ASCII stays as-is,
// everything else (control bytes, CR/LF included, and high bytes) becomes
// a \xNN escape so the log never breaks the layout.
func BytesToDisplay(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, x := range b {
		if x >= 0x20 && x <= 0x7E {
			sb.WriteByte(x)
		} else {
			fmt.Fprintf(&sb, "\\x%02X", x)
		}
	}
	return sb.String()
}
