package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// EscapeName turns an arbitrary column name into a valid XML element or
// attribute name. Characters outside [A-Za-z0-9_.-] (and a leading digit,
// '-' or '.') are written as _xHHHH_, or _xHHHHHHHH_ above the BMP. An
// underscore that would otherwise start such a sequence is itself escaped as
// _x005F_, so [UnescapeName] restores the original exactly.
func EscapeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for i, r := range name {
		switch {
		case r == '_' && strings.HasPrefix(name[i:], "_x"):
			b.WriteString("_x005F_")
		case isNameRune(r, b.Len() == 0):
			b.WriteRune(r)
		case r > 0xFFFF:
			fmt.Fprintf(&b, "_x%08X_", r)
		default:
			fmt.Fprintf(&b, "_x%04X_", r)
		}
	}

	return b.String()
}

// UnescapeName reverses [EscapeName]. Sequences that are not well-formed
// escapes are kept verbatim, so names from foreign documents pass through.
func UnescapeName(name string) string {
	if !strings.Contains(name, "_x") {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))

	for i := 0; i < len(name); {
		if r, n, ok := decodeEscape(name[i:]); ok {
			b.WriteRune(r)
			i += n
			continue
		}
		b.WriteByte(name[i])
		i++
	}

	return b.String()
}

func decodeEscape(s string) (rune, int, bool) {
	if !strings.HasPrefix(s, "_x") {
		return 0, 0, false
	}
	for _, width := range []int{4, 8} {
		end := 2 + width
		if len(s) <= end || s[end] != '_' {
			continue
		}
		v, err := strconv.ParseUint(s[2:end], 16, 32)
		if err != nil || v > 0x10FFFF {
			continue
		}
		return rune(v), end + 1, true
	}
	return 0, 0, false
}

// isNameRune accepts the ASCII subset of the XML Name production.
func isNameRune(r rune, first bool) bool {
	switch {
	case 'A' <= r && r <= 'Z', 'a' <= r && r <= 'z', r == '_':
		return true
	case '0' <= r && r <= '9', r == '-', r == '.':
		return !first
	default:
		return false
	}
}
