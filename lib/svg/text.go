package svg

import (
	"encoding/xml"
	"strings"
)

// EscapeText escapes s for use as XML character data or a quoted attribute
// value. Plain printable ASCII is returned as is.
func EscapeText(s string) string {
	if isPlain(s) {
		return s
	}
	b := &strings.Builder{}
	_ = xml.EscapeText(b, []byte(s))
	return b.String()
}

func isPlain(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c < 0x20, c >= 0x7f:
			return false
		case c == '<', c == '>', c == '&', c == '\'', c == '"':
			return false
		}
	}
	return true
}
