package templates

import (
	"fmt"
	"strings"
)

// FormatMessage substitutes named {placeholder} parameters into message.
// Doubled braces ("{{", "}}") produce literal braces. Substitution is
// all-or-nothing: a placeholder without a matching parameter returns
// ErrMissingSubstitution, an unterminated or empty placeholder returns
// ErrMalformedPlaceholder, and in both cases no partial result is produced.
func FormatMessage(message string, params map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(message))

	for i := 0; i < len(message); {
		switch message[i] {
		case '{':
			if i+1 < len(message) && message[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}

			end := strings.IndexByte(message[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated placeholder at offset %d", ErrMalformedPlaceholder, i)
			}

			name := message[i+1 : i+1+end]
			if name == "" || strings.ContainsRune(name, '{') {
				return "", fmt.Errorf("%w: %q", ErrMalformedPlaceholder, "{"+name+"}")
			}

			value, ok := params[name]
			if !ok {
				return "", fmt.Errorf("%w: %s", ErrMissingSubstitution, name)
			}

			b.WriteString(value)
			i += end + 2
		case '}':
			if i+1 < len(message) && message[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("%w: unmatched '}' at offset %d", ErrMalformedPlaceholder, i)
		default:
			b.WriteByte(message[i])
			i++
		}
	}

	return b.String(), nil
}
