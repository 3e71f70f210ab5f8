// Package report renders Readyscope results: placeholder templates plus
// terminal, JSON, and markdown renderers for score results.
package report

import (
	"fmt"
	"strings"
)

// MissingValueError reports the first template placeholder that has no
// supplied value.
type MissingValueError struct {
	Placeholder string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("no value supplied for placeholder {%s}", e.Placeholder)
}

// Fill substitutes {name}-style placeholders in the template with values
// from the mapping. Doubled braces escape literals: {{ renders as { and }}
// as }. Fails with *MissingValueError naming the first unresolved
// placeholder; unknown placeholders are never silently dropped.
func Fill(template string, values map[string]any) (string, error) {
	var sb strings.Builder
	sb.Grow(len(template))

	for i := 0; i < len(template); {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				sb.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				// Unterminated brace: treat as literal text.
				sb.WriteString(template[i:])
				return sb.String(), nil
			}
			name := template[i+1 : i+end]
			if !validPlaceholderName(name) {
				sb.WriteString(template[i : i+end+1])
				i += end + 1
				continue
			}
			value, ok := values[name]
			if !ok {
				return "", &MissingValueError{Placeholder: name}
			}
			sb.WriteString(fmt.Sprint(value))
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				sb.WriteByte('}')
				i += 2
				continue
			}
			sb.WriteByte('}')
			i++
		default:
			sb.WriteByte(c)
			i++
		}
	}

	return sb.String(), nil
}

// Placeholders returns the distinct placeholder names in the template, in
// order of first appearance.
func Placeholders(template string) []string {
	seen := make(map[string]bool)
	var names []string

	for i := 0; i < len(template); {
		if template[i] != '{' {
			i++
			continue
		}
		if i+1 < len(template) && template[i+1] == '{' {
			i += 2
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			break
		}
		name := template[i+1 : i+end]
		if validPlaceholderName(name) && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		i += end + 1
	}

	return names
}

// validPlaceholderName reports whether s is a non-empty identifier of
// letters, digits, and underscores.
func validPlaceholderName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}
