// Package prompt renders user-supplied prompt templates against extraction
// fields. Substitution is literal: known {placeholder} names are replaced,
// unknown ones are left exactly as written, and doubled braces escape
// literal braces. No expression language, no recursion.
package prompt

import "strings"

// Render substitutes vars into tmpl. A placeholder is {name} with name
// looked up in vars; "{{" and "}}" emit literal braces. An unterminated
// brace run is copied through verbatim.
func Render(tmpl string, vars map[string]string) string {
	var b strings.Builder
	b.Grow(len(tmpl))
	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		switch {
		case c == '{' && i+1 < len(tmpl) && tmpl[i+1] == '{':
			b.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(tmpl) && tmpl[i+1] == '}':
			b.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				b.WriteString(tmpl[i:])
				return b.String()
			}
			name := tmpl[i+1 : i+end]
			if v, ok := vars[name]; ok {
				b.WriteString(v)
			} else {
				b.WriteString(tmpl[i : i+end+1])
			}
			i += end + 1
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
