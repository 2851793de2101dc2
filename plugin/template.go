package plugin

import (
	"fmt"
	"strings"
)

// expandTemplate substitutes {name} placeholders in tpl with values from vars.
// Doubled braces escape a literal brace. Unknown or unterminated placeholders
// are errors, matching the strictness of the URL template contract.
func expandTemplate(tpl string, vars map[string]string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(tpl); {
		switch tpl[i] {
		case '{':
			if i+1 < len(tpl) && tpl[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tpl[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated placeholder in template %q", tpl)
			}
			name := tpl[i+1 : i+end]
			val, ok := vars[name]
			if !ok {
				return "", fmt.Errorf("unknown placeholder %q in template %q", name, tpl)
			}
			b.WriteString(val)
			i += end + 1
		case '}':
			if i+1 < len(tpl) && tpl[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("unmatched '}' in template %q", tpl)
		default:
			b.WriteByte(tpl[i])
			i++
		}
	}
	return b.String(), nil
}
