package templates

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
)

// Placeholders are "$name" or "${name}", "$$" is a literal dollar sign.
// Any other "$" is invalid.
var placeholderRegex = regexp.MustCompile(`(?i)\$(?:(\$)|([_a-z][_a-z0-9]*)|\{([_a-z][_a-z0-9]*)\}|())`)

// Substitute replaces every placeholder of tmpl with its value. A placeholder
// with no value or a malformed "$" fails the whole substitution.
func Substitute(tmpl string, values map[string]string) (string, error) {
	var (
		out  strings.Builder
		last int
	)

	for _, m := range placeholderRegex.FindAllStringSubmatchIndex(tmpl, -1) {
		out.WriteString(tmpl[last:m[0]])
		last = m[1]

		switch {
		case m[2] >= 0:
			out.WriteByte('$')
		case m[4] >= 0 || m[6] >= 0:
			name := submatch(tmpl, m, 2)
			if name == "" {
				name = submatch(tmpl, m, 3)
			}
			value, ok := values[name]
			if !ok {
				return "", errors.InvalidArgumentf("no value for placeholder $%s", name)
			}
			out.WriteString(value)
		default:
			line := strings.Count(tmpl[:m[0]], "\n") + 1
			col := m[0] - strings.LastIndex(tmpl[:m[0]], "\n")
			return "", errors.InvalidArgumentf("invalid placeholder at line %d, col %d", line, col)
		}
	}

	out.WriteString(tmpl[last:])
	return out.String(), nil
}

func submatch(s string, m []int, group int) string {
	start, end := m[2*group], m[2*group+1]
	if start < 0 {
		return ""
	}
	return s[start:end]
}
