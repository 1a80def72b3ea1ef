package dom

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

type declaration struct {
	prop  string
	value string
}

// parseStyle parses an inline style attribute into ordered declarations.
// Properties are lower-cased; values keep their text, with !important
// appended back when present. An unparsable attribute yields no declarations.
func parseStyle(raw string) []declaration {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parsed, err := parser.ParseDeclarations(raw)
	if err != nil {
		return nil
	}
	out := make([]declaration, 0, len(parsed))
	for _, d := range parsed {
		prop := strings.ToLower(strings.TrimSpace(d.Property))
		value := strings.TrimSpace(d.Value)
		if prop == "" || value == "" {
			continue
		}
		if d.Important {
			value += " !important"
		}
		out = append(out, declaration{prop: prop, value: value})
	}
	return out
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		parts = append(parts, decl.prop+": "+decl.value)
	}
	return strings.Join(parts, "; ") + ";"
}
