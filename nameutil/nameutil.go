// Package nameutil provides identifier mangling for the generated target
// language. It is a pure string utility; the lowering engine invokes it for
// every non-receiver parameter name.
package nameutil

import "strings"

// Target-language reserved words that cannot appear as parameter names.
var keywords = map[string]struct{}{
	"abstract": {}, "as": {}, "async": {}, "await": {}, "become": {},
	"box": {}, "break": {}, "const": {}, "continue": {}, "crate": {},
	"do": {}, "dyn": {}, "else": {}, "enum": {}, "extern": {},
	"false": {}, "final": {}, "fn": {}, "for": {}, "if": {},
	"impl": {}, "in": {}, "let": {}, "loop": {}, "macro": {},
	"match": {}, "mod": {}, "move": {}, "mut": {}, "override": {},
	"priv": {}, "pub": {}, "ref": {}, "return": {}, "self": {},
	"static": {}, "struct": {}, "super": {}, "trait": {}, "true": {},
	"try": {}, "type": {}, "typeof": {}, "unsafe": {}, "unsized": {},
	"use": {}, "virtual": {}, "where": {}, "while": {}, "yield": {},
}

// MangleKeywords maps a reserved identifier to a safe spelling by appending
// an underscore. Non-reserved names pass through unchanged.
func MangleKeywords(name string) string {
	if _, reserved := keywords[name]; reserved {
		return name + "_"
	}
	return name
}

// IsKeyword reports whether name is reserved in the target language.
func IsKeyword(name string) bool {
	_, reserved := keywords[name]
	return reserved
}

// SnakeCase converts kebab-case or CamelCase to snake_case. Used when
// importing foreign identifier conventions into descriptor names.
func SnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '-' || r == ' ':
			b.WriteByte('_')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				prev := s[i-1]
				if prev != '_' && prev != '-' && (prev < 'A' || prev > 'Z') {
					b.WriteByte('_')
				}
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
