package tokens

import (
	"strings"

	"github.com/stoewer/go-strcase"
)

// Prefixes of token references and of the CSS variables they map to.
const (
	PalettePrefix = "palette:"
	StylePrefix   = "style:"
	VarPrefix     = "--ph-"
)

// Identifier converts a token name into a lowercase hyphenated identifier.
// Spaces and camelCase boundaries become hyphens:
//
//	"Primary Text" → "primary-text"
//	"borderRadius" → "border-radius"
//
// Characters that are not allowed in a CSS identifier are dropped.
func Identifier(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	kebab := strcase.KebabCase(name)
	var b strings.Builder
	b.Grow(len(kebab))
	for _, r := range kebab {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return strings.Trim(b.String(), "-")
}

// VarName returns the CSS custom property for a token name.
func VarName(name string) string {
	return VarPrefix + Identifier(name)
}

// ResolvePalette maps a palette reference "palette:<Name>" to its CSS
// variable name. Unknown names still produce a deterministic name; callers
// fall back if the variable later turns out to be unset. A reference without
// the prefix is taken as a bare name.
func ResolvePalette(ref string) string {
	return VarName(strings.TrimPrefix(ref, PalettePrefix))
}

// ResolveStyle maps a style-guide reference "style:<Name>" to its CSS
// variable name, like ResolvePalette.
func ResolveStyle(ref string) string {
	return VarName(strings.TrimPrefix(ref, StylePrefix))
}

// IsPaletteRef is a predicate wether s is a palette reference.
func IsPaletteRef(s string) bool {
	return strings.HasPrefix(s, PalettePrefix)
}

// IsStyleRef is a predicate wether s is a style-guide reference.
func IsStyleRef(s string) bool {
	return strings.HasPrefix(s, StylePrefix)
}
