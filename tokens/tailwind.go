package tokens

import (
	"strings"
)

// ToTailwindArbitraryValue converts a property value into a utility class
// for a given class prefix:
//
//	("palette:Primary", "bg")  → "bg-[var(--ph-primary)]"
//	("style:borderRadius", "rounded") → "rounded-[var(--ph-border-radius)]"
//	("#ff0000", "text")        → "text-[#ff0000]"
//	("red-500", "text")        → "text-red-500"
//
// Style references to keys off the variable allow-list are substituted by
// their value from the default style guide. Use Store.ToTailwindArbitraryValue
// to substitute from a site's own style guide.
func ToTailwindArbitraryValue(ref, prefix string) string {
	return toTailwind(ref, prefix, func(key string) (string, bool) {
		v, ok := DefaultStyleGuide[key]
		return v, ok
	})
}

// ToTailwindArbitraryValue converts a property value into a utility class,
// substituting utility tokens from this store's style guide.
func (s *Store) ToTailwindArbitraryValue(ref, prefix string) string {
	return toTailwind(ref, prefix, s.Style)
}

func toTailwind(ref, prefix string, lookup func(string) (string, bool)) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	switch {
	case IsPaletteRef(ref):
		return arbitrary(prefix, "var("+ResolvePalette(ref)+")")
	case IsStyleRef(ref):
		key := strings.TrimPrefix(ref, StylePrefix)
		if IsVariable(key) {
			return arbitrary(prefix, "var("+ResolveStyle(ref)+")")
		}
		v, ok := lookup(key)
		if !ok {
			// forward reference; the variable may be defined later
			return arbitrary(prefix, "var("+ResolveStyle(ref)+")")
		}
		return v
	case isArbitrary(ref):
		return arbitrary(prefix, strings.ReplaceAll(ref, " ", "_"))
	}
	if prefix == "" {
		return ref
	}
	return prefix + "-" + ref
}

func arbitrary(prefix, v string) string {
	if prefix == "" {
		return "[" + v + "]"
	}
	return prefix + "-[" + v + "]"
}

// isArbitrary is a predicate wether a value is a raw CSS value which has to
// be wrapped into arbitrary-value brackets.
func isArbitrary(v string) bool {
	if IsRawColor(v) || strings.ContainsAny(v, "()") {
		return true
	}
	c := v[0]
	return (c >= '0' && c <= '9') || c == '.' || (c == '-' && IsDimensionList(v))
}
