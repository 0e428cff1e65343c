package tokens

import (
	"fmt"
	"slices"
	"strings"
)

// variableKeys is the allow-list of style-guide keys emitted as CSS
// variables, grouped by the kind of value they hold.
var variableKeys = map[string]valueKind{
	"linkColor":         kindColor,
	"borderColor":       kindColor,
	"inputBorderColor":  kindColor,
	"borderRadius":      kindRadius,
	"buttonRadius":      kindRadius,
	"inputRadius":       kindRadius,
	"containerPadding":  kindPadding,
	"sectionPadding":    kindPadding,
	"buttonPadding":     kindPadding,
	"inputPadding":      kindPadding,
	"containerGap":      kindGap,
	"sectionGap":        kindGap,
	"contentWidth":      kindWidth,
	"borderWidth":       kindWidth,
	"headingFontWeight": kindFontWeight,
	"bodyFontWeight":    kindFontWeight,
}

type valueKind int

const (
	kindColor valueKind = iota + 1
	kindRadius
	kindPadding
	kindGap
	kindWidth
	kindFontWeight
)

// IsVariable is a predicate wether a style-guide key is emitted as a CSS
// variable. Keys off the allow-list are utility tokens and are substituted
// by value.
func IsVariable(key string) bool {
	_, ok := variableKeys[key]
	return ok
}

// VariableKeys returns the allow-list of style-guide keys, sorted.
func VariableKeys() []string {
	keys := make([]string, 0, len(variableKeys))
	for k := range variableKeys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Emit renders the store's tokens, see EmitVariables.
func (s *Store) Emit() string {
	s.RLock()
	defer s.RUnlock()
	return EmitVariables(s.palette, s.styleGuide)
}

// EmitVariables renders a palette and a style guide into a single
//
//	:root { --ph-…: value; … }
//
// block. Palette entries come first, in palette order, followed by the
// allow-listed style-guide keys in sorted order. Named utility colors are
// resolved to concrete colors; names that cannot be resolved are emitted
// unchanged. Token references inside values become var() references.
// Entries with an empty value are left out, as are radii, paddings, gaps
// and widths whose value is not a fitting CSS dimension.
func EmitVariables(palette []PaletteEntry, styleGuide map[string]string) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	count := 0
	emit := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			tracer().Debugf("tokens: skipping empty token %q", name)
			return
		}
		fmt.Fprintf(&b, "  %s: %s;\n", VarName(name), value)
		count++
	}
	for _, e := range palette {
		emit(e.Name, emittedValue(e.Color, kindColor))
	}
	keys := make([]string, 0, len(styleGuide))
	for k := range styleGuide {
		if IsVariable(k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := checkDimensions(styleGuide[k], variableKeys[k]); err != nil {
			tracer().Infof("tokens: skipping %s: %v", k, err)
			continue
		}
		emit(k, emittedValue(styleGuide[k], variableKeys[k]))
	}
	b.WriteString("}\n")
	tracer().Debugf("tokens: emitted %d variables", count)
	return b.String()
}

func emittedValue(v string, kind valueKind) string {
	switch {
	case IsPaletteRef(v):
		return "var(" + ResolvePalette(v) + ")"
	case IsStyleRef(v):
		return "var(" + ResolveStyle(v) + ")"
	case kind == kindColor:
		return ResolveColor(v)
	}
	return v
}
