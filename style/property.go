package style

import (
	"fmt"
	"strings"
)

// Property is a raw value of a node property. For example, with
//
//	background: palette:Primary
//
// a property value of "palette:Primary" is set. Wrapping the raw string
// into type Property gives a set of convenient predicates.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

// Prefixes of token references.
const (
	PalettePrefix = "palette:"
	StylePrefix   = "style:"
)

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsPaletteRef is a predicate wether p refers to a palette color.
func (p Property) IsPaletteRef() bool {
	return strings.HasPrefix(string(p), PalettePrefix)
}

// IsStyleRef is a predicate wether p refers to a style-guide value.
func (p Property) IsStyleRef() bool {
	return strings.HasPrefix(string(p), StylePrefix)
}

// IsTokenRef is a predicate wether p is a symbolic design-token reference.
func (p Property) IsTokenRef() bool {
	return p.IsPaletteRef() || p.IsStyleRef()
}

// TokenName returns the name part of a token reference, e.g. "Primary" for
// "palette:Primary". For other values it returns the empty string.
func (p Property) TokenName() string {
	switch {
	case p.IsPaletteRef():
		return strings.TrimPrefix(string(p), PalettePrefix)
	case p.IsStyleRef():
		return strings.TrimPrefix(string(p), StylePrefix)
	}
	return ""
}

// --- Viewports and states --------------------------------------------------

// Viewport is one of the responsive breakpoints an editor renders for.
type Viewport string

// Viewports of a page.
const (
	Mobile  Viewport = "mobile"
	Tablet  Viewport = "tablet"
	Desktop Viewport = "desktop"
)

// ParseViewport converts a string into a viewport.
func ParseViewport(s string) (Viewport, error) {
	switch v := Viewport(strings.ToLower(s)); v {
	case Mobile, Tablet, Desktop:
		return v, nil
	}
	return "", fmt.Errorf("unknown viewport %q", s)
}

// State is an interaction state with its own overrides.
type State string

// Interaction states. StateNone denotes a plain lookup.
const (
	StateNone  State = ""
	StateHover State = "hover"
	StateFocus State = "focus"
)
