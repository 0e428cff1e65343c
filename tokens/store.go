package tokens

import (
	"maps"
	"slices"
	"strings"
	"sync"
)

// PaletteEntry is one named color of the palette.
type PaletteEntry struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// DefaultPalette is the palette of a fresh site.
var DefaultPalette = []PaletteEntry{
	{Name: "Primary", Color: "#3b82f6"},
	{Name: "Secondary", Color: "#6366f1"},
	{Name: "Accent", Color: "orange-500"},
	{Name: "Neutral", Color: "gray-500"},
	{Name: "Background", Color: "white"},
	{Name: "Alternate Background", Color: "gray-100"},
	{Name: "Primary Text", Color: "gray-900"},
	{Name: "Secondary Text", Color: "gray-600"},
	{Name: "Alternate Text", Color: "#ffffff"},
}

// DefaultStyleGuide is the style guide of a fresh site. Keys on the
// variable allow-list (see IsVariable) hold CSS values, the others hold
// utility tokens.
var DefaultStyleGuide = map[string]string{
	"linkColor":         "palette:Primary",
	"borderColor":       "gray-200",
	"inputBorderColor":  "gray-300",
	"borderRadius":      "8px",
	"buttonRadius":      "6px",
	"inputRadius":       "4px",
	"containerPadding":  "24px",
	"sectionPadding":    "48px",
	"buttonPadding":     "12px 24px",
	"inputPadding":      "8px 12px",
	"containerGap":      "16px",
	"sectionGap":        "32px",
	"contentWidth":      "1200px",
	"borderWidth":       "1px",
	"headingFontWeight": "700",
	"bodyFontWeight":    "400",
	"fontFamily":        "font-sans",
	"headingFontFamily": "font-serif",
	"shadowStyle":       "shadow-md",
	"buttonStyle":       "rounded-md",
}

// Store holds the palette and the style guide of a site. A store is safe
// for concurrent reads; edits are serialized.
type Store struct {
	sync.RWMutex
	palette    []PaletteEntry
	styleGuide map[string]string
}

// Option configures a store at construction time.
type Option func(*Store)

// WithPalette replaces the default palette.
func WithPalette(palette []PaletteEntry) Option {
	return func(s *Store) {
		s.palette = slices.Clone(palette)
	}
}

// WithStyleGuide overlays style-guide values over the defaults.
func WithStyleGuide(guide map[string]string) Option {
	return func(s *Store) {
		maps.Copy(s.styleGuide, guide)
	}
}

// NewStore creates a store initialised with the default tokens.
func NewStore(opts ...Option) *Store {
	s := &Store{
		palette:    slices.Clone(DefaultPalette),
		styleGuide: maps.Clone(DefaultStyleGuide),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Palette returns a copy of the palette, in order.
func (s *Store) Palette() []PaletteEntry {
	s.RLock()
	defer s.RUnlock()
	return slices.Clone(s.palette)
}

// StyleGuide returns a copy of the style guide.
func (s *Store) StyleGuide() map[string]string {
	s.RLock()
	defer s.RUnlock()
	return maps.Clone(s.styleGuide)
}

// SetColor sets a palette color. A new name is appended at the end of the
// palette, an existing one keeps its position.
func (s *Store) SetColor(name, color string) {
	s.Lock()
	defer s.Unlock()
	for i := range s.palette {
		if s.palette[i].Name == name {
			s.palette[i].Color = color
			return
		}
	}
	s.palette = append(s.palette, PaletteEntry{Name: name, Color: color})
}

// SetStyle sets a style-guide value.
func (s *Store) SetStyle(key, value string) {
	s.Lock()
	defer s.Unlock()
	s.styleGuide[key] = value
}

// Color returns the palette color for a name. Names match exactly first,
// then by identifier, so "primary-text" finds "Primary Text".
func (s *Store) Color(name string) (string, bool) {
	s.RLock()
	defer s.RUnlock()
	return lookupColor(s.palette, name)
}

func lookupColor(palette []PaletteEntry, name string) (string, bool) {
	for _, e := range palette {
		if e.Name == name {
			return e.Color, true
		}
	}
	id := Identifier(name)
	for _, e := range palette {
		if Identifier(e.Name) == id {
			return e.Color, true
		}
	}
	return "", false
}

// Style returns the style-guide value for a key.
func (s *Store) Style(key string) (string, bool) {
	s.RLock()
	defer s.RUnlock()
	v, ok := s.styleGuide[key]
	return v, ok
}

// ResolvePalette is the store-bound variant of package function
// ResolvePalette. The variable name does not depend on the store contents.
func (s *Store) ResolvePalette(ref string) string {
	return ResolvePalette(ref)
}

// ResolveStyle is the store-bound variant of package function ResolveStyle.
func (s *Store) ResolveStyle(ref string) string {
	return ResolveStyle(ref)
}

// Value returns the concrete value behind a token reference: palette colors
// resolved to a color string, style values with nested references
// followed. Non-references are returned unchanged with ok = true.
func (s *Store) Value(ref string) (string, bool) {
	return s.value(ref, 0)
}

const maxRefDepth = 8

func (s *Store) value(ref string, depth int) (string, bool) {
	if depth > maxRefDepth {
		tracer().Errorf("tokens: reference chain too deep at %q", ref)
		return "", false
	}
	switch {
	case IsPaletteRef(ref):
		c, ok := s.Color(strings.TrimPrefix(ref, PalettePrefix))
		if !ok {
			return "", false
		}
		if IsPaletteRef(c) || IsStyleRef(c) {
			return s.value(c, depth+1)
		}
		return ResolveColor(c), true
	case IsStyleRef(ref):
		v, ok := s.Style(strings.TrimPrefix(ref, StylePrefix))
		if !ok {
			return "", false
		}
		if IsPaletteRef(v) || IsStyleRef(v) {
			return s.value(v, depth+1)
		}
		return v, true
	}
	return ref, true
}
