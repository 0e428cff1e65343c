package node

import (
	"fmt"
	"maps"
)

// Scope is one named subdivision of a node's property bag, e.g. the
// overrides for the mobile viewport. A nil scope is absent; an empty,
// non-nil scope is present but defines no keys. Neither one shadows the
// scopes below it in a cascade.
type Scope map[string]string

// Get returns the value for key together with an indicator wether the key
// is defined in this scope. An explicit empty string is a defined value.
func (s Scope) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s[key]
	return v, ok
}

// Has is a predicate wether key is defined in this scope.
func (s Scope) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// ScopeName identifies a scope within a property bag.
type ScopeName string

// The fixed set of scopes a property bag is made of.
const (
	ScopeNone    ScopeName = ""
	ScopeRoot    ScopeName = "root"
	ScopeMobile  ScopeName = "mobile"
	ScopeTablet  ScopeName = "tablet"
	ScopeDesktop ScopeName = "desktop"
	ScopeHover   ScopeName = "hover"
	ScopeFocus   ScopeName = "focus"
	ScopeCustom  ScopeName = "custom"
)

// AllScopes lists every scope of a property bag, base layer first.
var AllScopes = [...]ScopeName{
	ScopeRoot, ScopeMobile, ScopeTablet, ScopeDesktop, ScopeHover, ScopeFocus, ScopeCustom,
}

func (n ScopeName) String() string {
	if n == ScopeNone {
		return "<none>"
	}
	return string(n)
}

// ParseScopeName converts a string into a scope name. It returns an error
// for strings not naming one of the fixed scopes.
func ParseScopeName(s string) (ScopeName, error) {
	for _, n := range AllScopes {
		if string(n) == s {
			return n, nil
		}
	}
	return ScopeNone, fmt.Errorf("unknown property scope %q", s)
}

// Props is the property bag of a node. Scopes are fixed fields rather than
// an open dictionary, which keeps every cascade order exhaustive.
type Props struct {
	Root    Scope `json:"root"`
	Mobile  Scope `json:"mobile"`
	Tablet  Scope `json:"tablet"`
	Desktop Scope `json:"desktop"`
	Hover   Scope `json:"hover"`
	Focus   Scope `json:"focus"`
	Custom  Scope `json:"custom"`
}

// Scope returns the scope for a name. Unknown names and ScopeNone return
// nil, i.e. an absent scope.
func (p *Props) Scope(name ScopeName) Scope {
	if p == nil {
		return nil
	}
	switch name {
	case ScopeRoot:
		return p.Root
	case ScopeMobile:
		return p.Mobile
	case ScopeTablet:
		return p.Tablet
	case ScopeDesktop:
		return p.Desktop
	case ScopeHover:
		return p.Hover
	case ScopeFocus:
		return p.Focus
	case ScopeCustom:
		return p.Custom
	}
	return nil
}

func (p *Props) slot(name ScopeName) *Scope {
	switch name {
	case ScopeRoot:
		return &p.Root
	case ScopeMobile:
		return &p.Mobile
	case ScopeTablet:
		return &p.Tablet
	case ScopeDesktop:
		return &p.Desktop
	case ScopeHover:
		return &p.Hover
	case ScopeFocus:
		return &p.Focus
	case ScopeCustom:
		return &p.Custom
	}
	return nil
}

// Set a property's value in exactly one scope. The scope is created if it
// is absent. Setting an empty string is an explicit override, not a removal.
func (p *Props) Set(name ScopeName, key, value string) error {
	slot := p.slot(name)
	if slot == nil {
		return fmt.Errorf("cannot set property %q: unknown scope %q", key, name)
	}
	if *slot == nil {
		*slot = make(Scope)
	}
	(*slot)[key] = value
	return nil
}

// Unset removes a key from one scope, letting the cascade fall through to
// lower scopes again.
func (p *Props) Unset(name ScopeName, key string) {
	if slot := p.slot(name); slot != nil && *slot != nil {
		delete(*slot, key)
	}
}

// Copy returns a deep copy of the property bag. Absent scopes stay absent.
func (p Props) Copy() Props {
	return Props{
		Root:    maps.Clone(p.Root),
		Mobile:  maps.Clone(p.Mobile),
		Tablet:  maps.Clone(p.Tablet),
		Desktop: maps.Clone(p.Desktop),
		Hover:   maps.Clone(p.Hover),
		Focus:   maps.Clone(p.Focus),
		Custom:  maps.Clone(p.Custom),
	}
}
