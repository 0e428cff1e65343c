package style

import (
	"github.com/npillmayer/pagetree/node"
)

// Resolution is the outcome of a property lookup.
type Resolution struct {
	Value  Property       // resolved value, or the caller's default
	Source node.ScopeName // scope the value was found in, ScopeNone on a miss
}

// Found is a predicate wether the value came from one of the scopes rather
// than from the caller's default.
func (r Resolution) Found() bool {
	return r.Source != node.ScopeNone
}

// Cascade returns the ordered list of scopes consulted for a lookup in a
// given viewport and state. An unknown viewport contributes no scope, so
// the lookup falls straight to root.
func Cascade(viewport Viewport, state State) []node.ScopeName {
	order := make([]node.ScopeName, 0, 3)
	switch state {
	case StateHover:
		order = append(order, node.ScopeHover)
	case StateFocus:
		order = append(order, node.ScopeFocus)
	}
	switch viewport {
	case Mobile:
		order = append(order, node.ScopeMobile)
	case Tablet:
		order = append(order, node.ScopeTablet)
	case Desktop:
		order = append(order, node.ScopeDesktop)
	}
	return append(order, node.ScopeRoot)
}

// Resolve gets the value of a property for the active viewport. The search
// cascades from the viewport scope to root; the first scope defining key
// wins. If no scope defines key, dflt is returned with Source ScopeNone.
//
// Token references are returned as they are.
func Resolve(key string, viewport Viewport, props *node.Props, dflt Property) Resolution {
	return ResolveState(key, StateNone, viewport, props, dflt)
}

// ResolveState gets the value of a property for an interaction state in the
// active viewport, cascading state → viewport → root.
func ResolveState(key string, state State, viewport Viewport, props *node.Props, dflt Property) Resolution {
	for _, scope := range Cascade(viewport, state) {
		if p, ok := GetLocalProperty(props, scope, key); ok {
			return Resolution{Value: p, Source: scope}
		}
	}
	tracer().Debugf("style: cascade miss for key %s in %s/%s", key, viewport, state)
	return Resolution{Value: dflt, Source: node.ScopeNone}
}

// GetLocalProperty returns a property value if it is set locally in one
// scope of a property bag. No cascading is performed. An explicit empty
// string counts as set.
func GetLocalProperty(props *node.Props, scope node.ScopeName, key string) (Property, bool) {
	v, ok := props.Scope(scope).Get(key)
	return Property(v), ok
}

// Effective flattens a property bag into the values in effect for a viewport
// and state, one entry per key defined anywhere along the cascade. The
// custom scope is not part of any cascade and is never included.
func Effective(viewport Viewport, state State, props *node.Props) map[string]Property {
	order := Cascade(viewport, state)
	eff := make(map[string]Property)
	// walk from the base layer up, stronger scopes overwrite
	for i := len(order) - 1; i >= 0; i-- {
		for k, v := range props.Scope(order[i]) {
			eff[k] = Property(v)
		}
	}
	return eff
}
