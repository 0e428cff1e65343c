package style_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/pagetree/node"
	"github.com/npillmayer/pagetree/style"
)

func TestCascadeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagetree.style")
	defer teardown()
	//
	bag := &node.Props{
		Root:   node.Scope{"x": "A"},
		Mobile: node.Scope{"x": "B"},
	}
	r := style.Resolve("x", style.Mobile, bag, "")
	assert.Equal(t, style.Property("B"), r.Value)
	assert.Equal(t, node.ScopeMobile, r.Source)

	r = style.Resolve("x", style.Desktop, bag, "")
	assert.Equal(t, style.Property("A"), r.Value)
	assert.Equal(t, node.ScopeRoot, r.Source)

	r = style.Resolve("x", style.Mobile, &node.Props{Root: node.Scope{"x": "A"}}, "")
	assert.Equal(t, style.Property("A"), r.Value)
}

func TestSiblingViewportsDoNotStack(t *testing.T) {
	bag := &node.Props{
		Root:   node.Scope{"x": "A"},
		Tablet: node.Scope{"x": "T"},
	}
	for _, vp := range []style.Viewport{style.Mobile, style.Desktop} {
		r := style.Resolve("x", vp, bag, "")
		assert.Equal(t, style.Property("A"), r.Value, "viewport %s", vp)
	}
}

func TestCascadeMissUsesDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagetree.style")
	defer teardown()
	//
	r := style.Resolve("width", style.Tablet, &node.Props{}, "w-full")
	assert.Equal(t, style.Property("w-full"), r.Value)
	assert.False(t, r.Found())
	assert.Equal(t, node.ScopeNone, r.Source)

	r = style.Resolve("width", style.Tablet, nil, "w-auto")
	assert.Equal(t, style.Property("w-auto"), r.Value, "nil bag behaves like an empty one")
}

func TestExplicitEmptyStopsCascade(t *testing.T) {
	bag := &node.Props{
		Root:   node.Scope{"shadow": "shadow-lg"},
		Mobile: node.Scope{"shadow": ""},
		Tablet: node.Scope{}, // present, but defines nothing
	}
	r := style.Resolve("shadow", style.Mobile, bag, "fallback")
	assert.True(t, r.Found())
	assert.Equal(t, style.NullStyle, r.Value)
	assert.Equal(t, node.ScopeMobile, r.Source)

	r = style.Resolve("shadow", style.Tablet, bag, "fallback")
	assert.Equal(t, style.Property("shadow-lg"), r.Value, "empty scope must not short-circuit")
}

func TestStateCascade(t *testing.T) {
	bag := &node.Props{
		Root:    node.Scope{"bg": "palette:Background", "color": "black"},
		Desktop: node.Scope{"bg": "palette:Primary"},
		Hover:   node.Scope{"bg": "palette:Accent"},
	}
	r := style.ResolveState("bg", style.StateHover, style.Desktop, bag, "")
	assert.Equal(t, style.Property("palette:Accent"), r.Value)
	assert.Equal(t, node.ScopeHover, r.Source)

	r = style.ResolveState("bg", style.StateFocus, style.Desktop, bag, "")
	assert.Equal(t, style.Property("palette:Primary"), r.Value)

	r = style.ResolveState("color", style.StateHover, style.Desktop, bag, "")
	assert.Equal(t, node.ScopeRoot, r.Source)
}

func TestTokenRefReturnedVerbatim(t *testing.T) {
	bag := &node.Props{Root: node.Scope{"color": "palette:Primary Text"}}
	r := style.Resolve("color", style.Mobile, bag, "")
	assert.True(t, r.Value.IsPaletteRef())
	assert.Equal(t, "Primary Text", r.Value.TokenName())
}

func TestCascadeScopes(t *testing.T) {
	assert.Equal(t,
		[]node.ScopeName{node.ScopeFocus, node.ScopeTablet, node.ScopeRoot},
		style.Cascade(style.Tablet, style.StateFocus))
	assert.Equal(t, []node.ScopeName{node.ScopeRoot}, style.Cascade("print", style.StateNone))
}

func TestEffective(t *testing.T) {
	bag := &node.Props{
		Root:   node.Scope{"a": "1", "b": "2"},
		Mobile: node.Scope{"b": "3"},
		Hover:  node.Scope{"c": "4"},
		Custom: node.Scope{"displayName": "Hero"},
	}
	eff := style.Effective(style.Mobile, style.StateHover, bag)
	assert.Equal(t, map[string]style.Property{"a": "1", "b": "3", "c": "4"}, eff)
}

func TestParseViewport(t *testing.T) {
	vp, err := style.ParseViewport("Desktop")
	assert.NoError(t, err)
	assert.Equal(t, style.Desktop, vp)
	_, err = style.ParseViewport("watch")
	assert.Error(t, err)
}
