/*
Package style resolves the visual properties of page tree nodes.

A node's property bag is split into scopes (see package node). Resolving a
property means walking a fixed cascade of scopes and taking the first one
that defines the key. For a viewport the cascade is

	viewport → root

and for a state-modified lookup (hover, focus) it is

	state → viewport → root

Viewport scopes are stacked on top of root only, never on top of each
other: a desktop lookup does not consult tablet or mobile.

A key is defined in a scope if the scope holds an entry for it, even if
the entry is the empty string. An explicit empty string means "unset this
utility" and stops the cascade; an absent key continues it.

Values may be token references ("palette:Primary", "style:radius"). The
resolver hands them out unchanged; turning them into CSS variables is a
separate step, see package tokens.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagetree.style'.
func tracer() tracing.Trace {
	return tracing.Select("pagetree.style")
}
