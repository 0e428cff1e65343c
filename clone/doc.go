/*
Package clone duplicates subtrees of a page tree.

Cloning walks a subtree depth-first, mints a fresh identity for every node,
deep-copies the property bags and rewrites children lists through an
old→new mapping. A parent's children list is finalized only after all of
its children have their new identities (post-order).

The clone is built off-tree: CloneTree never touches the source map, and
the new nodes become visible only when the caller commits the Result into
a destination tree in one step. Readers of the destination never see a
partial clone.

Master/instance links are either created or severed:

	CreateLinks = true   every clone becomes a live instance of the
	                     original master, the master's instance index
	                     gains the clone
	CreateLinks = false  the clone is independent, links on the source
	                     are dropped

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package clone

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagetree.clone'.
func tracer() tracing.Trace {
	return tracing.Select("pagetree.clone")
}
