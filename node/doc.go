/*
Package node implements the page tree of the builder.

A page tree is a flat map of node records, keyed by node identity. Every
record names its parent and lists its children in rendering order. This
flat layout is what gets persisted and transmitted (see package codec), and
it is the layout all tree transforms operate on: clients look up nodes by
identity instead of following pointers.

Invariants

The parent/children relation forms a rooted tree. The root is stored under
key RootID and has no parent. Every other node appears in exactly one
parent's children list, and its Parent field names that parent. Identities
are unique within one map at all times.

A node may be a live instance of a master node (field BelongsTo). Masters
keep a reverse index of their instances (field HasMany). The index is all
the core needs to expose; what an editor does with instances when a master
goes away is a policy decision of the editor (see Map.Delete).

Properties

Each node carries a bag of properties split into scopes: root (the base
layer), the viewport scopes mobile, tablet and desktop, the state scopes
hover and focus, and custom for free-form metadata. Every scope is
optional. Resolving a property across scopes is the job of package style.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package node

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagetree.node'.
func tracer() tracing.Trace {
	return tracing.Select("pagetree.node")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("pagetree.node: "+msg, msgargs...)
		panic(msg)
	}
}
