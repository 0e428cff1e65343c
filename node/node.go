package node

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ID is the identity of a node, unique within one page tree.
type ID string

// RootID is the well-known key of the tree root.
const RootID ID = "ROOT"

// NoID is the empty identity. As a Parent it denotes the tree root, as
// BelongsTo it denotes an independent node.
const NoID ID = ""

// Type discriminators known to the core. The component registry of the
// editor may know many more; the core treats unknown types as opaque.
const (
	TypeContainer = "Container"
	TypeText      = "Text"
	TypeImage     = "Image"
	TypeButton    = "Button"
	TypeForm      = "Form"
	TypePage      = "page"
)

// Node is one element of a page tree.
type Node struct {
	ID          ID            // identity, mirrors the key in Map
	Type        string        // discriminator, e.g. "Container"
	DisplayName string        // name shown in the editor's layer panel
	IsCanvas    bool          // may receive dropped children
	Hidden      bool          // hidden in the editor and in rendering
	Parent      ID            // owner, or NoID for the root
	Children    []ID          // ordered, order is rendering order
	LinkedNodes map[string]ID // named slots, owned like children
	Props       Props         // scoped property bag
	BelongsTo   ID            // master this node is a live instance of
	HasMany     []ID          // instances of this node, if it is a master
}

// New creates a node with a given identity and type.
func New(id ID, typ string) *Node {
	return &Node{ID: id, Type: typ}
}

func (n *Node) String() string {
	if n == nil {
		return "(Node nil)"
	}
	return fmt.Sprintf("(Node %s %s #ch=%d)", n.ID, n.Type, len(n.Children))
}

// IsRoot is a predicate wether n is the tree root.
func (n *Node) IsRoot() bool {
	return n != nil && n.ID == RootID
}

// IsInstance is a predicate wether n is a live instance of a master.
func (n *Node) IsInstance() bool {
	return n != nil && n.BelongsTo != NoID
}

// IsMaster is a predicate wether n has instances.
func (n *Node) IsMaster() bool {
	return n != nil && len(n.HasMany) > 0
}

// Name returns the user-assigned display name, taken from the custom scope
// first and from DisplayName otherwise.
func (n *Node) Name() string {
	if v, ok := n.Props.Custom.Get("displayName"); ok && v != "" {
		return v
	}
	return n.DisplayName
}

// Owned returns the identities of all nodes owned by n: the children in
// order, followed by linked nodes in order of their slot names.
func (n *Node) Owned() []ID {
	owned := make([]ID, 0, len(n.Children)+len(n.LinkedNodes))
	owned = append(owned, n.Children...)
	if len(n.LinkedNodes) > 0 {
		slots := make([]string, 0, len(n.LinkedNodes))
		for slot := range n.LinkedNodes {
			slots = append(slots, slot)
		}
		slices.Sort(slots)
		for _, slot := range slots {
			owned = append(owned, n.LinkedNodes[slot])
		}
	}
	return owned
}

// IndexOfChild returns the position of ch within the children of n, or -1.
func (n *Node) IndexOfChild(ch ID) int {
	return slices.Index(n.Children, ch)
}

// Clone returns a deep copy of one node record. Scopes, children and the
// relation fields are copied by value, so mutating the copy never mutates n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Children = slices.Clone(n.Children)
	c.LinkedNodes = maps.Clone(n.LinkedNodes)
	c.HasMany = slices.Clone(n.HasMany)
	c.Props = n.Props.Copy()
	return &c
}

// --- Maps of nodes ---------------------------------------------------------

// Errors reported for structural problems of a page tree.
var (
	ErrNoRoot        = errors.New("page tree has no root node")
	ErrUnknownNode   = errors.New("no such node")
	ErrCycle         = errors.New("page tree contains a cycle")
	ErrParentMissing = errors.New("parent node missing")
	ErrParentLink    = errors.New("parent and children disagree")
	ErrDuplicateID   = errors.New("duplicate node identity")
)

// Map is a page tree: node records keyed by identity.
type Map map[ID]*Node

// Get returns the node for an identity.
func (m Map) Get(id ID) (*Node, bool) {
	n, ok := m[id]
	return n, ok && n != nil
}

// Root returns the root node of the tree, if present.
func (m Map) Root() (*Node, bool) {
	return m.Get(RootID)
}

// Add puts a node into the map under its own identity. It fails if the
// identity is already taken.
func (m Map) Add(n *Node) error {
	assertThat(n != nil, "cannot add nil node")
	if _, exists := m[n.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
	}
	m[n.ID] = n
	return nil
}

// AppendChild adds ch to the map and appends it to the children of parent.
func (m Map) AppendChild(parent ID, ch *Node) error {
	return m.InsertChild(parent, -1, ch)
}

// InsertChild adds ch to the map and inserts it into the children of
// parent at position i. A negative or too large i appends.
func (m Map) InsertChild(parent ID, i int, ch *Node) error {
	p, ok := m.Get(parent)
	if !ok {
		return fmt.Errorf("%w: %s", ErrParentMissing, parent)
	}
	if err := m.Add(ch); err != nil {
		return err
	}
	ch.Parent = parent
	if i < 0 || i > len(p.Children) {
		i = len(p.Children)
	}
	p.Children = slices.Insert(p.Children, i, ch.ID)
	return nil
}

// Detach removes node id from its parent's children (or linked slots). The
// node stays in the map, now without a parent.
func (m Map) Detach(id ID) error {
	n, ok := m.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	if p, ok := m.Get(n.Parent); ok {
		if i := p.IndexOfChild(id); i >= 0 {
			p.Children = slices.Delete(p.Children, i, i+1)
		}
		for slot, linked := range p.LinkedNodes {
			if linked == id {
				delete(p.LinkedNodes, slot)
			}
		}
	}
	n.Parent = NoID
	return nil
}

// Delete removes node id together with its whole subtree and detaches it
// from its parent. Instances of deleted masters are unlinked, not deleted;
// references of deleted instances are removed from their masters.
// Deleting the root is not allowed. If the subtree cannot be walked, e.g.
// because it contains a cycle, the map is left unchanged.
func (m Map) Delete(id ID) error {
	if id == RootID {
		return fmt.Errorf("cannot delete root node")
	}
	var doomed []ID
	err := WalkDepthFirst(m, id, func(n *Node, depth int) error {
		doomed = append(doomed, n.ID)
		return nil
	})
	if err != nil {
		return err
	}
	// the map is changed only after the subtree has been walked completely
	if err := m.Detach(id); err != nil {
		return err
	}
	for _, d := range doomed {
		n := m[d]
		for _, inst := range n.HasMany {
			if i, ok := m.Get(inst); ok && i.BelongsTo == d {
				i.BelongsTo = NoID
			}
		}
		if master, ok := m.Get(n.BelongsTo); ok {
			master.HasMany = slices.DeleteFunc(master.HasMany, func(x ID) bool { return x == d })
		}
		delete(m, d)
	}
	tracer().Debugf("deleted %d node(s) under %s", len(doomed), id)
	return nil
}

// Instances returns the nodes listed as instances of master, skipping
// stale entries.
func (m Map) Instances(master ID) []*Node {
	n, ok := m.Get(master)
	if !ok {
		return nil
	}
	instances := make([]*Node, 0, len(n.HasMany))
	for _, id := range n.HasMany {
		if inst, ok := m.Get(id); ok && inst.BelongsTo == master {
			instances = append(instances, inst)
		}
	}
	return instances
}

// Copy returns a deep copy of the whole map.
func (m Map) Copy() Map {
	if m == nil {
		return nil
	}
	c := make(Map, len(m))
	for id, n := range m {
		c[id] = n.Clone()
	}
	return c
}

// Validate checks the tree invariants: a root without parent exists, every
// node is reachable from the root exactly once, parents and children agree
// and there are no cycles.
func (m Map) Validate() error {
	root, ok := m.Root()
	if !ok {
		return ErrNoRoot
	}
	if root.Parent != NoID {
		return fmt.Errorf("%w: root has parent %s", ErrParentLink, root.Parent)
	}
	seen := make(map[ID]bool, len(m))
	err := WalkDepthFirst(m, RootID, func(n *Node, depth int) error {
		if seen[n.ID] {
			return fmt.Errorf("%w: %s reachable twice", ErrParentLink, n.ID)
		}
		seen[n.ID] = true
		for _, ch := range n.Owned() {
			c, ok := m.Get(ch)
			if !ok {
				return fmt.Errorf("%w: child %s of %s", ErrUnknownNode, ch, n.ID)
			}
			if c.Parent != n.ID {
				return fmt.Errorf("%w: %s lists %s, which names parent %q",
					ErrParentLink, n.ID, ch, c.Parent)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	for id, n := range m {
		if n == nil || n.ID != id {
			return fmt.Errorf("%w: key %s does not match record", ErrParentLink, id)
		}
		if !seen[id] {
			return fmt.Errorf("%w: %s not reachable from root", ErrParentLink, id)
		}
	}
	return nil
}
