package node

import (
	"errors"
	"fmt"
)

// SkipChildren may be returned by a visitor to skip the subtree of the
// node just visited.
var SkipChildren = errors.New("skip children")

// Visitor is called for every node of a walk, together with the depth of
// the node relative to the start node.
type Visitor func(n *Node, depth int) error

// WalkDepthFirst visits the subtree starting at id in pre-order: a node
// first, then its owned nodes (children, then linked slots) in order.
//
// The walk reports ErrCycle if a node is met again on its own ancestor path
// and ErrUnknownNode if an owned identity is not in the map. An error
// returned by the visitor stops the walk and is returned, except for
// SkipChildren.
func WalkDepthFirst(m Map, id ID, visit Visitor) error {
	onPath := make(map[ID]bool)
	return walk(m, id, 0, onPath, visit)
}

func walk(m Map, id ID, depth int, onPath map[ID]bool, visit Visitor) error {
	n, ok := m.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	if onPath[id] {
		return fmt.Errorf("%w: %s is its own ancestor", ErrCycle, id)
	}
	if err := visit(n, depth); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	onPath[id] = true
	for _, ch := range n.Owned() {
		if err := walk(m, ch, depth+1, onPath, visit); err != nil {
			return err
		}
	}
	delete(onPath, id)
	return nil
}

// Subtree collects the identities of the subtree starting at id, in
// pre-order.
func Subtree(m Map, id ID) ([]ID, error) {
	var ids []ID
	err := WalkDepthFirst(m, id, func(n *Node, _ int) error {
		ids = append(ids, n.ID)
		return nil
	})
	return ids, err
}

// FindAncestor walks up the parent chain of id and returns the first
// ancestor matching predicate. The start node itself is not tested.
// Walking stops at the root; a parent chain revisiting a node yields
// ErrCycle.
func FindAncestor(m Map, id ID, predicate func(*Node) bool) (*Node, error) {
	n, ok := m.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	seen := map[ID]bool{id: true}
	for n.Parent != NoID {
		p, ok := m.Get(n.Parent)
		if !ok {
			return nil, fmt.Errorf("%w: %s (parent of %s)", ErrParentMissing, n.Parent, n.ID)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: parent chain of %s", ErrCycle, id)
		}
		seen[p.ID] = true
		if predicate(p) {
			return p, nil
		}
		n = p
	}
	return nil, nil
}

// OfType returns a predicate matching nodes of a given type discriminator,
// for use with FindAncestor.
func OfType(typ string) func(*Node) bool {
	return func(n *Node) bool {
		return n.Type == typ
	}
}
