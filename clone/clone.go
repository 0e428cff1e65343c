package clone

import (
	"errors"
	"fmt"
	"slices"

	"github.com/npillmayer/pagetree/node"
)

// Errors of a clone operation. Each one aborts the whole operation.
var (
	ErrCycle        = errors.New("clone source contains a cycle")
	ErrSharedNode   = errors.New("clone source node has more than one owner")
	ErrIDCollision  = errors.New("identity collision")
	ErrUnknownNode  = errors.New("clone source references unknown node")
	ErrUnknownOwner = errors.New("destination parent does not exist")
)

// Options control a single clone operation.
type Options struct {
	// CreateLinks makes every clone a live instance of the original master.
	CreateLinks bool
	// Destination is the tree the clone will be committed to. Freshly
	// minted identities are checked against it. May be nil or the source.
	Destination node.Map
}

// Link is a master/instance relation created by a clone.
type Link struct {
	Master   node.ID
	Instance node.ID
}

// Result is a finished clone, not yet attached to any tree.
//
// Masters is a preview for callers who want to inspect or display the
// effect of a clone before committing it: copies of the masters involved,
// with the new instances appended. Commit does not write these copies;
// it appends the instances of Links to the masters as they are in the
// destination at commit time, so edits made to a master in the meantime
// are kept.
type Result struct {
	RootID  node.ID             // identity of the new subtree root
	Nodes   node.Map            // the new nodes
	Mapping map[node.ID]node.ID // source identity → clone identity
	Links   []Link              // links created, in creation order
	Masters node.Map            // preview of masters with updated instance index
}

// Root returns the root node of the clone.
func (r *Result) Root() *node.Node {
	return r.Nodes[r.RootID]
}

// Engine clones subtrees. An engine is safe for concurrent use if its
// identity generator is.
type Engine struct {
	gen node.IDGenerator
}

// Option configures an engine.
type Option func(*Engine)

// WithIDGenerator sets the generator for fresh identities. The default
// mints random UUIDs.
func WithIDGenerator(gen node.IDGenerator) Option {
	return func(e *Engine) {
		e.gen = gen
	}
}

// New creates a clone engine.
func New(opts ...Option) *Engine {
	e := &Engine{gen: node.UUIDGenerator{}}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// CloneTree clones the subtree of src starting at rootID with a default
// engine.
func CloneTree(src node.Map, rootID node.ID, opts Options) (*Result, error) {
	return New().CloneTree(src, rootID, opts)
}

// CloneTree clones the subtree of src starting at rootID. The new root has
// no parent; placing it is up to the caller (see Result.Commit).
//
// The clone is isomorphic to the source: same shape, same child order, same
// scope contents. Only identities and relation fields differ, the latter as
// requested by opts.CreateLinks.
//
// CloneTree fails with ErrCycle, ErrSharedNode or ErrUnknownNode if the
// source is not a proper tree, and with ErrIDCollision if a fresh identity
// is already in use. No partial result is returned.
func (e *Engine) CloneTree(src node.Map, rootID node.ID, opts Options) (*Result, error) {
	c := &cloner{
		gen:  e.gen,
		src:  src,
		opts: opts,
		res: &Result{
			Nodes:   make(node.Map),
			Mapping: make(map[node.ID]node.ID),
			Masters: make(node.Map),
		},
		onPath: make(map[node.ID]bool),
		minted: make(map[node.ID]bool),
	}
	newRoot, err := c.cloneNode(rootID)
	if err != nil {
		tracer().Debugf("clone of %s aborted: %v", rootID, err)
		return nil, err
	}
	c.res.RootID = newRoot
	c.res.Nodes[newRoot].Parent = node.NoID
	tracer().Debugf("cloned %s → %s, %d node(s), %d link(s)",
		rootID, newRoot, len(c.res.Nodes), len(c.res.Links))
	return c.res, nil
}

type cloner struct {
	gen    node.IDGenerator
	src    node.Map
	opts   Options
	res    *Result
	onPath map[node.ID]bool
	minted map[node.ID]bool
}

func (c *cloner) cloneNode(id node.ID) (node.ID, error) {
	n, ok := c.src.Get(id)
	if !ok {
		return node.NoID, fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	if c.onPath[id] {
		return node.NoID, fmt.Errorf("%w: %s is its own ancestor", ErrCycle, id)
	}
	if _, done := c.res.Mapping[id]; done {
		return node.NoID, fmt.Errorf("%w: %s", ErrSharedNode, id)
	}
	newID, err := c.mint()
	if err != nil {
		return node.NoID, err
	}
	c.res.Mapping[id] = newID
	c.onPath[id] = true
	var children []node.ID
	if n.Children != nil {
		children = make([]node.ID, len(n.Children))
	}
	for i, ch := range n.Children {
		if children[i], err = c.cloneNode(ch); err != nil {
			return node.NoID, err
		}
	}
	var linked map[string]node.ID
	if n.LinkedNodes != nil {
		linked = make(map[string]node.ID, len(n.LinkedNodes))
	}
	for _, slot := range sortedSlots(n) {
		if linked[slot], err = c.cloneNode(n.LinkedNodes[slot]); err != nil {
			return node.NoID, err
		}
	}
	delete(c.onPath, id)
	// all owned nodes have their identities now, finalize this one
	cl := n.Clone()
	cl.ID = newID
	cl.Children = children
	cl.LinkedNodes = linked
	cl.HasMany = nil
	cl.BelongsTo = node.NoID
	for _, ch := range cl.Owned() {
		c.res.Nodes[ch].Parent = newID
	}
	if c.opts.CreateLinks {
		master := n.BelongsTo
		if master == node.NoID {
			master = n.ID
		}
		if err := c.link(master, newID); err != nil {
			return node.NoID, err
		}
		cl.BelongsTo = master
	}
	c.res.Nodes[newID] = cl
	return newID, nil
}

// sortedSlots returns the linked slot names of n in sorted order, so that
// identities are minted in the same order on every run.
func sortedSlots(n *node.Node) []string {
	slots := make([]string, 0, len(n.LinkedNodes))
	for slot := range n.LinkedNodes {
		slots = append(slots, slot)
	}
	slices.Sort(slots)
	return slots
}

// mint draws a fresh identity and checks it against everything in sight.
func (c *cloner) mint() (node.ID, error) {
	id := c.gen.NewID()
	if id == node.NoID {
		return node.NoID, fmt.Errorf("%w: generator returned empty identity", ErrIDCollision)
	}
	_, inSrc := c.src[id]
	_, inDst := c.opts.Destination[id]
	if inSrc || inDst || c.minted[id] {
		return node.NoID, fmt.Errorf("%w: %s", ErrIDCollision, id)
	}
	c.minted[id] = true
	return id, nil
}

// link stages a master/instance relation. The master is copied, never
// modified in place.
func (c *cloner) link(master, instance node.ID) error {
	m, ok := c.res.Masters[master]
	if !ok {
		orig, found := c.src.Get(master)
		if !found {
			orig, found = c.opts.Destination.Get(master)
		}
		if !found {
			return fmt.Errorf("%w: master %s", ErrUnknownNode, master)
		}
		m = orig.Clone()
		c.res.Masters[master] = m
	}
	m.HasMany = append(m.HasMany, instance)
	c.res.Links = append(c.res.Links, Link{Master: master, Instance: instance})
	return nil
}

// Commit attaches the clone to dst: all nodes are added, the clone root is
// inserted into the children of parent at position index (negative
// appends), and masters record their new instances. Commit checks
// everything up front and leaves dst untouched if it fails.
func (r *Result) Commit(dst node.Map, parent node.ID, index int) error {
	p, ok := dst.Get(parent)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOwner, parent)
	}
	for id := range r.Nodes {
		if _, taken := dst[id]; taken {
			return fmt.Errorf("%w: %s already in destination", ErrIDCollision, id)
		}
	}
	for _, l := range r.Links {
		if _, ok := dst.Get(l.Master); !ok {
			return fmt.Errorf("%w: master %s not in destination", ErrUnknownNode, l.Master)
		}
	}
	for id, n := range r.Nodes {
		dst[id] = n
	}
	r.Nodes[r.RootID].Parent = parent
	if index < 0 || index > len(p.Children) {
		index = len(p.Children)
	}
	p.Children = slices.Insert(p.Children, index, r.RootID)
	for _, l := range r.Links {
		m := dst[l.Master]
		if !slices.Contains(m.HasMany, l.Instance) {
			m.HasMany = append(m.HasMany, l.Instance)
		}
	}
	tracer().Debugf("committed clone %s under %s at #%d", r.RootID, parent, index)
	return nil
}
