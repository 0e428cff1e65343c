package node_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/pagetree/node"
)

// createPageTree builds
//
//	ROOT
//	├── header
//	└── page
//	    ├── box
//	    │   └── text
//	    └── image
func createPageTree(t *testing.T) node.Map {
	m := node.Map{}
	if err := m.Add(node.New(node.RootID, node.TypeContainer)); err != nil {
		t.Fatal(err)
	}
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(m.AppendChild(node.RootID, node.New("header", node.TypeContainer)))
	must(m.AppendChild(node.RootID, node.New("page", node.TypePage)))
	must(m.AppendChild("page", node.New("box", node.TypeContainer)))
	must(m.AppendChild("box", node.New("text", node.TypeText)))
	must(m.AppendChild("page", node.New("image", node.TypeImage)))
	return m
}

func TestMapValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagetree.node")
	defer teardown()
	//
	m := createPageTree(t)
	if err := m.Validate(); err != nil {
		t.Fatalf("expected page tree to be valid, isn't: %v", err)
	}
	m["box"].Parent = "ROOT"
	if err := m.Validate(); !errors.Is(err, node.ErrParentLink) {
		t.Errorf("expected parent mismatch to be reported, got %v", err)
	}
}

func TestMapValidateCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagetree.node")
	defer teardown()
	//
	m := createPageTree(t)
	m["text"].Children = []node.ID{"box"}
	err := node.WalkDepthFirst(m, "box", func(*node.Node, int) error { return nil })
	if !errors.Is(err, node.ErrCycle) {
		t.Errorf("expected cycle to be reported, got %v", err)
	}
	if err := m.Validate(); err == nil {
		t.Error("expected tree with cycle to be invalid")
	}
}

func TestMapValidateMissingRoot(t *testing.T) {
	m := node.Map{"x": node.New("x", node.TypeText)}
	if err := m.Validate(); !errors.Is(err, node.ErrNoRoot) {
		t.Errorf("expected missing root to be reported, got %v", err)
	}
}

func TestInsertChildKeepsOrder(t *testing.T) {
	m := createPageTree(t)
	if err := m.InsertChild("page", 1, node.New("between", node.TypeText)); err != nil {
		t.Fatal(err)
	}
	got := m["page"].Children
	want := []node.ID{"box", "between", "image"}
	if len(got) != len(want) {
		t.Fatalf("expected children %v, have %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected child #%d to be %s, is %s", i, want[i], got[i])
		}
	}
	if err := m.AppendChild("page", node.New("box", node.TypeText)); !errors.Is(err, node.ErrDuplicateID) {
		t.Errorf("expected duplicate identity to be rejected, got %v", err)
	}
}

func TestDeleteSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagetree.node")
	defer teardown()
	//
	m := createPageTree(t)
	inst := node.New("inst", node.TypeContainer)
	inst.BelongsTo = "box"
	if err := m.AppendChild("header", inst); err != nil {
		t.Fatal(err)
	}
	m["box"].HasMany = []node.ID{"inst"}
	if err := m.Delete("box"); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Get("text"); ok {
		t.Error("expected descendants of deleted node to be gone")
	}
	if m["page"].IndexOfChild("box") >= 0 {
		t.Error("expected deleted node to be detached from its parent")
	}
	if m["inst"].IsInstance() {
		t.Error("expected instance of deleted master to be unlinked")
	}
	if err := m.Validate(); err != nil {
		t.Errorf("expected tree to be valid after delete: %v", err)
	}
	if err := m.Delete(node.RootID); err == nil {
		t.Error("expected deleting the root to fail")
	}
}

func TestDeleteBrokenSubtreeLeavesMap(t *testing.T) {
	m := createPageTree(t)
	m["text"].Children = []node.ID{"box"}
	err := m.Delete("box")
	if !errors.Is(err, node.ErrCycle) {
		t.Fatalf("expected deleting a cyclic subtree to report a cycle, got %v", err)
	}
	if !slices.Contains(m["page"].Children, "box") {
		t.Errorf("expected box to stay a child of page, children are %v", m["page"].Children)
	}
	if m["box"].Parent != "page" {
		t.Errorf("expected parent of box to be page, is %q", m["box"].Parent)
	}
	if _, ok := m.Get("text"); !ok {
		t.Error("expected text to survive a failed delete")
	}
}

func TestDeleteInstanceUpdatesMaster(t *testing.T) {
	m := createPageTree(t)
	m["image"].BelongsTo = "header"
	m["header"].HasMany = []node.ID{"image"}
	if err := m.Delete("image"); err != nil {
		t.Fatal(err)
	}
	if m["header"].IsMaster() {
		t.Errorf("expected master index to drop deleted instance, is %v", m["header"].HasMany)
	}
}

func TestFindAncestor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagetree.node")
	defer teardown()
	//
	m := createPageTree(t)
	page, err := node.FindAncestor(m, "text", node.OfType(node.TypePage))
	if err != nil {
		t.Fatal(err)
	}
	if page == nil || page.ID != "page" {
		t.Errorf("expected to find page ancestor of text, found %v", page)
	}
	none, err := node.FindAncestor(m, "header", node.OfType(node.TypePage))
	if err != nil || none != nil {
		t.Errorf("expected no page ancestor for header, found %v (err=%v)", none, err)
	}
	self, _ := node.FindAncestor(m, "page", node.OfType(node.TypePage))
	if self != nil {
		t.Error("expected start node not to be tested by FindAncestor")
	}
}

func TestFindAncestorCycle(t *testing.T) {
	m := createPageTree(t)
	m["page"].Parent = "box"
	if _, err := node.FindAncestor(m, "text", node.OfType("nope")); !errors.Is(err, node.ErrCycle) {
		t.Errorf("expected cycle in parent chain to be reported, got %v", err)
	}
}

func TestWalkOrderAndSkip(t *testing.T) {
	m := createPageTree(t)
	var order []node.ID
	err := node.WalkDepthFirst(m, node.RootID, func(n *node.Node, depth int) error {
		order = append(order, n.ID)
		if n.ID == "box" {
			return node.SkipChildren
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []node.ID{"ROOT", "header", "page", "box", "image"}
	if len(order) != len(want) {
		t.Fatalf("expected walk order %v, have %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("expected #%d to be %s, is %s", i, want[i], order[i])
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	n := node.New("a", node.TypeText)
	_ = n.Props.Set(node.ScopeRoot, "text", "hello")
	n.Children = []node.ID{"b"}
	c := n.Clone()
	_ = c.Props.Set(node.ScopeRoot, "text", "changed")
	c.Children[0] = "z"
	if v, _ := n.Props.Root.Get("text"); v != "hello" {
		t.Errorf("expected source scope to be untouched, is %q", v)
	}
	if n.Children[0] != "b" {
		t.Error("expected source children to be untouched")
	}
	if c.Props.Mobile != nil {
		t.Error("expected absent scope to stay absent in clone")
	}
}

func TestSequenceGenerator(t *testing.T) {
	gen := node.NewSequence("n")
	if a, b := gen.NewID(), gen.NewID(); a != "n1" || b != "n2" {
		t.Errorf("expected n1, n2; have %s, %s", a, b)
	}
	u := node.UUIDGenerator{}
	if u.NewID() == u.NewID() {
		t.Error("expected random identities to differ")
	}
}
