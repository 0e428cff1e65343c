package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/pagetree/node"
)

// ErrMissingRoot is returned when a node map has no root node, or a root
// node with a parent.
var ErrMissingRoot = errors.New("node map has no parentless root")

// ErrInvalidText is returned when a node carries text which is not valid
// UTF-8. JSON would silently replace the offending bytes.
var ErrInvalidText = errors.New("text is not valid UTF-8")

// record is the persisted form of one node. No field is omitted when
// empty, so nil and empty collections survive a round trip.
type record struct {
	Type        string             `json:"type"`
	IsCanvas    bool               `json:"isCanvas"`
	Props       scopes             `json:"props"`
	DisplayName string             `json:"displayName"`
	Custom      node.Scope         `json:"custom"`
	Hidden      bool               `json:"hidden"`
	Parent      *node.ID           `json:"parent"`
	Nodes       []node.ID          `json:"nodes"`
	LinkedNodes map[string]node.ID `json:"linkedNodes"`
	BelongsTo   *node.ID           `json:"belongsTo"`
	HasMany     []node.ID          `json:"hasMany"`
}

// scopes are the props of a record. The custom scope lives on the record
// itself.
type scopes struct {
	Root    node.Scope `json:"root"`
	Mobile  node.Scope `json:"mobile"`
	Tablet  node.Scope `json:"tablet"`
	Desktop node.Scope `json:"desktop"`
	Hover   node.Scope `json:"hover"`
	Focus   node.Scope `json:"focus"`
}

func optionalID(id node.ID) *node.ID {
	if id == node.NoID {
		return nil
	}
	return &id
}

// checkText reports the first string of n which is not valid UTF-8.
func checkText(n *node.Node) error {
	bad := func(what, s string) error {
		return fmt.Errorf("%w: %s of node %q: %q", ErrInvalidText, what, n.ID, s)
	}
	for what, s := range map[string]string{
		"id":           string(n.ID),
		"type":         n.Type,
		"display name": n.DisplayName,
		"parent":       string(n.Parent),
		"belongsTo":    string(n.BelongsTo),
	} {
		if !utf8.ValidString(s) {
			return bad(what, s)
		}
	}
	for _, ids := range [][]node.ID{n.Children, n.HasMany} {
		for _, id := range ids {
			if !utf8.ValidString(string(id)) {
				return bad("reference", string(id))
			}
		}
	}
	for slot, id := range n.LinkedNodes {
		if !utf8.ValidString(slot) {
			return bad("slot name", slot)
		}
		if !utf8.ValidString(string(id)) {
			return bad("linked node", string(id))
		}
	}
	for _, scope := range []node.Scope{
		n.Props.Root, n.Props.Mobile, n.Props.Tablet, n.Props.Desktop,
		n.Props.Hover, n.Props.Focus, n.Props.Custom,
	} {
		for k, v := range scope {
			if !utf8.ValidString(k) {
				return bad("property key", k)
			}
			if !utf8.ValidString(v) {
				return bad("property "+k, v)
			}
		}
	}
	return nil
}

func fromNode(n *node.Node) (record, error) {
	if err := checkText(n); err != nil {
		return record{}, err
	}
	return record{
		Type:     n.Type,
		IsCanvas: n.IsCanvas,
		Props: scopes{
			Root:    n.Props.Root,
			Mobile:  n.Props.Mobile,
			Tablet:  n.Props.Tablet,
			Desktop: n.Props.Desktop,
			Hover:   n.Props.Hover,
			Focus:   n.Props.Focus,
		},
		DisplayName: n.DisplayName,
		Custom:      n.Props.Custom,
		Hidden:      n.Hidden,
		Parent:      optionalID(n.Parent),
		Nodes:       n.Children,
		LinkedNodes: n.LinkedNodes,
		BelongsTo:   optionalID(n.BelongsTo),
		HasMany:     n.HasMany,
	}, nil
}

func (r *record) toNode(id node.ID) *node.Node {
	n := &node.Node{
		ID:          id,
		Type:        r.Type,
		DisplayName: r.DisplayName,
		IsCanvas:    r.IsCanvas,
		Hidden:      r.Hidden,
		Children:    r.Nodes,
		LinkedNodes: r.LinkedNodes,
		HasMany:     r.HasMany,
		Props: node.Props{
			Root:    r.Props.Root,
			Mobile:  r.Props.Mobile,
			Tablet:  r.Props.Tablet,
			Desktop: r.Props.Desktop,
			Hover:   r.Props.Hover,
			Focus:   r.Props.Focus,
			Custom:  r.Custom,
		},
	}
	if r.Parent != nil {
		n.Parent = *r.Parent
	}
	if r.BelongsTo != nil {
		n.BelongsTo = *r.BelongsTo
	}
	return n
}

// MarshalMap projects a node map to its flat JSON form. The map must
// contain a root node without parent, and all text must be valid UTF-8
// (ErrInvalidText otherwise).
func MarshalMap(m node.Map) ([]byte, error) {
	root, ok := m.Root()
	if !ok || root.Parent != node.NoID {
		return nil, ErrMissingRoot
	}
	flat := make(map[node.ID]record, len(m))
	for id, n := range m {
		if n == nil {
			return nil, fmt.Errorf("node map has nil record for %s", id)
		}
		if n.ID != id {
			return nil, fmt.Errorf("node map key %s does not match record %s", id, n.ID)
		}
		r, err := fromNode(n)
		if err != nil {
			return nil, err
		}
		flat[id] = r
	}
	return json.Marshal(flat)
}

// UnmarshalMap is the inverse of MarshalMap. Text which is not a JSON
// object of node records is reported as a *MalformedError of stage
// StageParse.
func UnmarshalMap(data []byte) (node.Map, error) {
	var flat map[node.ID]*record
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&flat); err != nil {
		return nil, malformed(StageParse, err, data)
	}
	if dec.More() {
		return nil, malformed(StageParse, errors.New("trailing data after node map"), data)
	}
	if flat == nil {
		return nil, malformed(StageParse, errors.New("document is not an object"), data)
	}
	m := make(node.Map, len(flat))
	for id, r := range flat {
		if r == nil {
			return nil, malformed(StageParse, fmt.Errorf("record %s is null", id), data)
		}
		m[id] = r.toNode(id)
	}
	if root, ok := m.Root(); !ok || root.Parent != node.NoID {
		return nil, ErrMissingRoot
	}
	return m, nil
}
