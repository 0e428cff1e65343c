package sheet

import (
	"errors"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MarkerAttr is the attribute identifying the token <style> element.
const MarkerAttr = "data-ph-tokens"

// ErrNoHead is returned if an HTML document has no <head> to put the token
// sheet into.
var ErrNoHead = errors.New("html document has no head element")

var (
	markedStyle = cascadia.MustCompile("style[" + MarkerAttr + "]")
	headElement = cascadia.MustCompile("head")
)

// HTMLSink installs the token sheet into an HTML parse tree as
//
//	<style data-ph-tokens>…</style>
//
// at the end of <head>. There is at most one such element after every
// operation; stray duplicates found in the document are removed.
type HTMLSink struct {
	sync.Mutex
	doc *html.Node
}

// NewHTMLSink creates a sink for an HTML document, as returned by
// html.Parse.
func NewHTMLSink(doc *html.Node) *HTMLSink {
	return &HTMLSink{doc: doc}
}

// Set is part of interface Sink.
func (h *HTMLSink) Set(content string) error {
	h.Lock()
	defer h.Unlock()
	existing := markedStyle.MatchAll(h.doc)
	if len(existing) > 0 {
		el := existing[0]
		for _, dup := range existing[1:] {
			dup.Parent.RemoveChild(dup)
		}
		for el.FirstChild != nil {
			el.RemoveChild(el.FirstChild)
		}
		el.AppendChild(&html.Node{Type: html.TextNode, Data: content})
		return nil
	}
	head := headElement.MatchFirst(h.doc)
	if head == nil {
		return ErrNoHead
	}
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     "style",
		DataAtom: atom.Style,
		Attr:     []html.Attribute{{Key: MarkerAttr, Val: "true"}},
	}
	el.AppendChild(&html.Node{Type: html.TextNode, Data: content})
	head.AppendChild(el)
	tracer().Debugf("token sheet element created in <head>")
	return nil
}

// Clear is part of interface Sink.
func (h *HTMLSink) Clear() error {
	h.Lock()
	defer h.Unlock()
	for _, el := range markedStyle.MatchAll(h.doc) {
		el.Parent.RemoveChild(el)
	}
	return nil
}

// Elements returns the token <style> elements currently in the document.
func (h *HTMLSink) Elements() []*html.Node {
	h.Lock()
	defer h.Unlock()
	return markedStyle.MatchAll(h.doc)
}

var _ Sink = &HTMLSink{}
