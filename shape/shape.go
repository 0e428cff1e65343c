package shape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"github.com/npillmayer/pagetree/codec"
	"github.com/npillmayer/pagetree/node"
)

// ErrPageNotFound is returned if no page matches a path. Callers at the
// delivery boundary should answer "not found" for it, whatever the cause.
var ErrPageNotFound = errors.New("page not found")

// IndexSegment is the path segment addressing the home page.
const IndexSegment = "index"

// Root-scope property keys of page nodes.
const (
	KeyTitle           = "title"
	KeyHomePage        = "isHomePage"
	KeyPageTitle       = "pageTitle"
	KeyPageDescription = "pageDescription"
)

// SEO holds the search engine fields of a page.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Shaped is a document reduced to one page.
type Shaped struct {
	Document node.Map
	Page     *node.Node
	SEO      SEO
}

// Slugify derives a URL slug from a page title: lowercase, non-ASCII
// letters transliterated, runs of anything else turned into single hyphens.
// Word boundaries inside a word ("JavaScript") are not split.
func Slugify(title string) string {
	return slug.Make(title)
}

// IsPage is true for nodes of page type.
func IsPage(n *node.Node) bool {
	return n != nil && n.Type == node.TypePage
}

// IsHomePage is true for a page flagged as home page.
func IsHomePage(n *node.Node) bool {
	if !IsPage(n) {
		return false
	}
	v, _ := n.Props.Root.Get(KeyHomePage)
	return strings.EqualFold(v, "true")
}

// Slug returns the slug of a page, derived from its title property or, if
// it has none, from its name.
func Slug(n *node.Node) string {
	if title, ok := n.Props.Root.Get(KeyTitle); ok && strings.TrimSpace(title) != "" {
		return Slugify(title)
	}
	return Slugify(n.Name())
}

// Pages returns the page nodes of a document in document order.
func Pages(doc node.Map) ([]*node.Node, error) {
	var pages []*node.Node
	err := node.WalkDepthFirst(doc, node.RootID, func(n *node.Node, _ int) error {
		if IsPage(n) {
			pages = append(pages, n)
		}
		return nil
	})
	return pages, err
}

// SEOFor collects the search engine fields of a page.
func SEOFor(page *node.Node) SEO {
	seo := SEO{Title: page.Name()}
	if t, ok := page.Props.Root.Get(KeyPageTitle); ok && t != "" {
		seo.Title = t
	}
	seo.Description, _ = page.Props.Root.Get(KeyPageDescription)
	return seo
}

// Select finds the page addressed by a path. The empty path and "index"
// select the first page flagged as home page, any other path selects the
// first page whose slug matches the first segment.
func Select(doc node.Map, path []string) (*node.Node, error) {
	pages, err := Pages(doc)
	if err != nil {
		return nil, err
	}
	segment := ""
	if len(path) > 0 {
		segment = strings.ToLower(strings.Trim(path[0], "/"))
		if segment != IndexSegment {
			segment = Slugify(segment)
		}
	}
	for _, p := range pages {
		if segment == "" || segment == IndexSegment {
			if IsHomePage(p) {
				return p, nil
			}
		} else if Slug(p) == segment {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: /%s", ErrPageNotFound, strings.Join(path, "/"))
}

// ShapeForSlug selects the page addressed by path and returns a copy of
// doc with every other page removed. Removed pages are deleted outright
// and unlinked from their parents. doc itself is left untouched.
func ShapeForSlug(doc node.Map, path []string) (*Shaped, error) {
	selected, err := Select(doc, path)
	if err != nil {
		return nil, err
	}
	out := doc.Copy()
	pages, _ := Pages(out)
	removed := 0
	for _, p := range pages {
		if p.ID == selected.ID {
			continue
		}
		if _, alive := out.Get(p.ID); !alive {
			continue // inside a page removed before
		}
		if ancestor, _ := node.FindAncestor(out, selected.ID, func(a *node.Node) bool {
			return a.ID == p.ID
		}); ancestor != nil {
			continue
		}
		if err := out.Delete(p.ID); err != nil {
			return nil, err
		}
		removed++
	}
	page := out[selected.ID]
	tracer().Debugf("shaped document for page %s, %d other page(s) removed", page.ID, removed)
	return &Shaped{
		Document: out,
		Page:     page,
		SEO:      SEOFor(page),
	}, nil
}

// ShapeEncoded shapes a persisted document and returns the shaped document
// in persisted form. A non-empty override, as delivered by a webhook, is
// used instead of the stored document. Every failure, including malformed
// documents, is reported as ErrPageNotFound.
func ShapeEncoded(stored, override string, path []string) (string, SEO, error) {
	encoded := stored
	if override != "" {
		encoded = override
	}
	doc, err := codec.Deserialize(encoded)
	if err != nil {
		tracer().Infof("cannot shape document: %v", err)
		return "", SEO{}, fmt.Errorf("%w: %v", ErrPageNotFound, err)
	}
	shaped, err := ShapeForSlug(doc, path)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return "", SEO{}, err
		}
		return "", SEO{}, fmt.Errorf("%w: %v", ErrPageNotFound, err)
	}
	out, err := codec.Serialize(shaped.Document)
	if err != nil {
		return "", SEO{}, fmt.Errorf("%w: %v", ErrPageNotFound, err)
	}
	return out, shaped.SEO, nil
}
