/*
Package shape cuts a multi-page document down to a single page.

A document may hold several nodes of type "page". For delivery to a viewer,
the page addressed by a URL path is selected and every other page is
removed from the document, together with its subtree. Shared nodes outside
of pages, such as a global header or footer, are kept.

Pages are addressed by slugs derived from their titles. The empty path and
the path "index" address the page flagged as home page.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shape

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagetree.shape'.
func tracer() tracing.Trace {
	return tracing.Select("pagetree.shape")
}
