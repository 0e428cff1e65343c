/*
Package pagetree is the core of a visual page builder: a tree of typed nodes,
the property cascade used to render them and the transforms used to store
and deliver them.

Sub-packages, leaves first:

	node      nodes, scoped property bags, tree maps and walks
	tokens    design tokens (palette, style guide) and their CSS variables
	  sheet   the active token stylesheet, injected idempotently
	style     resolution of property values across scopes
	clone     duplication of subtrees with fresh identities
	codec     persisted form of a tree: base64 of compressed JSON
	shape     reduction of a multi-page document to a single page
	treedbg   text and GraphViz dumps of a tree

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pagetree
