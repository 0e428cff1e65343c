/*
Package tokens implements the design-token store of the page builder.

Design tokens come in two flavours: an ordered color palette (name → color)
and a style guide (name → scalar value such as a radius or a padding).
Node properties refer to tokens indirectly,

	palette:Primary Text
	style:borderRadius

and every reference maps to a stable CSS custom property, e.g.
--ph-primary-text and --ph-border-radius. Names are converted
deterministically, independent of what the palette currently contains, so
a reference made before its palette entry exists still yields a usable
variable name.

EmitVariables renders a store into a single ":root { … }" block of
custom-property declarations. Only style-guide keys on a fixed allow-list
become variables; all other style-guide keys are utility tokens which are
substituted by value wherever they are referenced. Package tokens/sheet
installs the emitted block as the one active token stylesheet of a
document.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tokens

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagetree.tokens'.
func tracer() tracing.Trace {
	return tracing.Select("pagetree.tokens")
}
