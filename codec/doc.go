/*
Package codec converts page trees to and from their persisted form.

The persisted form of a tree is a single printable string

	base64url( compress( JSON(node map) ) )

where the JSON is a flat object keyed by node identity. The string is safe
for text columns, URLs and webhook payloads, and hosts store it verbatim.

Compression defaults to zstd; LZ4 frames may be written instead. Readers
detect the frame format by its magic number, so documents written with
either compression can always be read back.

Decoding failures are reported as *MalformedError, which tells apart
input that is not base64, input that does not decompress and input that
decompresses to something other than a node map. For the latter the
decompressed text is kept for diagnostics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagetree.codec'.
func tracer() tracing.Trace {
	return tracing.Select("pagetree.codec")
}
