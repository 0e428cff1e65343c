package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/pagetree/node"
)

// Stage tells at which step decoding a document failed.
type Stage int

const (
	StageDecode     Stage = iota + 1 // text is not base64
	StageDecompress                  // bytes are not a readable frame
	StageParse                       // decompressed text is not a node map
)

func (s Stage) String() string {
	switch s {
	case StageDecode:
		return "decode"
	case StageDecompress:
		return "decompress"
	case StageParse:
		return "parse"
	}
	return "unknown"
}

// MalformedError is a diagnostic for a document which could not be read.
// For StageParse, Raw holds the decompressed text.
type MalformedError struct {
	Stage  Stage
	Reason string
	Raw    string
	err    error
}

func malformed(stage Stage, err error, raw []byte) *MalformedError {
	e := &MalformedError{Stage: stage, Reason: err.Error(), err: err}
	if stage == StageParse {
		e.Raw = string(raw)
	}
	return e
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed document (%s): %s", e.Stage, e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return e.err
}

// IsMalformed returns the diagnostic if err is or wraps a *MalformedError.
func IsMalformed(err error) (*MalformedError, bool) {
	var m *MalformedError
	if errors.As(err, &m) {
		return m, true
	}
	return nil, false
}

// Codec reads and writes persisted page trees. The zero value writes zstd
// frames.
type Codec struct {
	compression Compression
}

// Option configures a codec.
type Option func(*Codec)

// WithCompression selects the frame format for writing. Reading always
// accepts every supported format.
func WithCompression(c Compression) Option {
	return func(cd *Codec) {
		cd.compression = c
	}
}

// New creates a codec.
func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

var defaultCodec = New()

// Serialize writes m with the default codec.
func Serialize(m node.Map) (string, error) {
	return defaultCodec.Serialize(m)
}

// Deserialize reads a document with the default codec.
func Deserialize(s string) (node.Map, error) {
	return defaultCodec.Deserialize(s)
}

// Serialize writes a node map to its persisted string form.
func (c *Codec) Serialize(m node.Map) (string, error) {
	data, err := MarshalMap(m)
	if err != nil {
		return "", err
	}
	s, err := c.Pack(data)
	if err != nil {
		return "", err
	}
	tracer().Debugf("serialized %d node(s), %d bytes JSON → %d chars", len(m), len(data), len(s))
	return s, nil
}

// Deserialize reads a node map from its persisted string form. It never
// panics on bad input; failures to read the string are reported as
// *MalformedError.
func (c *Codec) Deserialize(s string) (node.Map, error) {
	data, err := c.Unpack(s)
	if err != nil {
		return nil, err
	}
	m, err := UnmarshalMap(data)
	if err != nil {
		tracer().Infof("cannot read document: %v", err)
		return nil, err
	}
	return m, nil
}

// Pack compresses and encodes arbitrary text.
func (c *Codec) Pack(data []byte) (string, error) {
	frame, err := compress(data, c.compression)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(frame), nil
}

// Unpack is the inverse of Pack. It accepts both the URL-safe and the
// standard base64 alphabet, padded or not.
func (c *Codec) Unpack(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '+':
			return '-'
		case '/':
			return '_'
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
	s = strings.TrimRight(s, "=")
	frame, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, malformed(StageDecode, err, nil)
	}
	data, err := decompress(frame)
	if err != nil {
		return nil, malformed(StageDecompress, err, nil)
	}
	return data, nil
}
