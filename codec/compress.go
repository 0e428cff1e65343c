package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the frame format written by a Codec.
type Compression uint8

const (
	Zstd Compression = iota // zstd frames, the default
	LZ4                     // LZ4 frames
)

func (c Compression) String() string {
	switch c {
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	}
	return fmt.Sprintf("unknown(%d)", uint8(c))
}

// ParseCompression parses the name of a compression.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "zstd", "":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	}
	return 0, fmt.Errorf("unknown compression: %q", name)
}

// Frame magic numbers, as stored little-endian at the start of a frame.
const (
	zstdMagic uint32 = 0xFD2FB528
	lz4Magic  uint32 = 0x184D2204
)

// maxDocumentSize caps the decompressed size of a document.
const maxDocumentSize = 64 << 20

// zstd encoders and decoders are safe for concurrent use and are shared by
// all codecs.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("codec: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDocumentSize))
	if err != nil {
		panic("codec: zstd decoder initialization failed: " + err.Error())
	}
}

func compress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case Zstd:
		return zstdEncoder.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
	case LZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported compression: %s", c)
}

// decompress detects the frame format from its magic number.
func decompress(frame []byte) ([]byte, error) {
	if len(frame) < 4 {
		return nil, errors.New("frame too short")
	}
	switch binary.LittleEndian.Uint32(frame) {
	case zstdMagic:
		data, err := zstdDecoder.DecodeAll(frame, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return data, nil
	case lz4Magic:
		r := lz4.NewReader(bytes.NewReader(frame))
		data, err := io.ReadAll(io.LimitReader(r, maxDocumentSize+1))
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		if len(data) > maxDocumentSize {
			return nil, errors.New("lz4 decompress: document too large")
		}
		return data, nil
	}
	return nil, fmt.Errorf("unknown frame format %#x", frame[:4])
}
