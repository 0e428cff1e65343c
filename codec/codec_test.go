package codec_test

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/pagetree/codec"
	"github.com/npillmayer/pagetree/node"
)

func createDocument(t *testing.T) node.Map {
	m := node.Map{}
	require.NoError(t, m.Add(node.New(node.RootID, node.TypeContainer)))
	require.NoError(t, m.AppendChild(node.RootID, node.New("header", node.TypeContainer)))
	require.NoError(t, m.AppendChild(node.RootID, node.New("page", node.TypePage)))
	require.NoError(t, m.AppendChild("page", node.New("hero", node.TypeContainer)))
	require.NoError(t, m.AppendChild("hero", node.New("title", node.TypeText)))
	require.NoError(t, m.AppendChild("page", node.New("copy", node.TypeText)))
	m[node.RootID].IsCanvas = true
	m["page"].DisplayName = "Home"
	m["hero"].Hidden = true
	m["hero"].LinkedNodes = map[string]node.ID{}
	m["copy"].BelongsTo = "title"
	m["title"].HasMany = []node.ID{"copy"}
	m["header"].Children = []node.ID{} // empty, not nil
	require.NoError(t, m["title"].Props.Set(node.ScopeRoot, "text", "Welcome"))
	require.NoError(t, m["title"].Props.Set(node.ScopeMobile, "fontSize", "18px"))
	require.NoError(t, m["title"].Props.Set(node.ScopeHover, "color", "palette:Accent"))
	require.NoError(t, m["page"].Props.Set(node.ScopeCustom, "displayName", "Start"))
	m["copy"].Props.Desktop = node.Scope{}
	return m
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagetree.codec")
	defer teardown()
	//
	m := createDocument(t)
	s, err := codec.Serialize(m)
	require.NoError(t, err)
	assert.NotContains(t, s, "+")
	assert.NotContains(t, s, "/")
	back, err := codec.Deserialize(s)
	require.NoError(t, err)
	assert.Equal(t, m, back)
	require.NoError(t, back.Validate())
}

func TestRoundTripLZ4(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagetree.codec")
	defer teardown()
	//
	m := createDocument(t)
	c := codec.New(codec.WithCompression(codec.LZ4))
	s, err := c.Serialize(m)
	require.NoError(t, err)
	// any codec reads any frame format
	back, err := codec.Deserialize(s)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestStandardAlphabetAccepted(t *testing.T) {
	m := createDocument(t)
	s, err := codec.Serialize(m)
	require.NoError(t, err)
	raw, err := base64.RawURLEncoding.DecodeString(s)
	require.NoError(t, err)
	std := base64.StdEncoding.EncodeToString(raw)
	back, err := codec.Deserialize(std)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestJSONShape(t *testing.T) {
	m := createDocument(t)
	data, err := codec.MarshalMap(m)
	require.NoError(t, err)
	js := string(data)
	assert.Contains(t, js, `"ROOT":{"type":"Container","isCanvas":true`)
	assert.Contains(t, js, `"parent":null`)
	assert.Contains(t, js, `"custom":{"displayName":"Start"}`)
	assert.Contains(t, js, `"nodes":["hero","copy"]`)
	assert.Contains(t, js, `"belongsTo":"title"`)
}

func TestMissingRoot(t *testing.T) {
	m := node.Map{"x": node.New("x", node.TypeText)}
	_, err := codec.Serialize(m)
	assert.ErrorIs(t, err, codec.ErrMissingRoot)

	m = createDocument(t)
	m[node.RootID].Parent = "page"
	_, err = codec.Serialize(m)
	assert.ErrorIs(t, err, codec.ErrMissingRoot)

	c := codec.New()
	s, err := c.Pack([]byte(`{"x":{"type":"Text"}}`))
	require.NoError(t, err)
	_, err = c.Deserialize(s)
	assert.ErrorIs(t, err, codec.ErrMissingRoot)
}

func TestSerializeRejectsInvalidUTF8(t *testing.T) {
	for what, spoil := range map[string]func(node.Map){
		"property value": func(m node.Map) { m[node.RootID].Props.Root = node.Scope{"text": "a\xffb"} },
		"property key":   func(m node.Map) { m["title"].Props.Mobile["font\xc3"] = "12px" },
		"display name":   func(m node.Map) { m["page"].DisplayName = "Start\xfe" },
		"slot name":      func(m node.Map) { m["hero"].LinkedNodes = map[string]node.ID{"\xff": "copy"} },
		"type":           func(m node.Map) { m["copy"].Type = "Te\x80xt" },
	} {
		m := createDocument(t)
		spoil(m)
		_, err := codec.Serialize(m)
		assert.ErrorIs(t, err, codec.ErrInvalidText, what)
	}
	// valid multi-byte text passes
	m := createDocument(t)
	require.NoError(t, m["title"].Props.Set(node.ScopeRoot, "text", "Grüße 👋"))
	_, err := codec.Serialize(m)
	assert.NoError(t, err)
}

func TestCorruptInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagetree.codec")
	defer teardown()
	//
	_, err := codec.Deserialize("not-valid-base64!!")
	diag, ok := codec.IsMalformed(err)
	require.True(t, ok, "expected malformed diagnostic, is %v", err)
	assert.Equal(t, codec.StageDecode, diag.Stage)
	assert.NotEmpty(t, diag.Reason)

	// valid base64, but not a compressed frame
	_, err = codec.Deserialize(base64.RawURLEncoding.EncodeToString([]byte("plain text here")))
	diag, ok = codec.IsMalformed(err)
	require.True(t, ok)
	assert.Equal(t, codec.StageDecompress, diag.Stage)

	// zstd magic followed by garbage
	_, err = codec.Deserialize(base64.RawURLEncoding.EncodeToString(
		[]byte{0x28, 0xb5, 0x2f, 0xfd, 0xff, 0xff, 0xff, 0xff}))
	diag, ok = codec.IsMalformed(err)
	require.True(t, ok)
	assert.Equal(t, codec.StageDecompress, diag.Stage)

	_, err = codec.Deserialize("")
	_, ok = codec.IsMalformed(err)
	assert.True(t, ok)
}

func TestNotJSONKeepsRawText(t *testing.T) {
	for _, comp := range []codec.Compression{codec.Zstd, codec.LZ4} {
		c := codec.New(codec.WithCompression(comp))
		s, err := c.Pack([]byte("hello, world"))
		require.NoError(t, err)
		_, err = c.Deserialize(s)
		diag, ok := codec.IsMalformed(err)
		require.True(t, ok, "%s: expected malformed diagnostic, is %v", comp, err)
		assert.Equal(t, codec.StageParse, diag.Stage)
		assert.Equal(t, "hello, world", diag.Raw)
		assert.True(t, strings.HasPrefix(err.Error(), "malformed document (parse)"))
		var target *codec.MalformedError
		assert.True(t, errors.As(err, &target))
	}
}

func TestNullRecord(t *testing.T) {
	c := codec.New()
	s, err := c.Pack([]byte(`{"ROOT":null}`))
	require.NoError(t, err)
	_, err = c.Deserialize(s)
	diag, ok := codec.IsMalformed(err)
	require.True(t, ok)
	assert.Equal(t, codec.StageParse, diag.Stage)
}

func TestParseCompression(t *testing.T) {
	c, err := codec.ParseCompression("lz4")
	require.NoError(t, err)
	assert.Equal(t, codec.LZ4, c)
	assert.Equal(t, "zstd", codec.Zstd.String())
	_, err = codec.ParseCompression("brotli")
	assert.Error(t, err)
}
