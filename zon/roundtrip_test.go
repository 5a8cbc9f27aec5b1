package zon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundtripCorpus covers every layout the planner can pick.
func roundtripCorpus() map[string]any {
	return map[string]any{
		"null root":   nil,
		"bool root":   true,
		"int root":    42,
		"float root":  2.5,
		"string root": "hello world",
		"scalar list": []any{1, "two", 3.5, nil, false},
		"uniform table": []any{
			map[string]any{"id": 1, "name": "Alice", "active": true},
			map[string]any{"id": 2, "name": "Bob", "active": false},
		},
		"metadata and table": map[string]any{
			"version": 3,
			"title":   "report, final",
			"rows": []any{
				map[string]any{"k": "a", "v": 1.25},
				map[string]any{"k": "b", "v": -2.0},
			},
		},
		"nested inline": map[string]any{
			"cfg": map[string]any{
				"inner": map[string]any{"deep": []any{1, 2}},
			},
		},
		"dotted layout": map[string]any{
			"server": map[string]any{"desc": "a, b", "host": "x"},
		},
		"awkward strings": map[string]any{
			"a": "T",
			"b": "007",
			"c": `He said "hi", loudly`,
			"d": "",
			"e": " padded ",
			"f": "line\nbreak",
			"g": "2025-06-01T14:30:00Z",
		},
		"empty containers": map[string]any{
			"arr": []any{},
			"obj": map[string]any{},
		},
		"special keys": map[string]any{
			"a.b": 1,
			"c:d": "x",
		},
	}
}

// Round trip: decode(encode(V)) is value-equal to V.
func TestRoundTrip(t *testing.T) {
	for name, data := range roundtripCorpus() {
		t.Run(name, func(t *testing.T) {
			want, err := FromGo(data)
			require.NoError(t, err)

			text, err := EncodeValue(want, DefaultEncodeOptions())
			require.NoError(t, err)

			got, err := Decode(text)
			require.NoError(t, err, "text:\n%s", text)
			assert.True(t, Equal(want, got), "text:\n%s\ndecoded: %#v", text, got)
		})
	}
}

// Idempotent normalization: encode(decode(encode(V))) == encode(V).
func TestEncodeIdempotent(t *testing.T) {
	for name, data := range roundtripCorpus() {
		t.Run(name, func(t *testing.T) {
			first, err := Encode(data)
			require.NoError(t, err)

			v, err := Decode(first)
			require.NoError(t, err)

			second, err := EncodeValue(v, DefaultEncodeOptions())
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

// Deterministic encode: equal values produce byte-identical text.
func TestEncodeDeterministic(t *testing.T) {
	a := map[string]any{"x": 1, "y": []any{"p", "q"}, "z": map[string]any{"k": 2.5}}
	b := map[string]any{"z": map[string]any{"k": 2.5}, "y": []any{"p", "q"}, "x": 1}

	ea, err := Encode(a)
	require.NoError(t, err)
	eb, err := Encode(b)
	require.NoError(t, err)
	assert.Equal(t, ea, eb)
}

// Key-order independence: texts differing only in key order at the same
// level decode to value-equal trees.
func TestDecodeKeyOrderIndependence(t *testing.T) {
	a := mustDecode(t, "x:1\ny:2")
	b := mustDecode(t, "y:2\nx:1")
	assert.True(t, Equal(a, b))

	c := mustDecode(t, `o:"{p:1,q:2}"`)
	d := mustDecode(t, `o:"{q:2,p:1}"`)
	assert.True(t, Equal(c, d))
}

// Normalization of non-canonical input converges after one pass.
func TestNonCanonicalInputNormalizes(t *testing.T) {
	v := mustDecode(t, "b:1e6\na:5.0\nc:NONE")
	out, err := EncodeValue(v, DefaultEncodeOptions())
	require.NoError(t, err)
	assert.Equal(t, "a:5\nb:1000000\nc:null", out)
}

// Integral floats and ints encode identically.
func TestIntegralFloatMatchesInt(t *testing.T) {
	fromFloat, err := Encode(map[string]any{"n": 5.0})
	require.NoError(t, err)
	fromInt, err := Encode(map[string]any{"n": 5})
	require.NoError(t, err)
	assert.Equal(t, fromInt, fromFloat)
}
