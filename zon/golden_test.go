package zon

import (
	"testing"

	"github.com/hexops/autogold/v2"
)

// Golden canonical encodings. Any byte-level drift in the canonical
// form shows up here first.
func TestCanonicalGolden(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		expect autogold.Value
	}{
		{
			name:   "flat metadata",
			data:   map[string]any{"b": 2, "a": 1, "c": "x"},
			expect: autogold.Expect("a:1\nb:2\nc:x"),
		},
		{
			name: "table with mixed cells",
			data: []any{
				map[string]any{"id": 1, "note": "plain"},
				map[string]any{"id": 2, "note": "with, comma"},
			},
			expect: autogold.Expect("@(2):id,note\n1,plain\n2,\"with, comma\""),
		},
		{
			name:   "inline nesting",
			data:   map[string]any{"cfg": map[string]any{"list": []any{1, "a b", true}}},
			expect: autogold.Expect(`cfg:"{list:[1,a b,T]}"`),
		},
		{
			name:   "quoting zoo",
			data:   map[string]any{"t": "T", "n": "null", "z": "007", "num": "3.14", "e": ""},
			expect: autogold.Expect("e:\"\"\nn:\"null\"\nnum:\"3.14\"\nt:\"T\"\nz:\"007\""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.data)
			if err != nil {
				t.Fatalf("Encode error: %v", err)
			}
			tt.expect.Equal(t, got)
		})
	}
}
