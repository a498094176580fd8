// Copyright (C) 2025 The fastsnbt authors. All Rights Reserved.

package fastsnbt_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xor-bits/fastsnbt"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  fastsnbt.Value
	}{
		{"{}", map[string]any{}},
		{"[]", []any{}},
		{"0", int32(0)},
		{"12b", int8(12)},
		{"-7s", int16(-7)},
		{"40l", int64(40)},
		{"1.5f", float32(1.5)},
		{"2.25", 2.25},
		{"true", true},
		{"false", false},
		{`"quoted"`, "quoted"},
		{"bare_token", "bare_token"},

		// Numeric-looking tokens that run into bare-string characters are
		// strings, not a number with trailing garbage.
		{"3a", "3a"},
		{"007", "007"},
		{"truely", "truely"},
		{"infinity", "infinity"},

		{"[B;1b,2b,3b]", fastsnbt.ByteArray{1, 2, 3}},
		{"[B;]", fastsnbt.ByteArray{}},
		{"[I;1,-2]", fastsnbt.IntArray{1, -2}},
		{"[L;9l]", fastsnbt.LongArray{9}},
		{"[1b,2b]", []any{int8(1), int8(2)}},

		{`{name:"x",flag:true}`, map[string]any{"name": "x", "flag": true}},
		{`{ "a" : 1 , b : [ true , false ] }`, map[string]any{
			"a": int32(1),
			"b": []any{true, false},
		}},
		{"{nested:{inner:[I;1]}}", map[string]any{
			"nested": map[string]any{"inner": fastsnbt.IntArray{1}},
		}},
		{"\n  {a:1}\t ", map[string]any{"a": int32(1)}},
	}
	for _, test := range tests {
		got, err := fastsnbt.Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Parse(%q): (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"{a:1",
		"{a}",
		"{a:}",
		"[1,",
		"[1,]",
		"1 2",
		`{a:1} extra`,
		"[B;1b,2]",  // wrong element width inside a typed array
		"[I;1.5]",   // non-integer in a typed array
		`"open`,
	}
	for _, input := range bad {
		if got, err := fastsnbt.Parse(input); err == nil {
			t.Errorf("Parse(%q): got %#v, want error", input, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	want := map[string]any{
		"name":   "steve",
		"health": int8(20),
		"pos":    []any{1.5, -2.25, 0.5},
		"chunks": fastsnbt.IntArray{1, 2, 3},
		"seeds":  fastsnbt.LongArray{-9000000000},
		"raw":    fastsnbt.ByteArray{0, -1, 127},
		"flags":  map[string]any{"flying": false},
	}
	for _, pretty := range []bool{false, true} {
		var text string
		var err error
		if pretty {
			text, err = fastsnbt.ToStringPretty(want)
		} else {
			text, err = fastsnbt.ToString(want)
		}
		if err != nil {
			t.Fatalf("serialize (pretty=%v): %v", pretty, err)
		}
		got, err := fastsnbt.Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip (pretty=%v): (-want, +got)\n%s", pretty, diff)
		}
	}
}
