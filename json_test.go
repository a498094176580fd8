// Copyright (C) 2025 The fastsnbt authors. All Rights Reserved.

package fastsnbt_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xor-bits/fastsnbt"
)

func TestFromJSON(t *testing.T) {
	data := []byte(`{
		// comments and trailing commas are tolerated
		"name": "farm",
		"count": 3,
		"big": 5000000000,
		"ratio": 0.5,
		"tags": ["wheat", "carrot"],
		"meta": {"auto": true},
	}`)
	got, err := fastsnbt.FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: unexpected error: %v", err)
	}
	want := map[string]any{
		"name":  "farm",
		"count": int32(3),
		"big":   int64(5000000000),
		"ratio": 0.5,
		"tags":  []any{"wheat", "carrot"},
		"meta":  map[string]any{"auto": true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromJSON: (-want, +got)\n%s", diff)
	}

	out, err := fastsnbt.ToString(got)
	if err != nil {
		t.Fatalf("ToString: unexpected error: %v", err)
	}
	const text = `{big:5000000000l,count:3,meta:{auto:true},name:"farm",ratio:0.5,tags:["wheat","carrot"]}`
	if diff := cmp.Diff(text, out); diff != "" {
		t.Errorf("ToString(FromJSON): (-want, +got)\n%s", diff)
	}
}

func TestFromJSONErrors(t *testing.T) {
	for _, input := range []string{
		`{"a": null}`, // null has no sNBT form
		`{"a":`,       // malformed JSON
	} {
		if got, err := fastsnbt.FromJSON([]byte(input)); err == nil {
			t.Errorf("FromJSON(%q): got %#v, want error", input, got)
		}
	}
}
