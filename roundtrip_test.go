// Copyright (C) 2025 The fastsnbt authors. All Rights Reserved.

package fastsnbt_test

import (
	"math"
	"strings"
	"testing"

	"github.com/xor-bits/fastsnbt"
)

func TestInt8RoundTrip(t *testing.T) {
	for i := math.MinInt8; i <= math.MaxInt8; i++ {
		text := fastsnbt.MustToString(int8(i))
		if !strings.HasSuffix(text, "b") {
			t.Fatalf("ToString(%db): got %q, want b suffix", i, text)
		}
		rest, got, err := fastsnbt.ParseInt8(text)
		if err != nil || rest != "" || got != int8(i) {
			t.Fatalf("ParseInt8(%q): got (%q, %v, %v), want (\"\", %v, nil)", text, rest, got, err, i)
		}
	}
}

func TestIntWidthRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, -32768, 32767} {
		text := fastsnbt.MustToString(int16(n))
		if rest, got, err := fastsnbt.ParseInt16(text); err != nil || rest != "" || int64(got) != n {
			t.Errorf("int16 %d: text %q, got (%q, %v, %v)", n, text, rest, got, err)
		}
	}
	for _, n := range []int64{0, 7, -7, math.MaxInt32, math.MinInt32} {
		text := fastsnbt.MustToString(int32(n))
		if last := text[len(text)-1]; last < '0' || last > '9' {
			t.Errorf("int32 %d: text %q carries a suffix", n, text)
		}
		if rest, got, err := fastsnbt.ParseInt32(text); err != nil || rest != "" || int64(got) != n {
			t.Errorf("int32 %d: text %q, got (%q, %v, %v)", n, text, rest, got, err)
		}
	}
	for _, n := range []int64{0, math.MaxInt64, math.MinInt64, -123456789} {
		text := fastsnbt.MustToString(n)
		if rest, got, err := fastsnbt.ParseInt64(text); err != nil || rest != "" || got != n {
			t.Errorf("int64 %d: text %q, got (%q, %v, %v)", n, text, rest, got, err)
		}
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	vals := []float64{
		0, 1, -1, 0.5, -0.25, 1.0 / 3.0,
		math.Copysign(0, -1),
		1e300, -2.5e-10,
		math.MaxFloat64, math.SmallestNonzeroFloat64,
		math.Inf(1), math.Inf(-1), math.NaN(),
	}
	for _, v := range vals {
		text := fastsnbt.MustToString(v)
		rest, got, err := fastsnbt.ParseFloat64(text)
		if err != nil || rest != "" {
			t.Errorf("ParseFloat64(%q): got (%q, %v, %v)", text, rest, got, err)
			continue
		}
		if math.IsNaN(v) {
			if !math.IsNaN(got) {
				t.Errorf("ParseFloat64(%q): got %v, want NaN", text, got)
			}
			continue
		}
		if math.Float64bits(got) != math.Float64bits(v) {
			t.Errorf("float64 %v: text %q reparsed as %v (bits differ)", v, text, got)
		}
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	vals := []float32{
		0, 1.5, -0.25, float32(1.0 / 3.0),
		math.MaxFloat32, math.SmallestNonzeroFloat32,
		float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN()),
	}
	for _, v := range vals {
		text := fastsnbt.MustToString(v)
		if !strings.HasSuffix(text, "f") {
			t.Errorf("ToString(%vf): got %q, want f suffix", v, text)
		}
		rest, got, err := fastsnbt.ParseFloat32(text)
		if err != nil || rest != "" {
			t.Errorf("ParseFloat32(%q): got (%q, %v, %v)", text, rest, got, err)
			continue
		}
		if math.IsNaN(float64(v)) {
			if !math.IsNaN(float64(got)) {
				t.Errorf("ParseFloat32(%q): got %v, want NaN", text, got)
			}
			continue
		}
		if math.Float32bits(got) != math.Float32bits(v) {
			t.Errorf("float32 %v: text %q reparsed as %v (bits differ)", v, text, got)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, v := range []string{
		"plain",
		"",
		"with space and 'single' quotes",
		`with "double" quotes`,
		`back\slash`,
		"control\nbytes\tpass",
	} {
		text := fastsnbt.MustToString(v)
		rest, got, err := fastsnbt.ParseString(text)
		if err != nil || rest != "" {
			t.Errorf("ParseString(%q): got (%q, %v)", text, rest, err)
			continue
		}
		if got.String() != v {
			t.Errorf("string %q: text %q reparsed as %q", v, text, got.String())
		}
		clean := !strings.ContainsAny(v, `"\`)
		if got.Borrowed() != clean {
			t.Errorf("string %q: Borrowed=%v, want %v", v, got.Borrowed(), clean)
		}
	}
}
