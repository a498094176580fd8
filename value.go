// Copyright (C) 2025 The fastsnbt authors. All Rights Reserved.

package fastsnbt

import (
	"reflect"
	"strings"
)

// Value is the generic form of a parsed sNBT document: map[string]any for
// compounds, []any for lists, ByteArray, IntArray and LongArray for the
// typed arrays, and Go scalars, string or Text for literals.
type Value = any

// ByteArray, IntArray and LongArray hold the three typed-array encodings.
// The serializer writes them as [B;...], [I;...] and [L;...], and Parse
// produces them for the same syntax, so typed arrays are reachable through
// the type system without the sentinel-key convention.
type (
	ByteArray []int8
	IntArray  []int32
	LongArray []int64
)

var (
	byteArrayType = reflect.TypeOf(ByteArray(nil))
	intArrayType  = reflect.TypeOf(IntArray(nil))
	longArrayType = reflect.TypeOf(LongArray(nil))
)

// Parse parses input as one complete sNBT value. Whitespace between tokens
// is skipped; trailing non-whitespace input is a *ParseError.
func Parse(input string) (Value, error) {
	rest, v, err := parseValue(input)
	if err != nil {
		return nil, err
	}
	if rest = skipSpace(rest); rest != "" {
		return nil, parseErrf(rest, "trailing input after value")
	}
	return v, nil
}

func skipSpace(s string) string { return strings.TrimLeft(s, " \t\r\n") }

func parseValue(input string) (rest string, v Value, err error) {
	in := skipSpace(input)
	if in == "" {
		return input, nil, parseErrf(input, "want value")
	}
	switch in[0] {
	case '{':
		return parseCompound(in)
	case '[':
		return parseList(in)
	}
	return parseLiteral(in)
}

func parseCompound(input string) (rest string, v Value, err error) {
	m := make(map[string]any)
	in := skipSpace(input[1:]) // past "{"
	if strings.HasPrefix(in, "}") {
		return in[1:], m, nil
	}
	for {
		var key Text
		in, key, err = ParseString(skipSpace(in))
		if err != nil {
			return input, nil, err
		}
		in = skipSpace(in)
		if !strings.HasPrefix(in, ":") {
			return input, nil, parseErrf(in, `want ":" after compound key`)
		}
		var val Value
		in, val, err = parseValue(in[1:])
		if err != nil {
			return input, nil, err
		}
		m[key.String()] = val

		in = skipSpace(in)
		switch {
		case strings.HasPrefix(in, ","):
			in = in[1:]
		case strings.HasPrefix(in, "}"):
			return in[1:], m, nil
		default:
			return input, nil, parseErrf(in, `want "," or "}" in compound`)
		}
	}
}

func parseList(input string) (rest string, v Value, err error) {
	in := skipSpace(input[1:]) // past "["
	switch {
	case strings.HasPrefix(in, byteArrayPrefix):
		return parseTypedArray(input, in[2:], 1)
	case strings.HasPrefix(in, intArrayPrefix):
		return parseTypedArray(input, in[2:], 4)
	case strings.HasPrefix(in, longArrayPrefix):
		return parseTypedArray(input, in[2:], 8)
	}

	list := []any{}
	if strings.HasPrefix(in, "]") {
		return in[1:], list, nil
	}
	for {
		var elem Value
		in, elem, err = parseValue(in)
		if err != nil {
			return input, nil, err
		}
		list = append(list, elem)

		in = skipSpace(in)
		switch {
		case strings.HasPrefix(in, ","):
			in = in[1:]
		case strings.HasPrefix(in, "]"):
			return in[1:], list, nil
		default:
			return input, nil, parseErrf(in, `want "," or "]" in list`)
		}
	}
}

// parseTypedArray parses the elements of a [B;...], [I;...] or [L;...]
// form. Elements must be integer literals of the array's width. orig is the
// unconsumed input reported on error.
func parseTypedArray(orig, in string, stride int) (rest string, v Value, err error) {
	var bs ByteArray
	var is IntArray
	var ls LongArray

	in = skipSpace(in)
	if strings.HasPrefix(in, "]") {
		return in[1:], typedArrayValue(stride, bs, is, ls), nil
	}
	for {
		in = skipSpace(in)
		switch stride {
		case 1:
			var n int8
			if in, n, err = ParseInt8(in); err != nil {
				return orig, nil, err
			}
			bs = append(bs, n)
		case 4:
			var n int32
			if in, n, err = ParseInt32(in); err != nil {
				return orig, nil, err
			}
			is = append(is, n)
		case 8:
			var n int64
			if in, n, err = ParseInt64(in); err != nil {
				return orig, nil, err
			}
			ls = append(ls, n)
		}

		in = skipSpace(in)
		switch {
		case strings.HasPrefix(in, ","):
			in = in[1:]
		case strings.HasPrefix(in, "]"):
			return in[1:], typedArrayValue(stride, bs, is, ls), nil
		default:
			return orig, nil, parseErrf(in, `want "," or "]" in typed array`)
		}
	}
}

func typedArrayValue(stride int, bs ByteArray, is IntArray, ls LongArray) Value {
	switch stride {
	case 1:
		if bs == nil {
			bs = ByteArray{}
		}
		return bs
	case 4:
		if is == nil {
			is = IntArray{}
		}
		return is
	default:
		if ls == nil {
			ls = LongArray{}
		}
		return ls
	}
}

// parseLiteral parses one scalar literal. Numeric and boolean matches are
// only accepted when they end at a token boundary: "3a" and "truely" are
// bare strings, not a number or boolean with trailing garbage.
func parseLiteral(in string) (rest string, v Value, err error) {
	if r, x, err := ParseFloat32(in); err == nil && atBoundary(r) {
		return r, x, nil
	}
	if r, x, err := ParseFloat64(in); err == nil && atBoundary(r) {
		return r, x, nil
	}
	if r, x, err := ParseInt8(in); err == nil && atBoundary(r) {
		return r, x, nil
	}
	if r, x, err := ParseInt16(in); err == nil && atBoundary(r) {
		return r, x, nil
	}
	if r, x, err := ParseInt64(in); err == nil && atBoundary(r) {
		return r, x, nil
	}
	if r, x, err := ParseInt32(in); err == nil && atBoundary(r) {
		return r, x, nil
	}
	if r, x, err := ParseBool(in); err == nil && atBoundary(r) {
		return r, x, nil
	}
	r, s, err := ParseString(in)
	if err != nil {
		return in, nil, err
	}
	return r, s.String(), nil
}

// atBoundary reports whether rest begins outside a bare-string token.
func atBoundary(rest string) bool { return rest == "" || !isBare(rest[0]) }
