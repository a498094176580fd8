// Copyright (C) 2025 The fastsnbt authors. All Rights Reserved.

package fastsnbt

import (
	"errors"
	"strconv"
	"strings"

	"github.com/xor-bits/fastsnbt/internal/escape"

	"go4.org/mem"
)

// A Text is the result of parsing an sNBT string literal. It either borrows
// a subslice of the parser input (no escape sequences were present) or owns
// a freshly decoded copy. The distinction matters to callers holding large
// inputs: a borrowed Text keeps the input alive, an owned one does not.
type Text struct {
	str   string
	owned bool
}

// String returns the decoded string value.
func (t Text) String() string { return t.str }

// Borrowed reports whether t is a subslice of the parser input rather than
// a decoded copy.
func (t Text) Borrowed() bool { return !t.owned }

// MarshalText returns the decoded string bytes. A parsed Text therefore
// serializes back into an sNBT string literal.
func (t Text) MarshalText() ([]byte, error) { return []byte(t.str), nil }

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
)

// ParseBool parses the literal "true" or "false" (case-sensitive) from the
// front of input.
func ParseBool(input string) (rest string, v bool, err error) {
	switch {
	case len(input) >= 4 && mem.S(input[:4]).Equal(litTrue):
		return input[4:], true, nil
	case len(input) >= 5 && mem.S(input[:5]).Equal(litFalse):
		return input[5:], false, nil
	}
	return input, false, parseErrf(input, "want boolean")
}

// ParseInt8 parses a decimal integer with the mandatory 8-bit suffix "b" or
// "B".
func ParseInt8(input string) (rest string, v int8, err error) {
	rest, n, err := parseSuffixedInt(input, 'b', 8)
	return rest, int8(n), err
}

// ParseInt16 parses a decimal integer with the mandatory 16-bit suffix "s"
// or "S".
func ParseInt16(input string) (rest string, v int16, err error) {
	rest, n, err := parseSuffixedInt(input, 's', 16)
	return rest, int16(n), err
}

// ParseInt32 parses a plain decimal integer. A trailing type letter is not
// consumed: the 32-bit form has no suffix, so "5b" parses as 5 with "b"
// left in the remainder.
func ParseInt32(input string) (rest string, v int32, err error) {
	rest, text, err := scanDecimal(input)
	if err != nil {
		return input, 0, err
	}
	n, perr := strconv.ParseInt(text, 10, 32)
	if perr != nil {
		return input, 0, parseErrf(input, "integer %q out of 32-bit range", text)
	}
	return rest, int32(n), nil
}

// ParseInt64 parses a decimal integer with the mandatory 64-bit suffix "l"
// or "L".
func ParseInt64(input string) (rest string, v int64, err error) {
	return parseSuffixedInt(input, 'l', 64)
}

func parseSuffixedInt(input string, suffix byte, bits int) (rest string, v int64, err error) {
	rest, text, err := scanDecimal(input)
	if err != nil {
		return input, 0, err
	}
	if len(rest) == 0 || lower(rest[0]) != suffix {
		return input, 0, parseErrf(input, "want %q suffix", suffix)
	}
	n, perr := strconv.ParseInt(text, 10, bits)
	if perr != nil {
		return input, 0, parseErrf(input, "integer %q out of %d-bit range", text, bits)
	}
	return rest[1:], n, nil
}

// ParseFloat32 parses a floating point literal with the mandatory 32-bit
// suffix "f" or "F".
func ParseFloat32(input string) (rest string, v float32, err error) {
	rest, text, err := scanFloat(input)
	if err != nil {
		return input, 0, err
	}
	if len(rest) == 0 || lower(rest[0]) != 'f' {
		return input, 0, parseErrf(input, `want "f" suffix`)
	}
	f, perr := strconv.ParseFloat(text, 32)
	if perr != nil && !errors.Is(perr, strconv.ErrRange) {
		return input, 0, parseErrf(input, "malformed float %q", text)
	}
	return rest[1:], float32(f), nil
}

// ParseFloat64 parses a floating point literal with an optional "d" or "D"
// suffix.
func ParseFloat64(input string) (rest string, v float64, err error) {
	rest, text, err := scanFloat(input)
	if err != nil {
		return input, 0, err
	}
	if len(rest) > 0 && lower(rest[0]) == 'd' {
		rest = rest[1:]
	}
	f, perr := strconv.ParseFloat(text, 64)
	if perr != nil && !errors.Is(perr, strconv.ErrRange) {
		return input, 0, parseErrf(input, "malformed float %q", text)
	}
	return rest, f, nil
}

// ParseString parses a string literal: double-quoted, single-quoted, or a
// bare token of one or more alphanumerics and the symbols "_-.+". Quoted
// forms decode backslash escapes through the escape engine; a bare token
// always borrows the input.
func ParseString(input string) (rest string, s Text, err error) {
	if len(input) > 0 && (input[0] == '"' || input[0] == '\'') {
		body := input[1:]
		n, dec, uerr := escape.Unquote(mem.S(body), input[0])
		if uerr != nil {
			return input, Text{}, parseErrf(input, "%v", uerr)
		}
		if dec == nil {
			return body[n:], Text{str: body[:n-1]}, nil
		}
		return body[n:], Text{str: string(dec), owned: true}, nil
	}
	i := 0
	for i < len(input) && isBare(input[i]) {
		i++
	}
	if i == 0 {
		return input, Text{}, parseErrf(input, "want string")
	}
	return input[i:], Text{str: input[:i]}, nil
}

// scanDecimal recognizes an optionally signed decimal integer body: a
// single "0", or a nonzero digit followed by any number of digits.
// Redundant leading zeroes are not part of the match, so of "007" only the
// leading "0" is consumed.
func scanDecimal(input string) (rest, text string, err error) {
	i := 0
	if i < len(input) && (input[i] == '+' || input[i] == '-') {
		i++
	}
	switch {
	case i < len(input) && '1' <= input[i] && input[i] <= '9':
		i++
		for i < len(input) && isDigit(input[i]) {
			i++
		}
	case i < len(input) && input[i] == '0':
		i++
	default:
		return input, "", parseErrf(input, "want decimal digit")
	}
	return input[i:], input[:i], nil
}

// Float specials, tried in declaration order. "inf" is deliberately listed
// before "infinity", so parsing "infinity" consumes only the "inf" prefix;
// the fastsnbt crate's grammar behaves the same way.
var floatSpecials = []string{"inf", "infinity", "nan", "-inf", "-infinity"}

// scanFloat recognizes the textual body of a floating point literal: one of
// the special tokens (case-insensitive), a signed digit run with a required
// exponent, or a fractional form with an optional exponent. An exponent
// marker with no digits after it is a hard failure, not a fallback to the
// shorter match.
func scanFloat(input string) (rest, text string, err error) {
	for _, lit := range floatSpecials {
		if len(input) >= len(lit) && strings.EqualFold(input[:len(lit)], lit) {
			return input[len(lit):], input[:len(lit)], nil
		}
	}

	i := 0
	if i < len(input) && (input[i] == '+' || input[i] == '-') {
		i++
	}
	digits := 0
	for i < len(input) && isDigit(input[i]) {
		i++
		digits++
	}
	switch {
	case i < len(input) && input[i] == '.':
		i++
		frac := 0
		for i < len(input) && isDigit(input[i]) {
			i++
			frac++
		}
		if digits == 0 && frac == 0 {
			return input, "", parseErrf(input, "want digits around decimal point")
		}
	case digits > 0 && i < len(input) && (input[i] == 'e' || input[i] == 'E'):
		// A digit run with no decimal point is a float only when an
		// exponent follows; consumed below.
	default:
		return input, "", parseErrf(input, "want floating point literal")
	}

	if i < len(input) && (input[i] == 'e' || input[i] == 'E') {
		i++
		if i < len(input) && (input[i] == '+' || input[i] == '-') {
			i++
		}
		exp := 0
		for i < len(input) && isDigit(input[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return input, "", parseErrf(input, "malformed exponent")
		}
	}
	return input[i:], input[:i], nil
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isBare(b byte) bool {
	return '0' <= b && b <= '9' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' ||
		b == '_' || b == '-' || b == '.' || b == '+'
}

// lower folds an ASCII letter to lower case.
func lower(b byte) byte { return b | 0x20 }
