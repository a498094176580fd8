// Copyright (C) 2025 The fastsnbt authors. All Rights Reserved.

// Package escape handles quoting and unquoting of sNBT strings.
package escape

import (
	"errors"

	"go4.org/mem"
)

// ErrUnterminated is reported when the closing quotation mark of a string
// literal is missing.
var ErrUnterminated = errors.New("unterminated string")

// Unquote decodes the body of a quoted sNBT string literal. The input must
// begin immediately after the opening quotation mark; quote is the active
// quotation mark, and scanning stops at its first unescaped occurrence.
//
// A backslash escapes the byte that follows it, whatever that byte is; no
// other decoding is performed. The returned count n includes the closing
// quotation mark. When the body contains no escape sequence, dec is nil and
// the caller should borrow the first n-1 bytes of src; otherwise dec holds
// the decoded bytes. The decoded buffer is only materialized when the first
// backslash is seen, so clean input costs no allocation.
func Unquote(src mem.RO, quote byte) (n int, dec []byte, err error) {
	dirty := false
	start := 0
	for i := 0; i < src.Len(); i++ {
		switch src.At(i) {
		case '\\':
			if !dirty {
				dirty = true
				dec = make([]byte, 0, src.Len())
			}
			dec = mem.Append(dec, src.SliceTo(i).SliceFrom(start))
			if i+1 >= src.Len() {
				return 0, nil, ErrUnterminated
			}
			dec = append(dec, src.At(i+1))
			i++
			start = i + 1
		case quote:
			if !dirty {
				return i + 1, nil, nil
			}
			dec = mem.Append(dec, src.SliceTo(i).SliceFrom(start))
			return i + 1, dec, nil
		}
	}
	return 0, nil, ErrUnterminated
}
