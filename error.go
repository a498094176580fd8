// Copyright (C) 2025 The fastsnbt authors. All Rights Reserved.

package fastsnbt

import "fmt"

// A ParseError reports input text that does not match the sNBT grammar, or
// a construct that began to match and turned out malformed (for example an
// unterminated quoted string, or an exponent marker with no digits).
//
// Input holds the unconsumed input at the point where parsing failed, so a
// higher-level grammar can report a position or try another alternative.
type ParseError struct {
	Input string // unconsumed input at the failure
	Msg   string
}

func (e *ParseError) Error() string {
	const keep = 16
	in := e.Input
	if len(in) > keep {
		in = in[:keep] + "..."
	}
	return fmt.Sprintf("parse %q: %s", in, e.Msg)
}

func parseErrf(input, msg string, args ...any) *ParseError {
	return &ParseError{Input: input, Msg: fmt.Sprintf(msg, args...)}
}

// A SerializeError reports a value or call sequence the sNBT format cannot
// express, such as a nil value, a data-bearing shape with no text form, or
// a compound value written before its key.
type SerializeError struct {
	Msg string
}

func (e *SerializeError) Error() string { return "serialize: " + e.Msg }

func serializeErrf(msg string, args ...any) *SerializeError {
	return &SerializeError{Msg: fmt.Sprintf(msg, args...)}
}

// A SinkError wraps an error reported by the output writer. Serialization
// stops at the first sink error; output already written is not retracted.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string { return "write: " + e.Err.Error() }

func (e *SinkError) Unwrap() error { return e.Err }
