// Copyright (C) 2025 The fastsnbt authors. All Rights Reserved.

// Package fastsnbt implements the stringified NBT (sNBT) text format.
//
// # Parsing
//
// The ParseBool, ParseInt8 through ParseInt64, ParseFloat32, ParseFloat64,
// and ParseString functions each recognize one literal of the sNBT grammar
// at the front of their input. On success they return the unconsumed
// remainder of the input together with the decoded value; on failure they
// consume nothing and report a *ParseError. This makes them composable as
// alternatives by a structural parser:
//
//	rest, v, err := fastsnbt.ParseInt8("127b, ...")
//	// v == 127, rest == ", ..."
//
// Quoted strings are decoded without copying when they contain no escape
// sequences; the Text result reports whether it borrows the input.
//
// The Parse function assembles the literal parsers into a parser for whole
// documents, producing compounds as map[string]any, lists as []any, and
// the three typed arrays as ByteArray, IntArray and LongArray.
//
// # Serializing
//
// ToString and ToStringPretty render an arbitrary Go value (scalars,
// strings, slices, maps, structs) as sNBT text. For streaming output,
// construct a Serializer around an io.Writer:
//
//	s := fastsnbt.NewSerializer(w)
//	s.Pretty(true)
//	if err := s.Serialize(v); err != nil {
//	   log.Fatalf("Serialize failed: %v", err)
//	}
//
// Values of type ByteArray, IntArray and LongArray serialize as the typed
// array forms [B;...], [I;...] and [L;...]. A map entry whose key is one of
// the reserved token constants (ByteArrayToken, IntArrayToken,
// LongArrayToken) serializes the same way, without emitting the key; this
// matches the wire convention of the fastnbt crates.
//
// Values with no sNBT representation (nil, channels, functions, data-bearing
// shapes the format cannot express) are reported as a *SerializeError, never
// silently dropped. Errors from the underlying writer are wrapped in a
// *SinkError and returned immediately.
package fastsnbt
