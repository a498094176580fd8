// Copyright (C) 2025 The fastsnbt authors. All Rights Reserved.

package fastsnbt

import (
	"encoding"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/xor-bits/fastsnbt/internal/escape"

	"go4.org/mem"
)

// A Serializer writes sNBT text for Go values to an underlying writer.
// Output is compact by default; call Pretty to enable indentation. A
// Serializer keeps no state between Serialize calls and may be reused.
type Serializer struct {
	w      io.Writer
	pretty bool
	depth  int
}

// NewSerializer constructs a Serializer that writes to w.
func NewSerializer(w io.Writer) *Serializer { return &Serializer{w: w} }

// Pretty configures the serializer to emit (true) or omit (false) newlines
// and four-space indentation per nesting depth.
func (s *Serializer) Pretty(ok bool) { s.pretty = ok }

// Serialize writes v as a single sNBT value. Values the format cannot
// express are reported as a *SerializeError; writer failures are wrapped in
// a *SinkError and abort the call immediately.
func (s *Serializer) Serialize(v any) error {
	return s.value(reflect.ValueOf(v))
}

// ToString renders v as compact sNBT text.
func ToString(v any) (string, error) {
	var sb strings.Builder
	if err := NewSerializer(&sb).Serialize(v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ToStringPretty renders v as indented sNBT text.
func ToStringPretty(v any) (string, error) {
	var sb strings.Builder
	s := NewSerializer(&sb)
	s.Pretty(true)
	if err := s.Serialize(v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// MustToString renders v as compact sNBT text, and panics if v has no sNBT
// representation. It is intended for tests and package-level constants.
func MustToString(v any) string {
	out, err := ToString(v)
	if err != nil {
		panic("fastsnbt: " + err.Error())
	}
	return out
}

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// value dispatches one value to the matching formatter or emitter. It is
// the recursion point used by the array and compound emitters for element
// and field values.
func (s *Serializer) value(rv reflect.Value) error {
	if !rv.IsValid() {
		return serializeErrf("cannot serialize nil")
	}
	if rv.Type().Implements(textMarshalerType) {
		// A typed nil pointer still satisfies the interface; calling
		// MarshalText on it would panic for value-receiver methods.
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return serializeErrf("cannot serialize nil")
		}
		// sNBT is a human-readable format; types with a text form (UUIDs,
		// timestamps) are rendered as strings.
		text, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return serializeErrf("marshal text: %v", err)
		}
		return s.string(string(text))
	}

	switch rv.Kind() {
	case reflect.Bool:
		return s.writeLiteral(rv.Bool())
	case reflect.Int8:
		return s.int(rv.Int(), 'b')
	case reflect.Int16:
		return s.int(rv.Int(), 's')
	case reflect.Int32:
		return s.int(rv.Int(), 0)
	case reflect.Int64:
		return s.int(rv.Int(), 'l')
	case reflect.Int:
		// Plain int takes the 32-bit form when the value fits, otherwise
		// the 64-bit form.
		if n := rv.Int(); n < math.MinInt32 || n > math.MaxInt32 {
			return s.int(n, 'l')
		}
		return s.int(rv.Int(), 0)
	case reflect.Uint8:
		return s.uint(rv.Uint(), 'b')
	case reflect.Uint16:
		return s.uint(rv.Uint(), 's')
	case reflect.Uint32:
		return s.uint(rv.Uint(), 0)
	case reflect.Uint64:
		return s.uint(rv.Uint(), 'l')
	case reflect.Uint:
		if n := rv.Uint(); n > math.MaxUint32 {
			return s.uint(n, 'l')
		}
		return s.uint(rv.Uint(), 0)
	case reflect.Float32:
		return s.float(rv.Float(), 32, 'f')
	case reflect.Float64:
		return s.float(rv.Float(), 64, 0)
	case reflect.String:
		return s.string(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return serializeErrf("cannot serialize nil")
		}
		return s.value(rv.Elem())
	case reflect.Slice, reflect.Array:
		switch rv.Type() {
		case byteArrayType:
			return s.typedArray(rv, 1)
		case intArrayType:
			return s.typedArray(rv, 4)
		case longArrayType:
			return s.typedArray(rv, 8)
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			// Raw byte blobs are written as a typed byte array.
			return s.typedArray(rv, 1)
		}
		return s.seq(rv)
	case reflect.Map:
		return s.mapValue(rv)
	case reflect.Struct:
		return s.structValue(rv)
	}
	return serializeErrf("cannot serialize %s", rv.Kind())
}

func (s *Serializer) writeLiteral(v bool) error {
	if v {
		return s.writeString("true")
	}
	return s.writeString("false")
}

func (s *Serializer) int(v int64, suffix byte) error {
	buf := strconv.AppendInt(make([]byte, 0, 24), v, 10)
	if suffix != 0 {
		buf = append(buf, suffix)
	}
	return s.write(buf)
}

func (s *Serializer) uint(v uint64, suffix byte) error {
	buf := strconv.AppendUint(make([]byte, 0, 24), v, 10)
	if suffix != 0 {
		buf = append(buf, suffix)
	}
	return s.write(buf)
}

// float writes the shortest decimal form that round-trips at the given bit
// width, normalized so the text re-parses under the float grammar: bare
// integer forms get a trailing ".0", and the special values are written as
// "inf", "-inf" and "NaN".
func (s *Serializer) float(v float64, bits int, suffix byte) error {
	var buf []byte
	switch {
	case math.IsInf(v, 1):
		buf = append(make([]byte, 0, 8), "inf"...)
	case math.IsInf(v, -1):
		buf = append(make([]byte, 0, 8), "-inf"...)
	case math.IsNaN(v):
		buf = append(make([]byte, 0, 8), "NaN"...)
	default:
		buf = strconv.AppendFloat(make([]byte, 0, 32), v, 'g', -1, bits)
		if !hasFloatMark(buf) {
			buf = append(buf, '.', '0')
		}
	}
	if suffix != 0 {
		buf = append(buf, suffix)
	}
	return s.write(buf)
}

func hasFloatMark(buf []byte) bool {
	for _, b := range buf {
		if b == '.' || b == 'e' || b == 'E' {
			return true
		}
	}
	return false
}

func (s *Serializer) string(v string) error {
	buf := make([]byte, 0, len(v)+2)
	buf = append(buf, '"')
	buf = escape.Quote(buf, mem.S(v))
	buf = append(buf, '"')
	return s.write(buf)
}

func (s *Serializer) write(p []byte) error {
	if _, err := s.w.Write(p); err != nil {
		return &SinkError{Err: err}
	}
	return nil
}

func (s *Serializer) writeString(p string) error {
	if _, err := io.WriteString(s.w, p); err != nil {
		return &SinkError{Err: err}
	}
	return nil
}

// newline writes a line break followed by the current indentation. It is a
// no-op in compact mode.
func (s *Serializer) newline() error {
	if !s.pretty {
		return nil
	}
	if err := s.writeString("\n"); err != nil {
		return err
	}
	for i := 0; i < s.depth; i++ {
		if err := s.writeString("    "); err != nil {
			return err
		}
	}
	return nil
}

func (s *Serializer) pushIndent() { s.depth++ }

// popIndent saturates at zero. Depth below zero would mean unbalanced
// open/close calls by an emitter, which the emitters never make.
func (s *Serializer) popIndent() {
	if s.depth > 0 {
		s.depth--
	}
}

// indirect unwraps pointers and interfaces, failing on nil.
func indirect(rv reflect.Value) (reflect.Value, error) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rv, serializeErrf("cannot serialize nil")
		}
		rv = rv.Elem()
	}
	return rv, nil
}
