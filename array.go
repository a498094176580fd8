// Copyright (C) 2025 The fastsnbt authors. All Rights Reserved.

package fastsnbt

import "reflect"

// Typed array prefixes, keyed by element width.
const (
	byteArrayPrefix = "B;"
	intArrayPrefix  = "I;"
	longArrayPrefix = "L;"
)

// arrayPrefix maps an element width in bytes to its array prefix glyph.
// The plain list form has stride 0 and an empty prefix.
func arrayPrefix(stride int) string {
	switch stride {
	case 1:
		return byteArrayPrefix
	case 4:
		return intArrayPrefix
	case 8:
		return longArrayPrefix
	}
	return ""
}

// An arrayEmitter writes list and typed-array syntax around element values.
// The opening bracket is deferred until the first element arrives, so an
// empty sequence is written in one piece as "[]", "[B;]" and so on. The
// same state machine serves plain lists and the three typed arrays; only
// the prefix and stride differ.
type arrayEmitter struct {
	s      *Serializer
	prefix string
	stride int // element width hint: 0 (untyped), 1, 4 or 8
	open   bool
}

func (s *Serializer) newArray(stride int) *arrayEmitter {
	return &arrayEmitter{s: s, prefix: arrayPrefix(stride), stride: stride}
}

// element writes one element, preceded by the opening bracket or a comma.
func (a *arrayEmitter) element(rv reflect.Value) error {
	if err := a.next(); err != nil {
		return err
	}
	if a.stride == 0 {
		return a.s.value(rv)
	}
	return a.elem(rv)
}

func (a *arrayEmitter) next() error {
	if !a.open {
		a.open = true
		if err := a.s.writeString("[" + a.prefix); err != nil {
			return err
		}
		a.s.pushIndent()
	} else if err := a.s.writeString(","); err != nil {
		return err
	}
	return a.s.newline()
}

// end closes the sequence. A sequence that never received an element still
// carries its type prefix: "[B;]" for an empty byte array.
func (a *arrayEmitter) end() error {
	if a.open {
		a.s.popIndent()
		if err := a.s.newline(); err != nil {
			return err
		}
	} else if err := a.s.writeString("[" + a.prefix); err != nil {
		return err
	}
	return a.s.writeString("]")
}

// elem writes one typed-array element, re-suffixed for the array's element
// width no matter which integer kind carried the value.
func (a *arrayEmitter) elem(rv reflect.Value) error {
	rv, err := indirect(rv)
	if err != nil {
		return err
	}
	var suffix byte
	switch a.stride {
	case 1:
		suffix = 'b'
	case 8:
		suffix = 'l'
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.s.int(rv.Int(), suffix)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return a.s.uint(rv.Uint(), suffix)
	}
	return serializeErrf("%s element in typed array (want integer)", rv.Kind())
}

// seq writes rv, a slice or array, as a plain list.
func (s *Serializer) seq(rv reflect.Value) error {
	a := s.newArray(0)
	for i := 0; i < rv.Len(); i++ {
		if err := a.element(rv.Index(i)); err != nil {
			return err
		}
	}
	return a.end()
}

// typedArray writes rv, a slice or array of integers, in the typed-array
// form for the given element width.
func (s *Serializer) typedArray(rv reflect.Value, stride int) error {
	a := s.newArray(stride)
	for i := 0; i < rv.Len(); i++ {
		if err := a.element(rv.Index(i)); err != nil {
			return err
		}
	}
	return a.end()
}
