// Copyright (C) 2025 The fastsnbt authors. All Rights Reserved.

package fastsnbt

import (
	"bytes"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Reserved compound keys that redirect a value into the typed-array
// encodings instead of naming an ordinary field. The token itself is never
// written to the output; the typed-array syntax has no key, only its prefix
// glyph. The names match the token convention of the fastnbt crates so that
// generically decoded NBT values round-trip through sNBT.
const (
	ByteArrayToken = "__fastnbt_byte_array"
	IntArrayToken  = "__fastnbt_int_array"
	LongArrayToken = "__fastnbt_long_array"
)

// A compoundEmitter writes compound syntax around key/value pairs. Keys and
// values arrive as separate steps; a key is held pending until its value is
// supplied. The opening brace is deferred until the first ordinary field,
// so a compound holding only a typed-array token collapses to the array
// itself, and a compound with no entries at all is written as "{}".
type compoundEmitter struct {
	s        *Serializer
	opened   bool   // wrote the opening brace
	hasFirst bool   // wrote at least one entry
	key      []byte // pending key, nil when none
}

func (s *Serializer) newCompound() *compoundEmitter { return &compoundEmitter{s: s} }

// setKey renders and holds the key for the next value.
func (c *compoundEmitter) setKey(rv reflect.Value) error {
	name, err := appendName(nil, rv)
	if err != nil {
		return err
	}
	c.key = name
	return nil
}

func (c *compoundEmitter) setName(name []byte) { c.key = name }

// value writes the pending key's value. Supplying a value with no pending
// key is a caller-contract violation and is reported, never defaulted.
func (c *compoundEmitter) value(rv reflect.Value) error {
	if c.key == nil {
		return serializeErrf("compound value written before its key")
	}
	name := c.key
	c.key = nil

	if !c.hasFirst {
		c.hasFirst = true
	} else {
		if err := c.s.writeString(","); err != nil {
			return err
		}
		if err := c.s.newline(); err != nil {
			return err
		}
	}

	switch string(name) {
	case ByteArrayToken:
		return c.tokenArray(rv, 1)
	case IntArrayToken:
		return c.tokenArray(rv, 4)
	case LongArrayToken:
		return c.tokenArray(rv, 8)
	}

	if !c.opened {
		c.opened = true
		if err := c.s.writeString("{"); err != nil {
			return err
		}
		c.s.pushIndent()
		if err := c.s.newline(); err != nil {
			return err
		}
	}
	if err := c.s.write(name); err != nil {
		return err
	}
	sep := ":"
	if c.s.pretty {
		sep = ": "
	}
	if err := c.s.writeString(sep); err != nil {
		return err
	}
	return c.s.value(rv)
}

// tokenArray routes a sentinel-keyed value into the typed-array emitter.
func (c *compoundEmitter) tokenArray(rv reflect.Value, stride int) error {
	rv, err := indirect(rv)
	if err != nil {
		return err
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return serializeErrf("typed array token wants a sequence value, got %s", rv.Kind())
	}
	return c.s.typedArray(rv, stride)
}

// end closes the compound. A pending key with no value is a caller-contract
// violation.
func (c *compoundEmitter) end() error {
	if c.key != nil {
		return serializeErrf("compound ended with pending key %q", c.key)
	}
	if c.opened {
		c.s.popIndent()
		if err := c.s.newline(); err != nil {
			return err
		}
		return c.s.writeString("}")
	}
	if !c.hasFirst {
		return c.s.writeString("{}")
	}
	return nil
}

// appendName renders a compound key as raw field-name bytes, not as a
// quoted string. Strings pass through verbatim and integers render in
// decimal; other key shapes have no sNBT field-name form.
func appendName(dst []byte, rv reflect.Value) ([]byte, error) {
	rv, err := indirect(rv)
	if err != nil {
		return nil, serializeErrf("cannot serialize nil as compound key")
	}
	switch rv.Kind() {
	case reflect.String:
		return append(dst, rv.String()...), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(dst, rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.AppendUint(dst, rv.Uint(), 10), nil
	}
	return nil, serializeErrf("cannot serialize %s as compound key", rv.Kind())
}

// mapValue writes rv, a map, as a compound. Go maps have no observable
// insertion order, so entries are written in sorted key order for stable
// output.
func (s *Serializer) mapValue(rv reflect.Value) error {
	type entry struct {
		name []byte
		val  reflect.Value
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		name, err := appendName(nil, iter.Key())
		if err != nil {
			return err
		}
		entries = append(entries, entry{name, iter.Value()})
	}
	slices.SortFunc(entries, func(a, b entry) int { return bytes.Compare(a.name, b.name) })

	c := s.newCompound()
	for _, e := range entries {
		c.setName(e.name)
		if err := c.value(e.val); err != nil {
			return err
		}
	}
	return c.end()
}

// structValue writes rv, a struct, as a compound in field declaration
// order. The `snbt` tag overrides the field name; "-" skips the field.
func (s *Serializer) structValue(rv reflect.Value) error {
	c := s.newCompound()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("snbt"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		c.setName([]byte(name))
		if err := c.value(rv.Field(i)); err != nil {
			return err
		}
	}
	return c.end()
}
