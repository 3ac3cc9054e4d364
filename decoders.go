// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

package xwinprop

import (
	"fmt"
	"unicode/utf8"

	"github.com/BurntSushi/xgb"
	"golang.org/x/text/encoding/charmap"
)

// FixedWidth decodes a value into a slice of unsigned integers whose width
// is the property format: []uint8, []uint16, []uint32 or []uint64.
// Elements are little-endian, the byte order xgb negotiates with the server.
type FixedWidth struct{}

func (FixedWidth) Decode(buf []byte, _, propName string, format byte) (any, error) {
	size := int(format) / 8
	switch size {
	case 1, 2, 4, 8:
	default:
		return nil, fmt.Errorf("%w: %d bits in %q", ErrUnsupportedFormat, format, propName)
	}
	if len(buf)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes in %q is not a multiple of %d",
			ErrMalformedValue, len(buf), propName, size)
	}

	n := len(buf) / size
	switch size {
	case 1:
		out := make([]uint8, n)
		copy(out, buf)
		return out, nil
	case 2:
		out := make([]uint16, n)
		for i := range out {
			out[i] = xgb.Get16(buf[i*2:])
		}
		return out, nil
	case 4:
		out := make([]uint32, n)
		for i := range out {
			out[i] = xgb.Get32(buf[i*4:])
		}
		return out, nil
	default:
		out := make([]uint64, n)
		for i := range out {
			out[i] = xgb.Get64(buf[i*8:])
		}
		return out, nil
	}
}

// Text decodes a value as UTF-8. It is registered for both UTF8_STRING and
// STRING; STRING is Latin-1 on the wire, see Latin1Text.
type Text struct{}

func (Text) Decode(buf []byte, _, propName string, _ byte) (any, error) {
	if !utf8.Valid(buf) {
		return nil, fmt.Errorf("%w: %q is not valid UTF-8", ErrMalformedValue, propName)
	}
	return string(buf), nil
}

// Latin1Text decodes a value as ISO 8859-1.
type Latin1Text struct{}

func (Latin1Text) Decode(buf []byte, _, propName string, _ byte) (any, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedValue, propName, err)
	}
	return string(out), nil
}

// IDFactory builds an object from a server id.
type IDFactory[T any] interface {
	FromID(id uint32) T
}

// IDList decodes a list of 32-bit ids and turns every id into an object
// through Factory. IDs decodes the raw list; a nil IDs uses FixedWidth.
type IDList[T any] struct {
	Factory IDFactory[T]
	IDs     Decoder
}

func (d IDList[T]) Decode(buf []byte, typeName, propName string, format byte) (any, error) {
	ids := d.IDs
	if ids == nil {
		ids = FixedWidth{}
	}
	v, err := ids.Decode(buf, typeName, propName, format)
	if err != nil {
		return nil, err
	}
	list, ok := v.([]uint32)
	if !ok {
		return nil, fmt.Errorf("%w: %d bits in id list %q", ErrUnsupportedFormat, format, propName)
	}

	out := make([]T, 0, len(list))
	for _, id := range list {
		out = append(out, d.Factory.FromID(id))
	}
	return out, nil
}
