// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

package xwinprop

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"go.uber.org/zap"
)

// DefaultSizeHint is the length, in 32-bit words, of the first read.
const DefaultSizeHint = 100

// RawProperty is a complete, undecoded property value.
type RawProperty struct {
	Value  []byte
	Type   xproto.Atom
	Format byte
}

// Fetcher reads whole property values.
type Fetcher struct {
	conn     Conn
	log      *zap.Logger
	SizeHint uint32
}

func NewFetcher(conn Conn, log *zap.Logger) *Fetcher {
	return &Fetcher{conn: conn, log: log, SizeHint: DefaultSizeHint}
}

// Fetch reads prop from win in at most two requests: one of SizeHint words,
// then, if the server reports bytes left over, one sized to the exact
// remainder. The second read must return exactly the remainder announced by
// the first, with the same format and type; anything else means the property
// was resized, retyped or deleted between the two reads and
// ErrPropertyChanged is returned.
//
// Both reads ask for any type. Asking for a specific type that does not
// match makes the server return the metadata without the value.
func (f *Fetcher) Fetch(win xproto.Window, prop xproto.Atom) (RawProperty, error) {
	first, err := f.segment(win, prop, 0, f.SizeHint)
	if err != nil {
		return RawProperty{}, err
	}
	if first.Format == 0 {
		return RawProperty{}, fmt.Errorf("%w: atom %d on window 0x%x", ErrPropertyNotFound, prop, win)
	}

	raw := RawProperty{
		Value:  first.Value,
		Type:   first.Type,
		Format: first.Format,
	}
	if first.BytesAfter == 0 {
		return raw, nil
	}

	offset := uint32(len(first.Value) / 4)
	length := uint32((uint64(first.BytesAfter) + 3) / 4)
	rest, err := f.segment(win, prop, offset, length)
	if err != nil {
		return RawProperty{}, err
	}
	if rest.BytesAfter != 0 {
		return RawProperty{}, fmt.Errorf("%w: atom %d on window 0x%x has %d more bytes",
			ErrPropertyChanged, prop, win, rest.BytesAfter)
	}
	if rest.Format != first.Format || rest.Type != first.Type || uint32(len(rest.Value)) != first.BytesAfter {
		return RawProperty{}, fmt.Errorf("%w: atom %d on window 0x%x read %d of %d remaining bytes (format %d, type %d)",
			ErrPropertyChanged, prop, win, len(rest.Value), first.BytesAfter, rest.Format, rest.Type)
	}

	value := make([]byte, 0, len(first.Value)+len(rest.Value))
	value = append(value, first.Value...)
	raw.Value = append(value, rest.Value...)
	return raw, nil
}

func (f *Fetcher) segment(win xproto.Window, prop xproto.Atom, offset, length uint32) (*xproto.GetPropertyReply, error) {
	reply, err := f.conn.GetProperty(win, prop, xproto.GetPropertyTypeAny, offset, length)
	if err != nil {
		return nil, err
	}
	if reply == nil {
		reply = &xproto.GetPropertyReply{}
	}
	f.log.Debug("read property segment",
		zap.Uint32("window", uint32(win)),
		zap.Uint32("atom", uint32(prop)),
		zap.Uint32("offset", offset),
		zap.Uint32("length", length),
		zap.Uint8("format", reply.Format),
		zap.Int("bytes", len(reply.Value)),
		zap.Uint32("bytes_after", reply.BytesAfter))
	return reply, nil
}
