// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

package xwinprop

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"go.uber.org/zap"
)

// Property is a decoded property value with its declared type.
type Property struct {
	Value any
	Type  Atom
}

// Window is a handle on a server window. It holds no state besides its id;
// two Windows with the same id are interchangeable. Handles must come from
// Client.FromID or Client.Root; a bare &Window{} cannot query properties.
type Window struct {
	ID     xproto.Window
	client *Client
}

func (w *Window) String() string {
	return fmt.Sprintf("0x%x", uint32(w.ID))
}

// Property reads and decodes the property called name.
func (w *Window) Property(name string) (*Property, error) {
	c := w.client
	if c == nil {
		return nil, fmt.Errorf("%w: %v", ErrDetachedWindow, w)
	}

	prop, err := ByName(c.atoms, name)
	if err != nil {
		return nil, err
	}
	raw, err := c.fetcher.Fetch(w.ID, prop.ID)
	if err != nil {
		return nil, err
	}
	typ, err := ByID(c.atoms, raw.Type)
	if err != nil {
		return nil, err
	}

	c.log.Debug("decoding property",
		zap.Stringer("window", w),
		zap.String("property", prop.Name),
		zap.String("type", typ.Name),
		zap.Uint8("format", raw.Format),
		zap.Int("bytes", len(raw.Value)))

	value, err := c.registry.Decode(raw.Value, typ.Name, prop.Name, raw.Format)
	if err != nil {
		return nil, err
	}
	return &Property{Value: value, Type: typ}, nil
}

// GetProperty is Property without the type.
func (w *Window) GetProperty(name string) (any, error) {
	p, err := w.Property(name)
	if err != nil {
		return nil, err
	}
	return p.Value, nil
}
