// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

package xwinprop

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Conn is the subset of the X protocol this package needs. Every method
// blocks until the server replies.
type Conn interface {
	InternAtom(name string, onlyIfExists bool) (xproto.Atom, error)
	GetAtomName(atom xproto.Atom) (string, error)
	GetProperty(win xproto.Window, prop, typ xproto.Atom, offset, length uint32) (*xproto.GetPropertyReply, error)
	Root() xproto.Window
}

// XConn implements Conn on top of an xgb connection.
type XConn struct {
	c *xgb.Conn
}

func NewXConn(c *xgb.Conn) *XConn {
	return &XConn{c: c}
}

func (x *XConn) InternAtom(name string, onlyIfExists bool) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(x.c, onlyIfExists, uint16(len(name)), name).Reply()
	if err != nil {
		return xproto.AtomNone, err
	}
	if reply == nil {
		return xproto.AtomNone, nil
	}
	return reply.Atom, nil
}

func (x *XConn) GetAtomName(atom xproto.Atom) (string, error) {
	reply, err := xproto.GetAtomName(x.c, atom).Reply()
	if err != nil {
		return "", err
	}
	return reply.Name, nil
}

// GetProperty never deletes the property, the request doubles as a deleter
// in the core protocol.
func (x *XConn) GetProperty(win xproto.Window, prop, typ xproto.Atom, offset, length uint32) (*xproto.GetPropertyReply, error) {
	return xproto.GetProperty(x.c, false, win, prop, typ, offset, length).Reply()
}

// Root returns the root window of the default screen.
func (x *XConn) Root() xproto.Window {
	return xproto.Setup(x.c).DefaultScreen(x.c).Root
}
