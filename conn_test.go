// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

package xwinprop

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

type fakeProp struct {
	typ    xproto.Atom
	format byte
	value  []byte
}

type propRead struct {
	win            xproto.Window
	prop, typ      xproto.Atom
	offset, length uint32
}

// fakeConn answers requests the way an X server does, from in-memory tables.
type fakeConn struct {
	root  xproto.Window
	atoms map[string]xproto.Atom
	props map[xproto.Window]map[xproto.Atom]*fakeProp

	// called once, right after the first property read
	afterFirstRead func(c *fakeConn)
	err            error

	interns   int
	nameCalls int
	reads     []propRead
}

func newFakeConn() *fakeConn {
	c := &fakeConn{
		root:  1,
		atoms: make(map[string]xproto.Atom),
		props: make(map[xproto.Window]map[xproto.Atom]*fakeProp),
	}
	for i, name := range []string{"WINDOW", "STRING", "UTF8_STRING", "CARDINAL", "_NET_CLIENT_LIST", "_NET_WM_NAME", "WM_NAME", "_NET_WM_PID"} {
		c.atoms[name] = xproto.Atom(100 + i)
	}
	return c
}

func (c *fakeConn) setProp(win xproto.Window, name, typ string, format byte, value []byte) {
	if c.props[win] == nil {
		c.props[win] = make(map[xproto.Atom]*fakeProp)
	}
	c.props[win][c.atoms[name]] = &fakeProp{typ: c.atoms[typ], format: format, value: value}
}

func (c *fakeConn) InternAtom(name string, onlyIfExists bool) (xproto.Atom, error) {
	c.interns++
	if c.err != nil {
		return 0, c.err
	}
	if id, ok := c.atoms[name]; ok {
		return id, nil
	}
	if onlyIfExists {
		return xproto.AtomNone, nil
	}
	id := xproto.Atom(100 + len(c.atoms))
	c.atoms[name] = id
	return id, nil
}

func (c *fakeConn) GetAtomName(atom xproto.Atom) (string, error) {
	c.nameCalls++
	if c.err != nil {
		return "", c.err
	}
	for name, id := range c.atoms {
		if id == atom {
			return name, nil
		}
	}
	return "", xproto.AtomError{BadValue: uint32(atom), NiceName: "Atom"}
}

func (c *fakeConn) GetProperty(win xproto.Window, prop, typ xproto.Atom, offset, length uint32) (*xproto.GetPropertyReply, error) {
	c.reads = append(c.reads, propRead{win: win, prop: prop, typ: typ, offset: offset, length: length})
	if c.err != nil {
		return nil, c.err
	}
	p, ok := c.props[win][prop]
	if !ok {
		return &xproto.GetPropertyReply{}, nil
	}

	start := int(offset) * 4
	if start > len(p.value) {
		return nil, xproto.ValueError{BadValue: offset, NiceName: "Value"}
	}
	end := start + int(length)*4
	if end > len(p.value) {
		end = len(p.value)
	}
	value := append([]byte(nil), p.value[start:end]...)
	reply := &xproto.GetPropertyReply{
		Format:     p.format,
		Type:       p.typ,
		BytesAfter: uint32(len(p.value) - end),
		ValueLen:   uint32(len(value) / int(p.format/8)),
		Value:      value,
	}
	if len(c.reads) == 1 && c.afterFirstRead != nil {
		c.afterFirstRead(c)
	}
	return reply, nil
}

func (c *fakeConn) Root() xproto.Window {
	return c.root
}

func words(vs ...uint32) []byte {
	buf := make([]byte, 4*len(vs))
	for i, v := range vs {
		xgb.Put32(buf[i*4:], v)
	}
	return buf
}
