// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

package xwinprop

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// Atom pairs a server atom with its name.
type Atom struct {
	ID   xproto.Atom
	Name string
}

func (a Atom) String() string {
	return fmt.Sprintf("%s(%d)", a.Name, a.ID)
}

// AtomResolver maps atom names to ids and back.
type AtomResolver interface {
	ID(name string) (xproto.Atom, error)
	Name(id xproto.Atom) (string, error)
}

// Atoms resolves atoms by asking the server on every call.
type Atoms struct {
	conn Conn
}

func NewAtoms(conn Conn) *Atoms {
	return &Atoms{conn: conn}
}

// ID looks up an existing atom. It never interns a new one.
func (a *Atoms) ID(name string) (xproto.Atom, error) {
	id, err := a.conn.InternAtom(name, true)
	if err != nil {
		return xproto.AtomNone, err
	}
	if id == xproto.AtomNone {
		return xproto.AtomNone, fmt.Errorf("%w: %q", ErrNoAtomForName, name)
	}
	return id, nil
}

// Name looks up the name of id. Only a server Atom error is reported as
// ErrNoAtomForID.
func (a *Atoms) Name(id xproto.Atom) (string, error) {
	name, err := a.conn.GetAtomName(id)
	if err != nil {
		var atomErr xproto.AtomError
		if errors.As(err, &atomErr) {
			return "", fmt.Errorf("%w: %d: %v", ErrNoAtomForID, id, atomErr)
		}
		return "", err
	}
	return name, nil
}

// ByName resolves name into an Atom.
func ByName(r AtomResolver, name string) (Atom, error) {
	id, err := r.ID(name)
	if err != nil {
		return Atom{}, err
	}
	return Atom{ID: id, Name: name}, nil
}

// ByID resolves id into an Atom.
func ByID(r AtomResolver, id xproto.Atom) (Atom, error) {
	name, err := r.Name(id)
	if err != nil {
		return Atom{}, err
	}
	return Atom{ID: id, Name: name}, nil
}
