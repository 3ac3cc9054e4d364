// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

package xwinprop

import (
	"github.com/BurntSushi/xgb/xproto"
	lru "github.com/hashicorp/golang-lru"
)

// CachedAtoms remembers successful lookups of the wrapped resolver. Atoms
// live as long as the server, so entries are never invalidated, only evicted.
type CachedAtoms struct {
	next   AtomResolver
	byName *lru.Cache
	byID   *lru.Cache
}

func NewCachedAtoms(next AtomResolver, size int) (*CachedAtoms, error) {
	byName, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	byID, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &CachedAtoms{next: next, byName: byName, byID: byID}, nil
}

func (c *CachedAtoms) ID(name string) (xproto.Atom, error) {
	if v, ok := c.byName.Get(name); ok {
		return v.(xproto.Atom), nil
	}
	id, err := c.next.ID(name)
	if err != nil {
		return id, err
	}
	c.byName.Add(name, id)
	c.byID.Add(id, name)
	return id, nil
}

func (c *CachedAtoms) Name(id xproto.Atom) (string, error) {
	if v, ok := c.byID.Get(id); ok {
		return v.(string), nil
	}
	name, err := c.next.Name(id)
	if err != nil {
		return name, err
	}
	c.byID.Add(id, name)
	c.byName.Add(name, id)
	return name, nil
}
