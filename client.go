// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

package xwinprop

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"go.uber.org/zap"
)

// Client ties atom resolution, property reads and decoding together and
// hands out Window handles.
type Client struct {
	conn     Conn
	log      *zap.Logger
	atoms    AtomResolver
	fetcher  *Fetcher
	registry *Registry
}

type options struct {
	log       *zap.Logger
	sizeHint  uint32
	cacheSize int
}

// Option configures a Client.
type Option func(*options)

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithSizeHint sets the length, in 32-bit words, of the first read of every
// property.
func WithSizeHint(words uint32) Option {
	return func(o *options) {
		o.sizeHint = words
	}
}

// WithAtomCache remembers up to size atoms in each direction. Zero, the
// default, asks the server every time.
func WithAtomCache(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// New returns a Client whose registry decodes WINDOW lists into Windows,
// UTF8_STRING and STRING into strings and everything else into integer
// slices.
func New(conn Conn, opts ...Option) (*Client, error) {
	o := options{sizeHint: DefaultSizeHint}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = Logger()
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	if o.sizeHint == 0 {
		return nil, fmt.Errorf("xwinprop: size hint must be positive")
	}

	var atoms AtomResolver = NewAtoms(conn)
	if o.cacheSize > 0 {
		cached, err := NewCachedAtoms(atoms, o.cacheSize)
		if err != nil {
			return nil, err
		}
		atoms = cached
	}

	fetcher := NewFetcher(conn, o.log)
	fetcher.SizeHint = o.sizeHint

	c := &Client{
		conn:     conn,
		log:      o.log,
		atoms:    atoms,
		fetcher:  fetcher,
		registry: NewRegistry(FixedWidth{}),
	}

	rules := []struct {
		typeName string
		decoder  Decoder
	}{
		{"WINDOW", IDList[*Window]{Factory: c}},
		{"UTF8_STRING", Text{}},
		{"STRING", Text{}},
	}
	for _, r := range rules {
		if err := c.registry.RegisterByType(r.typeName, r.decoder); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Registry returns the decoder registry. Register custom rules before
// querying windows.
func (c *Client) Registry() *Registry {
	return c.registry
}

func (c *Client) Atoms() AtomResolver {
	return c.atoms
}

// FromID returns a handle for the window id. The server is not contacted.
func (c *Client) FromID(id uint32) *Window {
	return &Window{ID: xproto.Window(id), client: c}
}

// Root returns the root window of the default screen.
func (c *Client) Root() *Window {
	return c.FromID(uint32(c.conn.Root()))
}
