// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

package xwinprop

import "errors"

// Errors raised by this package. Transport errors coming out of a Conn are
// returned unchanged and never match any of these.
var (
	ErrNoAtomForName     = errors.New("xwinprop: no atom for name")
	ErrNoAtomForID       = errors.New("xwinprop: no atom for id")
	ErrPropertyNotFound  = errors.New("xwinprop: property not found")
	ErrPropertyChanged   = errors.New("xwinprop: property changed while reading")
	ErrUnsupportedFormat = errors.New("xwinprop: unsupported format width")
	ErrMalformedValue    = errors.New("xwinprop: malformed property value")
	ErrDuplicateRule     = errors.New("xwinprop: decoder rule already registered")
	ErrDetachedWindow    = errors.New("xwinprop: window not created by a Client")
)

// IsNoSuchAtom reports whether err is either atom resolution failure.
func IsNoSuchAtom(err error) bool {
	return errors.Is(err, ErrNoAtomForName) || errors.Is(err, ErrNoAtomForID)
}
