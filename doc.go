// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

// Package xwinprop reads window properties from an X server and decodes them
// into Go values.
//
// A Client resolves the property name to an atom, reads the whole value
// (in two requests when it is larger than the size hint) and hands the bytes
// to the Decoder registered for it. Decoders are looked up by property name
// first, then by the name of the declared type, then the default:
//
//	X, err := xgb.NewConn()
//	...
//	c, err := xwinprop.New(xwinprop.NewXConn(X))
//	...
//	clients, err := c.Root().GetProperty("_NET_CLIENT_LIST")
//	for _, w := range clients.([]*xwinprop.Window) {
//		name, _ := w.GetProperty("_NET_WM_NAME")
//		fmt.Println(name)
//	}
package xwinprop
