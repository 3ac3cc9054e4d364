// This file is part of the program "xwinprop".
// Please see the LICENSE file for copyright information.

package xwinprop

import (
	"fmt"
	"sync"
)

// Decoder turns a raw property value into a Go value. typeName is the name
// of the declared type atom, propName the name of the property and format
// the element width in bits.
type Decoder interface {
	Decode(buf []byte, typeName, propName string, format byte) (any, error)
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(buf []byte, typeName, propName string, format byte) (any, error)

func (f DecoderFunc) Decode(buf []byte, typeName, propName string, format byte) (any, error) {
	return f(buf, typeName, propName, format)
}

// RuleOption changes how a rule is registered.
type RuleOption func(*ruleOptions)

type ruleOptions struct {
	overwrite bool
}

// AllowOverwrite lets a registration replace an existing rule for the same
// selector instead of failing with ErrDuplicateRule.
func AllowOverwrite() RuleOption {
	return func(o *ruleOptions) {
		o.overwrite = true
	}
}

// Registry picks a Decoder for a property. A rule keyed by property name
// wins over a rule keyed by type name, which wins over the default.
//
// Rules are meant to be registered during setup, before the registry is
// shared; the lock only keeps a late registration from racing a Decode.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Decoder
	byType map[string]Decoder
	def    Decoder
}

// NewRegistry returns an empty registry falling back to def.
func NewRegistry(def Decoder) *Registry {
	if def == nil {
		panic("xwinprop: default decoder required")
	}
	return &Registry{
		byName: make(map[string]Decoder),
		byType: make(map[string]Decoder),
		def:    def,
	}
}

// RegisterByType registers d for every property whose declared type is
// typeName.
func (r *Registry) RegisterByType(typeName string, d Decoder, opts ...RuleOption) error {
	return r.register(r.byType, "type", typeName, d, opts)
}

// RegisterByName registers d for the property propName, whatever its type.
func (r *Registry) RegisterByName(propName string, d Decoder, opts ...RuleOption) error {
	return r.register(r.byName, "name", propName, d, opts)
}

func (r *Registry) register(rules map[string]Decoder, kind, key string, d Decoder, opts []RuleOption) error {
	if d == nil {
		return fmt.Errorf("xwinprop: nil decoder for %s %q", kind, key)
	}
	var o ruleOptions
	for _, opt := range opts {
		opt(&o)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := rules[key]; exists && !o.overwrite {
		return fmt.Errorf("%w: %s %q", ErrDuplicateRule, kind, key)
	}
	rules[key] = d
	return nil
}

// Lookup returns the decoder Decode would use.
func (r *Registry) Lookup(typeName, propName string) Decoder {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if d, ok := r.byName[propName]; ok {
		return d
	}
	if d, ok := r.byType[typeName]; ok {
		return d
	}
	return r.def
}

func (r *Registry) Decode(buf []byte, typeName, propName string, format byte) (any, error) {
	return r.Lookup(typeName, propName).Decode(buf, typeName, propName, format)
}
