// Package contract derives stable contract keys from interface types and
// keeps the process-wide contract table used by capability queries.
package contract

import (
	"reflect"

	"github.com/viant/x"
)

var registry = x.NewRegistry()

// Register adds a contract type to the process-wide contract table and
// returns its key. Pointer types are dereferenced; registering the same
// contract twice is a no-op.
func Register(t reflect.Type) Key {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	key := KeyFor(t)
	if registry.Lookup(key.String()) == nil {
		registry.Register(x.NewType(t))
	}
	return key
}

// RegisterType registers contract type parameter C and returns its key.
func RegisterType[C any]() Key {
	return Register(reflect.TypeOf((*C)(nil)).Elem())
}

// Registry returns the process-wide contract table.
func Registry() *x.Registry {
	return registry
}

// Lookup returns the contract type registered under key, or nil when absent.
func Lookup(key Key) *x.Type {
	return registry.Lookup(key.String())
}
