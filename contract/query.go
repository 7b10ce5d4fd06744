package contract

import "reflect"

// Assert performs a capability query: it reports whether instance satisfies
// the contract registered under key and on success returns the very same
// instance, usable through the queried contract. A failed query is an
// expected outcome, not an error.
func Assert(instance interface{}, key Key) (interface{}, bool) {
	if instance == nil {
		return nil, false
	}
	xType := Lookup(key)
	if xType == nil || xType.Type.Kind() != reflect.Interface {
		return nil, false
	}
	if !reflect.TypeOf(instance).Implements(xType.Type) {
		return nil, false
	}
	return instance, true
}

// Implements reports whether t, or a pointer to t, declares the contract
// registered under key. No instance is needed.
func Implements(t reflect.Type, key Key) bool {
	if t == nil {
		return false
	}
	xType := Lookup(key)
	if xType == nil || xType.Type.Kind() != reflect.Interface {
		return false
	}
	if t.Implements(xType.Type) {
		return true
	}
	if t.Kind() != reflect.Ptr {
		return reflect.PtrTo(t).Implements(xType.Type)
	}
	return false
}

// As re-types instance as contract C.
func As[C any](instance interface{}) (C, bool) {
	ret, ok := instance.(C)
	return ret, ok
}
