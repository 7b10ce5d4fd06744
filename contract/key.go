package contract

import "reflect"

// Key identifies a contract within the process. It is opaque and comparable;
// two keys are equal iff they identify the same contract.
type Key string

// IsZero reports whether the key is empty.
func (k Key) IsZero() bool { return k == "" }

// String returns the fully qualified contract name.
func (k Key) String() string { return string(k) }

// KeyFor derives a stable key from a contract type. The key is the type's
// package path qualified name, so unrelated contracts never collide.
func KeyFor(t reflect.Type) Key {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return Key(t.Name())
	}
	return Key(t.PkgPath() + "." + t.Name())
}

// KeyOf derives a key from a contract type parameter.
func KeyOf[C any]() Key {
	return KeyFor(reflect.TypeOf((*C)(nil)).Elem())
}
