package registry

import (
	"reflect"

	"github.com/viant/registry/contract"
)

// Register binds contract C to implementation type T, deriving the key via
// the contract table. It carries no semantics beyond the key based Register.
func Register[C any, T any](s *Service, options ...Option) (contract.Key, error) {
	key := contract.RegisterType[C]()
	implType := reflect.TypeOf((*T)(nil)).Elem()
	return key, s.Register(key, implType, options...)
}

// Resolve returns the instance bound to contract C, constructing it on
// first use.
func Resolve[C any](s *Service) (C, bool) {
	var zero C
	instance, ok := s.Resolve(contract.KeyOf[C]())
	if !ok {
		return zero, false
	}
	ret, ok := instance.(C)
	if !ok {
		return zero, false
	}
	return ret, true
}

// Query asks the instance registered under key whether it also satisfies
// contract C, returning the re-typed reference on success.
func Query[C any](s *Service, key contract.Key) (C, bool) {
	var zero C
	target := contract.RegisterType[C]()
	instance, ok := s.Query(key, target)
	if !ok {
		return zero, false
	}
	ret, ok := instance.(C)
	if !ok {
		return zero, false
	}
	return ret, true
}

// Supports reports whether the implementation registered under key declares
// contract C, without constructing an instance.
func Supports[C any](s *Service, key contract.Key) bool {
	return s.Supports(key, contract.RegisterType[C]())
}
