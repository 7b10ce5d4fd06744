package registry

import (
	"github.com/viant/registry/contract"
	"github.com/viant/xreflect"
)

// Describe returns the Go type definition body of the implementation type
// registered under key, for diagnostics.
func (s *Service) Describe(key contract.Key) (string, bool) {
	s.rLock()
	defer s.rUnlock()
	managed, ok := s.entries.get(key)
	if !ok {
		return "", false
	}
	rType := managed.Type()
	aType := xreflect.NewType(rType.Name(), xreflect.WithReflectType(rType))
	return aType.Body(), true
}
