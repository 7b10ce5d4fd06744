package registry

import (
	"github.com/dolthub/swiss"
	csmap "github.com/mhmtszr/concurrent-swiss-map"
	"github.com/viant/registry/contract"
	"github.com/viant/registry/entry"
)

// store abstracts the key to entry map so the service can run either on the
// plain swiss map or, when configured concurrent, on the sharded one.
type store interface {
	get(key contract.Key) (*entry.Managed, bool)
	put(key contract.Key, managed *entry.Managed)
	remove(key contract.Key)
	each(fn func(key contract.Key, managed *entry.Managed) bool)
	count() int
}

type swissStore struct {
	data *swiss.Map[contract.Key, *entry.Managed]
}

func (s *swissStore) get(key contract.Key) (*entry.Managed, bool) {
	return s.data.Get(key)
}

func (s *swissStore) put(key contract.Key, managed *entry.Managed) {
	s.data.Put(key, managed)
}

func (s *swissStore) remove(key contract.Key) {
	s.data.Delete(key)
}

func (s *swissStore) each(fn func(key contract.Key, managed *entry.Managed) bool) {
	s.data.Iter(func(key contract.Key, managed *entry.Managed) (stop bool) {
		return !fn(key, managed)
	})
}

func (s *swissStore) count() int {
	return s.data.Count()
}

func newSwissStore(capacity int) *swissStore {
	return &swissStore{data: swiss.NewMap[contract.Key, *entry.Managed](uint32(capacity))}
}

type concurrentStore struct {
	data *csmap.CsMap[contract.Key, *entry.Managed]
}

func (s *concurrentStore) get(key contract.Key) (*entry.Managed, bool) {
	return s.data.Load(key)
}

func (s *concurrentStore) put(key contract.Key, managed *entry.Managed) {
	s.data.Store(key, managed)
}

func (s *concurrentStore) remove(key contract.Key) {
	s.data.Delete(key)
}

func (s *concurrentStore) each(fn func(key contract.Key, managed *entry.Managed) bool) {
	s.data.Range(func(key contract.Key, managed *entry.Managed) (stop bool) {
		return !fn(key, managed)
	})
}

func (s *concurrentStore) count() int {
	return s.data.Count()
}

func newConcurrentStore(capacity int) *concurrentStore {
	return &concurrentStore{data: csmap.Create[contract.Key, *entry.Managed](
		csmap.WithSize[contract.Key, *entry.Managed](uint64(capacity)),
	)}
}

func newStore(concurrent bool, capacity int) store {
	if concurrent {
		return newConcurrentStore(capacity)
	}
	return newSwissStore(capacity)
}
