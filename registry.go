// Package registry binds contract keys to lazily created, lifecycle managed
// instances of concrete implementation types. It decouples code that needs a
// capability from the code that constructs it.
//
// The registry performs no internal synchronization unless configured
// Concurrent; registration typically happens during a startup phase with
// resolution following in steady state.
package registry

import (
	"log"
	"net/http"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/viant/gmetric"
	"github.com/viant/gmetric/provider"
	"github.com/viant/gmetric/stat"
	"github.com/viant/registry/config"
	"github.com/viant/registry/contract"
	"github.com/viant/registry/entry"
	"github.com/viant/registry/shared"
)

const metricURI = "/v1/api/metric/"

// ErrDuplicateKey indicates a registration under an already present key.
// This is a programming error; the previous entry stays intact.
var ErrDuplicateKey = errors.New("duplicate key")

// Service maps contract keys to managed entries. It owns every entry and,
// on Close, destroys every owned instance.
type Service struct {
	config     *config.Config
	entries    store
	classifier *entry.Classifier
	journal    *journal
	metrics    *gmetric.Service
	resolveOp  *gmetric.Operation
	teardownOp *gmetric.Operation
	mux        *sync.RWMutex
}

func (s *Service) lock() {
	if s.mux != nil {
		s.mux.Lock()
	}
}

func (s *Service) unlock() {
	if s.mux != nil {
		s.mux.Unlock()
	}
}

func (s *Service) rLock() {
	if s.mux != nil {
		s.mux.RLock()
	}
}

func (s *Service) rUnlock() {
	if s.mux != nil {
		s.mux.RUnlock()
	}
}

// RegisterFactory binds a component family construction function to an
// implementation type; subsequent registrations of that type classify as
// component entries built through the factory.
func (s *Service) RegisterFactory(implType reflect.Type, factory entry.Factory) {
	s.lock()
	defer s.unlock()
	s.classifier.RegisterFactory(implType, factory)
}

// Register binds key to an implementation type. The lifecycle kind is chosen
// by the classifier once, here. Registering an already present key fails
// with ErrDuplicateKey and leaves the previous entry intact.
func (s *Service) Register(key contract.Key, implType reflect.Type, options ...Option) error {
	if key.IsZero() {
		return errors.Errorf("key was empty")
	}
	if implType == nil {
		return errors.Errorf("implementation type was empty for %v", key)
	}
	opts := NewOptions(options...)
	s.lock()
	defer s.unlock()
	if _, ok := s.entries.get(key); ok {
		return errors.Wrapf(ErrDuplicateKey, "%v", key)
	}
	kind, factory := s.classifier.Classify(implType)
	managed := entry.New(implType, kind, opts.IsOwner(), factory)
	if instance := opts.GetInstance(); instance != nil {
		if err := managed.Update(instance); err != nil {
			return err
		}
	}
	s.entries.put(key, managed)
	s.journal.log(eventRegister, key, managed)
	return nil
}

// Unregister removes the entry for key, destroying its owned instance; an
// absent key is a no-op, not an error.
func (s *Service) Unregister(key contract.Key) error {
	s.lock()
	defer s.unlock()
	managed, ok := s.entries.get(key)
	if !ok {
		return nil
	}
	err := s.teardownEntry(managed)
	s.entries.remove(key)
	s.journal.log(eventUnregister, key, managed)
	return err
}

// RemoveInstance tears the entry instance down but keeps the key registered,
// so a later Resolve re-constructs a fresh instance.
func (s *Service) RemoveInstance(key contract.Key) error {
	s.lock()
	defer s.unlock()
	managed, ok := s.entries.get(key)
	if !ok {
		return nil
	}
	err := s.teardownEntry(managed)
	s.journal.log(eventRemove, key, managed)
	return err
}

// DetachInstance forgets the entry instance without destroying it, for use
// when ownership lies elsewhere; the key stays registered.
func (s *Service) DetachInstance(key contract.Key) {
	s.lock()
	defer s.unlock()
	managed, ok := s.entries.get(key)
	if !ok {
		return
	}
	managed.Detach()
	s.journal.log(eventDetach, key, managed)
}

// ReplaceInstance swaps the entry instance; an absent key is a no-op. Shared
// entries reject a replacement that is not shared.
func (s *Service) ReplaceInstance(key contract.Key, instance interface{}) error {
	s.lock()
	defer s.unlock()
	managed, ok := s.entries.get(key)
	if !ok {
		return nil
	}
	if err := managed.Update(instance); err != nil {
		return err
	}
	s.journal.log(eventReplace, key, managed)
	return nil
}

// Resolve returns the instance registered under key, constructing it on
// first use. Construction is idempotent, so repeated calls return the same
// instance. An unregistered key yields no instance, not an error.
func (s *Service) Resolve(key contract.Key) (interface{}, bool) {
	s.lock()
	defer s.unlock()
	managed, ok := s.entries.get(key)
	if !ok {
		return nil, false
	}
	if managed.IsAlive() {
		return managed.Instance(), true
	}
	instance, err := s.construct(key, managed)
	if err != nil {
		log.Printf("failed to construct %v due to: %v", key, err)
		return nil, false
	}
	return instance, true
}

// Query resolves key and asks the live instance whether it also satisfies
// the target contract, returning the same instance on success. A failed
// query is an expected outcome, never an error.
func (s *Service) Query(key contract.Key, target contract.Key) (interface{}, bool) {
	instance, ok := s.Resolve(key)
	if !ok {
		return nil, false
	}
	return contract.Assert(instance, target)
}

// IsRegistered reports whether key has an entry.
func (s *Service) IsRegistered(key contract.Key) bool {
	s.rLock()
	defer s.rUnlock()
	_, ok := s.entries.get(key)
	return ok
}

// Supports reports whether the implementation type registered under key
// declares the target contract, without constructing an instance.
func (s *Service) Supports(key contract.Key, target contract.Key) bool {
	s.rLock()
	defer s.rUnlock()
	managed, ok := s.entries.get(key)
	if !ok {
		return false
	}
	return contract.Implements(managed.Type(), target)
}

// ListAlive returns, in lexical order, every key whose entry currently holds
// a live instance.
func (s *Service) ListAlive() []contract.Key {
	s.rLock()
	defer s.rUnlock()
	var ret []contract.Key
	s.entries.each(func(key contract.Key, managed *entry.Managed) bool {
		if managed.IsAlive() {
			ret = append(ret, key)
		}
		return true
	})
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// Count returns the number of registered entries.
func (s *Service) Count() int {
	s.rLock()
	defer s.rUnlock()
	return s.entries.count()
}

// Close destroys every owned instance, clears all entries and shuts the
// journal down. The service stays usable for registration afterwards.
func (s *Service) Close() error {
	s.lock()
	defer s.unlock()
	errs := &shared.Errors{}
	s.entries.each(func(key contract.Key, managed *entry.Managed) bool {
		errs.Add(s.teardownEntry(managed))
		return true
	})
	s.entries = newStore(s.config.Concurrent, s.config.InitialCapacity)
	errs.Add(s.journal.Close())
	return errs.First()
}

// Metrics returns the metric service, nil when metrics are disabled.
func (s *Service) Metrics() *gmetric.Service {
	return s.metrics
}

// MetricsHandler returns an HTTP handler exposing registry counters, nil
// when metrics are disabled.
func (s *Service) MetricsHandler() http.Handler {
	if s.metrics == nil {
		return nil
	}
	return gmetric.NewHandler(metricURI, s.metrics)
}

func (s *Service) construct(key contract.Key, managed *entry.Managed) (instance interface{}, err error) {
	if s.resolveOp != nil {
		stats := stat.New()
		onDone := s.resolveOp.Begin(time.Now())
		defer func() {
			if err != nil {
				stats.Append(err)
			}
			onDone(time.Now(), stats)
		}()
	}
	instance, err = managed.Init()
	if err == nil {
		s.journal.log(eventConstruct, key, managed)
	}
	return instance, err
}

func (s *Service) teardownEntry(managed *entry.Managed) (err error) {
	if s.teardownOp != nil {
		stats := stat.New()
		onDone := s.teardownOp.Begin(time.Now())
		defer func() {
			if err != nil {
				stats.Append(err)
			}
			onDone(time.Now(), stats)
		}()
	}
	return managed.Remove()
}

// New creates a registry service with the supplied config; a nil config
// yields the defaults.
func New(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	srv := &Service{
		config:     cfg,
		entries:    newStore(cfg.Concurrent, cfg.InitialCapacity),
		classifier: entry.NewClassifier(),
	}
	if cfg.Concurrent {
		srv.mux = &sync.RWMutex{}
	}
	if cfg.Metrics {
		srv.metrics = gmetric.New()
		srv.resolveOp = srv.metrics.MultiOperationCounter(reflect.TypeOf(srv).PkgPath(), "resolve", "resolve operation", time.Microsecond, time.Minute, 2, provider.NewBasic())
		srv.teardownOp = srv.metrics.MultiOperationCounter(reflect.TypeOf(srv).PkgPath(), "teardown", "teardown operation", time.Microsecond, time.Minute, 2, provider.NewBasic())
	}
	jn, err := newJournal(cfg)
	if err != nil {
		return nil, err
	}
	srv.journal = jn
	return srv, nil
}
