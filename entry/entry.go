// Package entry manages the binding between one implementation type and its
// lazily created instance, with a per entry construction and destruction
// policy.
package entry

import (
	"io"
	"reflect"

	"github.com/pkg/errors"
	"github.com/viant/registry/shared"
)

// Kind selects the construction and destruction strategy of a managed entry.
type Kind int

const (
	//KindPlain default-constructs the implementation type and, when owned,
	//destroys the instance explicitly on removal.
	KindPlain Kind = iota
	//KindComponent constructs through the component family factory with a
	//nil owner.
	KindComponent
	//KindShared never destroys explicitly; the instance is freed when the
	//last holder releases it.
	KindShared
)

func (k Kind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindShared:
		return "shared"
	}
	return "plain"
}

// ErrInvalidInstanceKind indicates a shared entry was given a replacement
// instance that is not itself shared.
var ErrInvalidInstanceKind = errors.New("invalid instance kind")

// Shared is implemented by reference counted instances. The registry never
// invokes Retain or Release itself; they exist for holders outside the
// registry, and dropping the entry reference is the registry's release.
type Shared interface {
	Retain()
	Release()
}

// Factory creates a component family instance for the supplied owner.
type Factory func(owner interface{}) interface{}

// Managed binds one implementation type to its current instance, ownership
// and lifecycle policy. The type, kind and ownership are fixed at
// registration time.
type Managed struct {
	implType reflect.Type
	kind     Kind
	owner    bool
	factory  Factory
	instance interface{}
	shared   Shared
}

// Type returns the implementation type fixed at registration.
func (m *Managed) Type() reflect.Type {
	return m.implType
}

// Kind returns the lifecycle kind.
func (m *Managed) Kind() Kind {
	return m.kind
}

// Owner reports whether the entry destroys its instance on removal.
func (m *Managed) Owner() bool {
	return m.owner
}

// IsAlive reports whether the entry holds a live instance.
func (m *Managed) IsAlive() bool {
	return m.instance != nil
}

// Instance returns the live instance or nil.
func (m *Managed) Instance() interface{} {
	return m.instance
}

// SharedView returns the shared contract view of a shared entry, nil otherwise.
func (m *Managed) SharedView() Shared {
	return m.shared
}

// Init lazily constructs the instance; calling it on a live entry is a no-op,
// so repeated resolution never re-constructs.
func (m *Managed) Init() (interface{}, error) {
	if m.IsAlive() {
		return m.instance, nil
	}
	switch m.kind {
	case KindComponent:
		if m.factory == nil {
			return nil, errors.Errorf("missing factory for %v", m.implType)
		}
		m.instance = m.factory(nil)
		if m.instance == nil {
			return nil, errors.Errorf("factory for %v returned no instance", m.implType)
		}
	default:
		m.instance = reflect.New(m.implType).Interface()
	}
	if m.kind == KindShared {
		aShared, ok := m.instance.(Shared)
		if !ok {
			m.instance = nil
			return nil, errors.Wrapf(ErrInvalidInstanceKind, "%v is not shared", m.implType)
		}
		m.shared = aShared
	}
	return m.instance, nil
}

// Remove tears the instance down. Owned plain and component instances are
// closed when they implement io.Closer; shared instances only have both
// views cleared, shared ownership frees them once the last holder is gone.
func (m *Managed) Remove() (err error) {
	if !m.IsAlive() {
		return nil
	}
	if m.kind != KindShared && m.owner {
		if closer, ok := m.instance.(io.Closer); ok {
			shared.CloseWithErrorHandling(closer, &err)
		}
	}
	m.instance = nil
	m.shared = nil
	return err
}

// Detach forgets the instance without destroying it; ownership lies elsewhere.
func (m *Managed) Detach() {
	m.instance = nil
	m.shared = nil
}

// Update replaces the instance. A nil value detaches. Shared entries reject
// a replacement that is not shared and re-derive the shared view otherwise.
func (m *Managed) Update(instance interface{}) error {
	if instance == nil {
		m.Detach()
		return nil
	}
	if m.kind == KindShared {
		aShared, ok := instance.(Shared)
		if !ok {
			return errors.Wrapf(ErrInvalidInstanceKind, "%v is not shared", reflect.TypeOf(instance))
		}
		m.instance = instance
		m.shared = aShared
		return nil
	}
	m.instance = instance
	return nil
}

// New creates a managed entry; kind and factory come from the classifier and
// stay fixed for the entry lifetime.
func New(implType reflect.Type, kind Kind, owner bool, factory Factory) *Managed {
	for implType.Kind() == reflect.Ptr {
		implType = implType.Elem()
	}
	return &Managed{implType: implType, kind: kind, owner: owner, factory: factory}
}
