package entry

import "reflect"

var sharedType = reflect.TypeOf((*Shared)(nil)).Elem()

// Classifier decides which lifecycle kind applies to an implementation type.
// The decision is made once, at registration time, and stays fixed for the
// entry lifetime.
type Classifier struct {
	factories map[reflect.Type]Factory
}

// RegisterFactory binds a component family construction function to a type;
// types with a factory classify as KindComponent.
func (c *Classifier) RegisterFactory(t reflect.Type, factory Factory) {
	c.factories[deref(t)] = factory
}

// Classify returns the lifecycle kind for t and, for component types, the
// construction factory. Shared takes precedence over a registered factory.
func (c *Classifier) Classify(t reflect.Type) (Kind, Factory) {
	t = deref(t)
	if t.Implements(sharedType) || reflect.PtrTo(t).Implements(sharedType) {
		return KindShared, nil
	}
	if factory, ok := c.factories[t]; ok {
		return KindComponent, factory
	}
	return KindPlain, nil
}

// NewClassifier creates a classifier with an empty factory table.
func NewClassifier() *Classifier {
	return &Classifier{factories: make(map[reflect.Type]Factory)}
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
