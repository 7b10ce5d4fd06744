package registry

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/registry/contract"
)

func TestDefault(t *testing.T) {
	defer func() { _ = Shutdown() }()

	srv := Default()
	assert.NotNil(t, srv)
	assert.Same(t, srv, Default())

	key := contract.Key("singleton/test.Connection")
	assert.Nil(t, srv.Register(key, reflect.TypeOf(Connection{})))
	instance, ok := srv.Resolve(key)
	assert.True(t, ok)

	assert.Nil(t, Shutdown())
	assert.True(t, instance.(*Connection).closed, "shutdown destroys owned instances")
	assert.Nil(t, Shutdown(), "repeated shutdown is a no-op")

	next := Default()
	assert.NotNil(t, next)
	assert.NotSame(t, srv, next)
}
