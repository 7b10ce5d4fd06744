package contract

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type IGreeter interface {
	Greet() string
}

type IShutdown interface {
	Shutdown()
}

type greeter struct{}

func (g *greeter) Greet() string { return "hello" }
func (g *greeter) Log(message string) {}

func TestRegister(t *testing.T) {
	key := RegisterType[IGreeter]()
	assert.Equal(t, Key("github.com/viant/registry/contract.IGreeter"), key)
	assert.NotNil(t, Registry())
	stored := Lookup(key)
	if !assert.NotNil(t, stored) {
		return
	}
	assert.Equal(t, key.String(), stored.Key(), "table key matches the contract key")
	assert.Equal(t, reflect.TypeOf((*IGreeter)(nil)).Elem(), stored.Type)
	again := RegisterType[IGreeter]()
	assert.Equal(t, key, again)
	assert.Same(t, stored, Lookup(again))
}

func TestAssert(t *testing.T) {
	greeterKey := RegisterType[IGreeter]()
	loggerKey := RegisterType[ILogger]()
	shutdownKey := RegisterType[IShutdown]()

	instance := &greeter{}
	var testCases = []struct {
		description string
		instance    interface{}
		key         Key
		expect      bool
	}{
		{
			description: "registered contract",
			instance:    instance,
			key:         greeterKey,
			expect:      true,
		},
		{
			description: "unrelated contract the type also implements",
			instance:    instance,
			key:         loggerKey,
			expect:      true,
		},
		{
			description: "contract the type does not implement",
			instance:    instance,
			key:         shutdownKey,
			expect:      false,
		},
		{
			description: "unknown contract",
			instance:    instance,
			key:         Key("github.com/viant/unknown.IContract"),
			expect:      false,
		},
		{
			description: "nil instance",
			instance:    nil,
			key:         greeterKey,
			expect:      false,
		},
	}

	for _, testCase := range testCases {
		actual, ok := Assert(testCase.instance, testCase.key)
		assert.Equal(t, testCase.expect, ok, testCase.description)
		if testCase.expect {
			assert.Same(t, testCase.instance, actual, testCase.description)
		}
	}
}

func TestImplements(t *testing.T) {
	greeterKey := RegisterType[IGreeter]()
	shutdownKey := RegisterType[IShutdown]()

	var testCases = []struct {
		description string
		rType       reflect.Type
		key         Key
		expect      bool
	}{
		{
			description: "struct implements via pointer receiver",
			rType:       reflect.TypeOf(greeter{}),
			key:         greeterKey,
			expect:      true,
		},
		{
			description: "pointer type implements",
			rType:       reflect.TypeOf(&greeter{}),
			key:         greeterKey,
			expect:      true,
		},
		{
			description: "contract not declared",
			rType:       reflect.TypeOf(greeter{}),
			key:         shutdownKey,
			expect:      false,
		},
		{
			description: "nil type",
			rType:       nil,
			key:         greeterKey,
			expect:      false,
		},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Implements(testCase.rType, testCase.key), testCase.description)
	}
}

func TestAs(t *testing.T) {
	instance := &greeter{}
	typed, ok := As[IGreeter](instance)
	assert.True(t, ok)
	assert.Equal(t, "hello", typed.Greet())
	_, ok = As[IShutdown](instance)
	assert.False(t, ok)
}
