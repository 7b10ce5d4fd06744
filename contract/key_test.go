package contract

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type ILogger interface {
	Log(message string)
}

type testLogger struct{}

func (l *testLogger) Log(message string) {}

func TestKeyFor(t *testing.T) {
	var testCases = []struct {
		description string
		rType       reflect.Type
		expect      Key
	}{
		{
			description: "interface type",
			rType:       reflect.TypeOf((*ILogger)(nil)).Elem(),
			expect:      "github.com/viant/registry/contract.ILogger",
		},
		{
			description: "pointer to interface derefs",
			rType:       reflect.TypeOf((*ILogger)(nil)),
			expect:      "github.com/viant/registry/contract.ILogger",
		},
		{
			description: "struct type",
			rType:       reflect.TypeOf(testLogger{}),
			expect:      "github.com/viant/registry/contract.testLogger",
		},
	}

	for _, testCase := range testCases {
		actual := KeyFor(testCase.rType)
		assert.Equal(t, testCase.expect, actual, testCase.description)
		assert.False(t, actual.IsZero(), testCase.description)
	}
}

func TestKeyOf(t *testing.T) {
	assert.Equal(t, KeyFor(reflect.TypeOf((*ILogger)(nil)).Elem()), KeyOf[ILogger]())
	assert.Equal(t, KeyOf[ILogger](), KeyOf[ILogger]())
}
