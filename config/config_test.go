package config

import (
	"context"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/registry/shared"
	tconfig "github.com/viant/tapper/config"
	"github.com/viant/toolbox"
)

func TestNewConfigFromURL(t *testing.T) {
	testLocation := toolbox.CallerDirectory(3)

	cfg, err := NewConfigFromURL(context.Background(), path.Join(testLocation, "test", "config.yaml"))
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "test-registry", cfg.ID)
	assert.True(t, cfg.Concurrent)
	assert.Equal(t, 64, cfg.InitialCapacity)
	assert.True(t, cfg.Metrics)
	assert.Equal(t, shared.DefaultMaxMessageSize, cfg.MaxMessageSize)
	assert.Equal(t, shared.DefaultConcurrency, cfg.Concurrency)

	_, err = NewConfigFromURL(context.Background(), path.Join(testLocation, "test", "absent.yaml"))
	assert.NotNil(t, err)
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		config      *Config
		hasError    bool
	}{
		{
			description: "defaults applied",
			config:      &Config{},
		},
		{
			description: "stream without URL",
			config:      &Config{Stream: &tconfig.Stream{}},
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		err := testCase.config.Validate()
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.NotEmpty(t, testCase.config.ID, testCase.description)
		assert.Equal(t, shared.DefaultCapacity, testCase.config.InitialCapacity, testCase.description)
	}
}
