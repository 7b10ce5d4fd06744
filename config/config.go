package config

import (
	"context"
	"io/ioutil"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/registry/shared"
	tconfig "github.com/viant/tapper/config"
	"gopkg.in/yaml.v3"
)

// Config configures a registry service.
type Config struct {
	//ID identifies the registry instance in journal events
	ID string
	//Concurrent switches the entry store to the concurrent map and guards
	//mutation and lazy construction with a reader/writer lock
	Concurrent bool
	//InitialCapacity sizes the entry store
	InitialCapacity int
	//Metrics enables resolve/teardown operation counters
	Metrics bool
	//Stream, when set, receives one journal record per lifecycle event
	Stream         *tconfig.Stream
	MaxMessageSize int
	Concurrency    int
}

// Validate applies defaults and checks the journal stream.
func (c *Config) Validate() error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = shared.DefaultCapacity
	}
	if c.MaxMessageSize < shared.DefaultMaxMessageSize {
		c.MaxMessageSize = shared.DefaultMaxMessageSize
	}
	if c.Concurrency <= 0 {
		c.Concurrency = shared.DefaultConcurrency
	}
	if c.Stream != nil && c.Stream.URL == "" {
		return errors.Errorf("Stream URL was empty")
	}
	return nil
}

// New creates a default config.
func New() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// NewConfigFromURL creates a config from URL
func NewConfigFromURL(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	reader, err := fs.OpenURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get config: %v", URL)
	}
	defer reader.Close()
	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config: %v", URL)
	}
	cfg := &Config{}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config: %v", URL)
	}
	return cfg, cfg.Validate()
}
