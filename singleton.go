package registry

import "sync"

var (
	defaultMux     sync.Mutex
	defaultService *Service
)

// Default returns the process-wide registry, creating it on first use with
// the default config. Prefer creating a Service explicitly at startup and
// passing it around; Default exists for code that needs a documented
// process-wide lifetime.
func Default() *Service {
	defaultMux.Lock()
	defer defaultMux.Unlock()
	if defaultService == nil {
		srv, err := New(nil)
		if err != nil {
			// the default config validates clean; a failure here is a bug
			panic(err)
		}
		defaultService = srv
	}
	return defaultService
}

// Shutdown tears the process-wide registry down once, at process exit. A
// later Default call creates a fresh registry.
func Shutdown() error {
	defaultMux.Lock()
	defer defaultMux.Unlock()
	if defaultService == nil {
		return nil
	}
	err := defaultService.Close()
	defaultService = nil
	return err
}
