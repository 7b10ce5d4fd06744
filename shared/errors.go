package shared

import "sync"

// Errors accumulates teardown errors across entries.
type Errors struct {
	Errors []error
	mux    sync.Mutex
}

func (e *Errors) Add(err error) {
	if err == nil {
		return
	}
	e.mux.Lock()
	defer e.mux.Unlock()
	e.Errors = append(e.Errors, err)
}

func (e *Errors) First() error {
	e.mux.Lock()
	defer e.mux.Unlock()
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors[0]
}

func (e *Errors) Len() int {
	e.mux.Lock()
	defer e.mux.Unlock()
	return len(e.Errors)
}
