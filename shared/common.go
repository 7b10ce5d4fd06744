package shared

import (
	"fmt"
	"io"
)

const (
	//DefaultCapacity is the initial entry map capacity
	DefaultCapacity = 128
	//DefaultMaxMessageSize is the journal message buffer size
	DefaultMaxMessageSize = 2048
	//DefaultConcurrency is the journal message pool concurrency
	DefaultConcurrency = 2
)

// CloseWithErrorHandling closes the closer and handles the error
func CloseWithErrorHandling(c io.Closer, err *error) {
	if c == nil {
		return
	}

	if cerr := c.Close(); cerr != nil {
		if err != nil && *err != nil {
			*err = fmt.Errorf("%w; close error: %v", *err, cerr)
		} else {
			*err = cerr
		}
	}
}
