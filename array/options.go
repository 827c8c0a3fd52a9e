package array

import (
	"linearx/log"
)

// DefaultCapacity is the backing size used when no capacity is given.
const DefaultCapacity = 1 << 3

type options struct {
	capacity    int
	hasCapacity bool
	logger      log.Logger
}

type Option func(*options)

// WithCapacity sets the initial backing capacity. A negative value makes the
// constructor fail with errs.ErrInvalidArgument.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
		o.hasCapacity = true
	}
}

// WithLogger reports capacity growth at debug level.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Nop()
	}
	return o
}
