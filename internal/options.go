package internal

import "go.uber.org/zap"

type options struct {
	logger           *zap.Logger
	strictCocircular bool
	indexedNeighbors bool
}

type Option func(*options)

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// Log engine progress to the given logger. Nil restores the no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = zap.NewNop()
		}
		o.logger = logger
	}
}

// Abort with ErrNumericalInstability whenever an inserted point lies exactly on
// a live triangle's circumcircle, instead of leaving that triangle in place.
func WithStrictCocircular(strict bool) Option {
	return func(o *options) {
		o.strictCocircular = strict
	}
}

// Discover neighbors through an edge-keyed map rather than the pairwise scan.
// The result is the same either way.
func WithIndexedNeighbors(indexed bool) Option {
	return func(o *options) {
		o.indexedNeighbors = indexed
	}
}
