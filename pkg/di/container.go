// Package di wires the shared memoization components together: one service,
// one key serializer, one configuration, handed out as singletons.
package di

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-memo/memo"
)

// Container provides dependency injection for shared memoization. It holds
// singleton instances of the service and key serializer and offers factory
// helpers for memoizing functions against them.
type Container struct {
	service    memo.Service
	serializer memo.KeySerializer
	config     memo.ServiceConfig
	logger     *zap.Logger
}

// Option customizes a Container during construction.
type Option func(*Container)

// WithLogger attaches a logger; construction details are logged at debug
// level. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewContainer creates a DI container with the provided service
// configuration. The configuration is validated before anything is built.
func NewContainer(config memo.ServiceConfig, opts ...Option) (*Container, error) {
	c := &Container{
		config: config,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	service, err := memo.NewService(config)
	if err != nil {
		return nil, err
	}

	c.service = service
	c.serializer = memo.NewDefaultKeySerializer()

	c.logger.Debug("memo container initialized",
		zap.Int("capacity", config.Capacity),
		zap.Int("num_shards", config.NumShards),
		zap.Duration("ttl", config.TTL),
	)

	return c, nil
}

// NewContainerWithDefaults creates a container using the default service
// configuration.
func NewContainerWithDefaults(opts ...Option) (*Container, error) {
	return NewContainer(memo.DefaultServiceConfig(), opts...)
}

// Service returns the singleton shared service instance.
func (c *Container) Service() memo.Service {
	return c.service
}

// KeySerializer returns the singleton key serializer instance.
func (c *Container) KeySerializer() memo.KeySerializer {
	return c.serializer
}

// Config returns a copy of the service configuration used by this
// container.
func (c *Container) Config() memo.ServiceConfig {
	return c.config
}

// NewSharedFunc memoizes fn against the container's service under scope.
// Since Go methods cannot have type parameters, this is provided as a
// package-level function.
func NewSharedFunc[K comparable, V any](container *Container, scope string, fn memo.Func[K, V]) (*memo.SharedFunc[K, V], error) {
	return memo.NewSharedFunc(scope, fn, container.service, container.serializer)
}
