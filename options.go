package polyline

import "log/slog"

// Option is a layer configuration option.
type Option interface {
	apply(*layerOptions)
}

type layerOptions struct {
	logger *slog.Logger
}

func newDefaultLayerOptions() layerOptions {
	return layerOptions{
		logger: newNopLogger(),
	}
}

// WithLogger option configures the layer to log flushes to l.
//
// The nil value disables logging, which is also the default.
func WithLogger(l *slog.Logger) Option {
	return funcOption(func(opts *layerOptions) {
		if l == nil {
			opts.logger = newNopLogger()
			return
		}
		opts.logger = l
	})
}

type funcOption func(*layerOptions)

func (o funcOption) apply(opts *layerOptions) {
	o(opts)
}
