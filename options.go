package autoinject

import "log/slog"

type Option func(*injectorConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *injectorConfig) {
		cfg.logger = logger
	}
}

func WithLookupObserver(hook LookupHook) Option {
	return func(cfg *injectorConfig) {
		cfg.onLookup = append(cfg.onLookup, hook)
	}
}

func WithRegisterObserver(hook RegisterHook) Option {
	return func(cfg *injectorConfig) {
		cfg.onRegister = append(cfg.onRegister, hook)
	}
}
