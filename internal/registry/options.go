package registry

import (
	"io"

	"eventrental/internal/notifications"
	"eventrental/pkg/logger"
)

type Option func(*Registry)

// WithOutput sets the operator output stream that receives load errors.
func WithOutput(w io.Writer) Option {
	return func(r *Registry) {
		r.out = w
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(r *Registry) {
		r.log = l
	}
}

func WithNotifier(n notifications.Notifier) Option {
	return func(r *Registry) {
		r.notifier = n
	}
}
