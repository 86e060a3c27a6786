package fadeline

import "log/slog"

// Option configures a Demo.
type Option func(*Demo)

// WithLogger sets the logging sink. Nil keeps the platform default.
func WithLogger(l *slog.Logger) Option {
	return func(d *Demo) {
		if l != nil {
			d.log = l
		}
	}
}

// WithStrictShaders makes Init fail on any shader compile or link error
// instead of logging it and carrying on with the broken program.
func WithStrictShaders(strict bool) Option {
	return func(d *Demo) { d.strict = strict }
}

// WithAnimationStep overrides how far the line advances per frame.
func WithAnimationStep(step float64) Option {
	return func(d *Demo) { d.anim = NewAnimation(step) }
}
