package ui

import "log/slog"

// Option configures an Instance.
type Option func(*options)

type options struct {
	text         TextMeasurer
	images       ImageSizer
	logger       *slog.Logger
	scratchCap   int
	commandCap   int
	stateEntries int
}

func defaultOptions() options {
	return options{
		scratchCap:   4 * 1024,
		commandCap:   1024,
		stateEntries: 256,
	}
}

// WithTextMeasurer sets the measurer used by Text and Button.
func WithTextMeasurer(m TextMeasurer) Option {
	return func(o *options) { o.text = m }
}

// WithImages sets the registry used to size Image elements.
func WithImages(s ImageSizer) Option {
	return func(o *options) { o.images = s }
}

// WithLogger overrides the package logger for this instance.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithScratchCapacity sets the initial size in bytes of the per-frame
// formatting arena used by Sprintf.
func WithScratchCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.scratchCap = n
		}
	}
}

// WithCommandCapacity preallocates room for n draw commands.
func WithCommandCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.commandCap = n
		}
	}
}
