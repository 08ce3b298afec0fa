package codec

import (
	"github.com/bsv-blockchain/txwire/settings"
)

// Options is the decode policy applied on top of the wire format. Zero limits mean unlimited.
type Options struct {
	maxScriptSize      int
	maxInputCount      int
	batchConcurrency   int
	allowTrailingBytes bool
	metricsEnabled     bool
}

// Option is a function that sets some option on the Options struct
type Option func(*Options)

// NewOptionsFromSettings returns the options configured in tSettings.
func NewOptionsFromSettings(tSettings *settings.Settings) *Options {
	return &Options{
		maxScriptSize:      tSettings.Codec.MaxScriptSize,
		maxInputCount:      tSettings.Codec.MaxInputCount,
		batchConcurrency:   tSettings.Codec.BatchConcurrency,
		allowTrailingBytes: tSettings.Codec.AllowTrailingBytes,
		metricsEnabled:     tSettings.Codec.MetricsEnabled,
	}
}

func ProcessOptions(tSettings *settings.Settings, opts ...Option) *Options {
	options := NewOptionsFromSettings(tSettings)
	for _, o := range opts {
		o(options)
	}

	return options
}

// WithMaxScriptSize rejects transactions carrying a script_sig longer than size bytes.
func WithMaxScriptSize(size int) Option {
	return func(o *Options) {
		o.maxScriptSize = size
	}
}

// WithMaxInputCount rejects transactions with more than count inputs.
func WithMaxInputCount(count int) Option {
	return func(o *Options) {
		o.maxInputCount = count
	}
}

// WithAllowTrailingBytes controls whether Decode accepts a buffer that continues past the transaction.
func WithAllowTrailingBytes(allow bool) Option {
	return func(o *Options) {
		o.allowTrailingBytes = allow
	}
}

func WithBatchConcurrency(concurrency int) Option {
	return func(o *Options) {
		o.batchConcurrency = concurrency
	}
}

func WithMetrics(enabled bool) Option {
	return func(o *Options) {
		o.metricsEnabled = enabled
	}
}
