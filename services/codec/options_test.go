package codec

import (
	"testing"

	"github.com/bsv-blockchain/txwire/settings"
	"github.com/stretchr/testify/assert"
)

func TestNewOptionsFromSettings(t *testing.T) {
	tSettings := settings.NewSettings()
	tSettings.Codec.MaxScriptSize = 10_000
	tSettings.Codec.MaxInputCount = 500
	tSettings.Codec.BatchConcurrency = 3
	tSettings.Codec.AllowTrailingBytes = false
	tSettings.Codec.MetricsEnabled = false

	assert.Equal(t, &Options{
		maxScriptSize:      10_000,
		maxInputCount:      500,
		batchConcurrency:   3,
		allowTrailingBytes: false,
		metricsEnabled:     false,
	}, NewOptionsFromSettings(tSettings))
}

func TestProcessOptions(t *testing.T) {
	base := settings.NewSettings()
	base.Codec = settings.CodecSettings{
		BatchConcurrency:   8,
		AllowTrailingBytes: true,
		MetricsEnabled:     true,
	}

	tests := []struct {
		name     string
		opts     []Option
		expected Options
	}{
		{
			name: "No options",
			opts: []Option{},
			expected: Options{
				batchConcurrency:   8,
				allowTrailingBytes: true,
				metricsEnabled:     true,
			},
		},
		{
			name: "Limits",
			opts: []Option{
				WithMaxScriptSize(520),
				WithMaxInputCount(100),
			},
			expected: Options{
				maxScriptSize:      520,
				maxInputCount:      100,
				batchConcurrency:   8,
				allowTrailingBytes: true,
				metricsEnabled:     true,
			},
		},
		{
			name: "Last option wins",
			opts: []Option{
				WithBatchConcurrency(2),
				WithAllowTrailingBytes(false),
				WithMetrics(false),
				WithBatchConcurrency(4),
			},
			expected: Options{
				batchConcurrency:   4,
				allowTrailingBytes: false,
				metricsEnabled:     false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, &tt.expected, ProcessOptions(base, tt.opts...))
		})
	}
}
