package settings

import (
	"github.com/bsv-blockchain/txwire/errors"
)

func NewSettings() *Settings {
	return &Settings{
		ClientName: getString("clientName", "txwire"),
		LogLevel:   getString("logLevel", "INFO"),
		LoggerType: getString("logger_type", "zerolog"),
		Codec: CodecSettings{
			MaxScriptSize:      getByteSize("codec_maxScriptSize", 0), // 0 is unlimited
			MaxInputCount:      getInt("codec_maxInputCount", 0),      // 0 is unlimited
			BatchConcurrency:   getInt("codec_batchConcurrency", 8),
			AllowTrailingBytes: getBool("codec_allowTrailingBytes", true),
			MetricsEnabled:     getBool("codec_metricsEnabled", true),
		},
	}
}

// Validate checks the settings for values the codec cannot work with.
func (s *Settings) Validate() error {
	if s.Codec.MaxScriptSize < 0 {
		return errors.NewConfigurationError("codec_maxScriptSize must not be negative, got %d", s.Codec.MaxScriptSize)
	}

	if s.Codec.MaxInputCount < 0 {
		return errors.NewConfigurationError("codec_maxInputCount must not be negative, got %d", s.Codec.MaxInputCount)
	}

	if s.Codec.BatchConcurrency <= 0 {
		return errors.NewConfigurationError("codec_batchConcurrency must be positive, got %d", s.Codec.BatchConcurrency)
	}

	return nil
}
