package settings

// CodecSettings holds the caller-side policy applied on top of the wire decoder.
// A zero limit means unlimited: the decoder itself only bounds fields by the buffer length.
type CodecSettings struct {
	MaxScriptSize      int
	MaxInputCount      int
	BatchConcurrency   int
	AllowTrailingBytes bool
	MetricsEnabled     bool
}

type Settings struct {
	ClientName string
	LogLevel   string
	LoggerType string
	Codec      CodecSettings
}
