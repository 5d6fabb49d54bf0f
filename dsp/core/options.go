package core

// ProcessorConfig is the render configuration of a node graph. A
// node.Context carries one; RenderBlock renders BlockSize samples and the
// signal generators derive their phase steps from SampleRate.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption adjusts a render configuration.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig renders 1024-sample blocks at 48 kHz.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		BlockSize:  1024,
	}
}

// WithSampleRate sets the rate, in Hz, that time-based sources render at.
// Non-positive values keep the default.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets how many samples one render pass produces.
// Non-positive values keep the default.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions builds a render configuration from the defaults.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
