package diff

import "go.uber.org/zap"

// DefaultPrecision is the relative tolerance used when none is configured.
const DefaultPrecision = 1e-6

// Config controls what the diff compares and how numeric payloads are judged.
type Config struct {
	// Precision is the maximum relative difference between binary values that
	// still compares equal.
	Precision float64 `mapstructure:"precision" default:"1e-6"`

	// IgnoreMetadata restricts the comparison to identity, precursor and binary data.
	IgnoreMetadata bool `mapstructure:"ignore_metadata" default:"false"`

	// IgnoreChromatograms skips the chromatogram list.
	IgnoreChromatograms bool `mapstructure:"ignore_chromatograms" default:"false"`

	// IgnoreSpectra skips the spectrum list.
	IgnoreSpectra bool `mapstructure:"ignore_spectra" default:"false"`

	// IgnoreIdentity suppresses id and index differences of list elements.
	IgnoreIdentity bool `mapstructure:"ignore_identity" default:"false"`

	// IgnoreVersions suppresses document and software version differences.
	IgnoreVersions bool `mapstructure:"ignore_versions" default:"false"`

	// IgnoreDataProcessing skips list level processing records.
	IgnoreDataProcessing bool `mapstructure:"ignore_data_processing" default:"false"`

	// IgnoreExtraBinaryDataArrays compares only the first two binary arrays.
	IgnoreExtraBinaryDataArrays bool `mapstructure:"ignore_extra_binary_data_arrays" default:"false"`

	logger *zap.Logger
}

// Option adjusts a Config.
type Option func(cfg *Config)

// NewConfig returns the default configuration with opts applied.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{Precision: DefaultPrecision}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Options converts the configuration back into options, so a Config loaded
// from file can serve as the base for per-call overrides.
func (c Config) Options() []Option {
	return []Option{func(cfg *Config) {
		l := cfg.logger
		*cfg = c
		if cfg.logger == nil {
			cfg.logger = l
		}
		if cfg.Precision <= 0 {
			cfg.Precision = DefaultPrecision
		}
	}}
}

// Logger returns the configured logger, never nil.
func (c *Config) Logger() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}

// WithPrecision sets the relative tolerance for binary data.
func WithPrecision(p float64) Option {
	return func(cfg *Config) {
		cfg.Precision = p
	}
}

// IgnoreMetadata compares only identity, precursor and binary data.
func IgnoreMetadata() Option {
	return func(cfg *Config) { cfg.IgnoreMetadata = true }
}

// IgnoreChromatograms skips the chromatogram list.
func IgnoreChromatograms() Option {
	return func(cfg *Config) { cfg.IgnoreChromatograms = true }
}

// IgnoreSpectra skips the spectrum list.
func IgnoreSpectra() Option {
	return func(cfg *Config) { cfg.IgnoreSpectra = true }
}

// IgnoreIdentity suppresses id and index differences.
func IgnoreIdentity() Option {
	return func(cfg *Config) { cfg.IgnoreIdentity = true }
}

// IgnoreVersions suppresses version differences.
func IgnoreVersions() Option {
	return func(cfg *Config) { cfg.IgnoreVersions = true }
}

// IgnoreDataProcessing skips list level processing records.
func IgnoreDataProcessing() Option {
	return func(cfg *Config) { cfg.IgnoreDataProcessing = true }
}

// IgnoreExtraBinaryDataArrays compares only the first two binary arrays.
func IgnoreExtraBinaryDataArrays() Option {
	return func(cfg *Config) { cfg.IgnoreExtraBinaryDataArrays = true }
}

// WithLogger sets the logger used for progress output.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) { cfg.logger = l }
}
