package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithListen sets the server listen address.
func (b *ConfigBuilder) WithListen(addr string) *ConfigBuilder {
	b.cfg.Listen = addr
	return b
}

// WithAllowOrigins sets the CORS allowed origins.
func (b *ConfigBuilder) WithAllowOrigins(origins string) *ConfigBuilder {
	b.cfg.AllowOrigins = origins
	return b
}

// WithLogLevel sets the minimum log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithLogFormat sets the log handler format.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.LogFormat = format
	return b
}

// WithWorkers sets the batch replay worker count. Zero means one per CPU.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithDuplicateSuppression drops duplicate games from batch output.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled, exact bool) *ConfigBuilder {
	b.cfg.SuppressDuplicates = enabled
	b.cfg.ExactDuplicates = exact
	return b
}

// WithStartFEN sets the start position of new games.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithJSON enables JSON output.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.JSON = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
