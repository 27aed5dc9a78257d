// Package config holds the estimator and crawl settings shared by the
// CLI and the server.
package config

import (
	"errors"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the report package.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatNDJSON   = "ndjson"
)

// Config is the complete runtime configuration.
type Config struct {
	// Damping is the probability of following a link rather than teleporting.
	Damping float64 `yaml:"damping"`

	// Samples is the walk length of the sampling estimator.
	Samples int `yaml:"samples"`

	// MaxSamples bounds Samples for requests served over HTTP.
	MaxSamples int `yaml:"max_samples"`

	// Seed seeds the sampling estimator. Zero picks a time-based seed.
	Seed uint64 `yaml:"seed"`

	// Reference also runs the gonum estimator.
	Reference bool `yaml:"reference"`

	Format string `yaml:"format"`

	// Concurrency bounds in-flight requests when crawling seed URLs.
	Concurrency int `yaml:"concurrency"`

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `yaml:"timeout"`

	// MaxBodySize caps each fetched document and each API request body,
	// in bytes.
	MaxBodySize int64 `yaml:"max_body_size"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Damping:     0.85,
		Samples:     10000,
		MaxSamples:  1000000,
		Format:      FormatText,
		Concurrency: 10,
		Timeout:     15 * time.Second,
		MaxBodySize: 5 * 1024 * 1024,
	}
}

// Validate checks every field and joins all violations.
func (c Config) Validate() error {
	var errs []error
	if math.IsNaN(c.Damping) || c.Damping < 0 || c.Damping > 1 {
		errs = append(errs, ErrInvalidDamping)
	}
	if c.Samples < 1 {
		errs = append(errs, ErrInvalidSamples)
	}
	switch c.Format {
	case FormatText, FormatMarkdown, FormatNDJSON:
	default:
		errs = append(errs, ErrInvalidFormat)
	}
	if c.MaxSamples < 1 {
		errs = append(errs, ErrInvalidSamples)
	}
	if c.Concurrency < 1 {
		errs = append(errs, ErrInvalidConcurrency)
	}
	if c.Timeout <= 0 {
		errs = append(errs, ErrInvalidTimeout)
	}
	if c.MaxBodySize < 1 {
		errs = append(errs, ErrInvalidMaxBodySize)
	}
	return errors.Join(errs...)
}

// ValidateRequest is Validate plus the limits applied to parameters
// taken from untrusted callers: damping must be strictly below 1 and
// Samples may not exceed MaxSamples.
func (c Config) ValidateRequest() error {
	errs := []error{c.Validate()}
	if c.Damping >= 1 {
		errs = append(errs, ErrNoTeleport)
	}
	if c.Samples > c.MaxSamples {
		errs = append(errs, ErrTooManySamples)
	}
	return errors.Join(errs...)
}

// Load reads a YAML file on top of Default. Fields absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ErrConfigNotFound
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
