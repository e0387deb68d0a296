package codec

import "github.com/go-scale/scale/internal/options"

// DefaultMaxZeroSizedItems bounds the element count accepted for a sequence
// whose element type decodes in zero bytes (e.g. sequence<()>). Without a
// cap, a single compact length prefix could otherwise claim an
// arbitrarily large count the wire bytes can never disprove.
const DefaultMaxZeroSizedItems = 1 << 20

// Config controls optional Decoder behavior. The zero value matches SCALE's
// permissive default: non-minimal compact integers are accepted and trailing
// bytes after a top-level decode are tolerated.
type Config struct {
	strictMinimalCompact bool
	maxZeroSizedItems    int
	fullConsumption      bool
}

// NewConfig builds a Config from the given options, applying defaults first.
func NewConfig(opts ...options.Option[*Config]) *Config {
	cfg := &Config{
		maxZeroSizedItems: DefaultMaxZeroSizedItems,
	}

	// Config options never fail to apply; NoError guarantees Apply can't
	// return an error here.
	_ = options.Apply(cfg, opts...)

	return cfg
}

// StrictMinimalCompact reports whether the decoder rejects non-minimal
// compact integer encodings.
func (c *Config) StrictMinimalCompact() bool {
	return c.strictMinimalCompact
}

// MaxZeroSizedItems returns the cap on declared element counts for
// zero-sized-element sequences.
func (c *Config) MaxZeroSizedItems() int {
	return c.maxZeroSizedItems
}

// FullConsumption reports whether the top-level scale.Unmarshal must fail
// with errs.ErrExtraData when bytes remain after its value has been decoded.
// Decoder's own methods do not consult it.
func (c *Config) FullConsumption() bool {
	return c.fullConsumption
}

// WithStrictMinimalCompact rejects compact integers that aren't encoded in
// their smallest valid mode.
func WithStrictMinimalCompact() options.Option[*Config] {
	return options.NoError(func(c *Config) {
		c.strictMinimalCompact = true
	})
}

// WithMaxZeroSizedItems overrides DefaultMaxZeroSizedItems with n.
func WithMaxZeroSizedItems(n int) options.Option[*Config] {
	return options.NoError(func(c *Config) {
		c.maxZeroSizedItems = n
	})
}

// WithFullConsumption requires the entire input to be consumed by a
// top-level scale.Unmarshal.
func WithFullConsumption() options.Option[*Config] {
	return options.NoError(func(c *Config) {
		c.fullConsumption = true
	})
}
