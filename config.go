// SPDX-License-Identifier: MIT
package flattree

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for building & mutating a [Tree].
	Config struct {
		// Logger for [Tree] messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool

		// Orphans selects how records naming a missing parent are handled during construction.
		Orphans OrphanPolicy
	}

	// OrphanPolicy defines the handling of records whose parent identifier resolves to nothing.
	OrphanPolicy int

	// Option defines the [Config] functional option type.
	Option func(*Config)
)

// Orphan handling policies.
const (
	// RejectOrphans fails construction with ErrOrphanNode.
	RejectOrphans OrphanPolicy = iota
	// PromoteOrphans places the record in the root list.
	PromoteOrphans
)

var defLogger logrus.FieldLogger = logrus.New()

// SetLogger configures the logrus.FieldLogger used by [DefConfig].
func SetLogger(l logrus.FieldLogger) { defLogger = l }

// DefConfig obtains the package's [Tree] default options.
func DefConfig() *Config {
	return &Config{
		Logger:  defLogger,
		Debug:   false,
		Orphans: RejectOrphans,
	}
}

// WithConfig replaces the [Config] wholesale.
//
// A nil Logger falls back to the package logger.
func WithConfig(cfg *Config) Option {
	return func(c *Config) {
		if cfg == nil {
			return
		}

		*c = *cfg
		if c.Logger == nil {
			c.Logger = defLogger
		}
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithOrphanPolicy configures the orphan handling policy.
func WithOrphanPolicy(policy OrphanPolicy) Option { return func(c *Config) { c.Orphans = policy } }

func newConfig(options ...Option) (cfg *Config) {
	cfg = DefConfig()
	for _, opt := range options {
		opt(cfg)
	}

	return
}

// String implements fmt.Stringer.
func (p OrphanPolicy) String() string {
	switch p {
	case RejectOrphans:
		return "reject"
	case PromoteOrphans:
		return "promote"
	default:
		return fmt.Sprintf("OrphanPolicy(%d)", int(p))
	}
}
