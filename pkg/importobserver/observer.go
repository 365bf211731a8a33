package importobserver

import (
	"context"

	"github.com/rs/zerolog"
)

// Recorder receives the import bindings that pass the skip rules.
// *refindex.Index implements it.
type Recorder interface {
	Record(originModule, importingModule, originalName, alias string)
}

// Binding is a single observed import: Name, defined in module Origin, bound
// to Alias in module Importing.
type Binding struct {
	// Origin is the module the name is defined in.
	Origin string `json:"origin"`
	// Importing is the module doing the import.
	Importing string `json:"importing"`
	// Name is the (possibly dotted) name as defined in Origin.
	Name string `json:"name"`
	// Alias is the local name in Importing. Empty means the name was not
	// renamed.
	Alias string `json:"alias,omitempty"`
}

// Option configures an Observer.
type Option func(o *Observer) *Observer

// WithLogger sets the logger used for debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Observer) *Observer {
		o.logger = logger
		return o
	}
}

// Observer filters import bindings reported by an import hook and records the
// remaining ones. It is safe for concurrent use if the Recorder is.
type Observer struct {
	logger   zerolog.Logger
	recorder Recorder
	skip     *skipMatcher
}

// New constructs an Observer that records into the given recorder.
func New(recorder Recorder, config Config, options ...Option) (*Observer, error) {
	skip, err := newSkipMatcher(config)
	if err != nil {
		return nil, err
	}
	o := &Observer{
		logger:   zerolog.Nop(),
		recorder: recorder,
		skip:     skip,
	}
	for _, opt := range options {
		o = opt(o)
	}
	return o, nil
}

// Observe records the binding unless a skip rule applies, and reports whether
// it was recorded.
func (o *Observer) Observe(b Binding) bool {
	if b.Importing == "" {
		o.logger.Debug().Str("origin", b.Origin).Str("name", b.Name).Msg("skipping binding: no importing module")
		return false
	}
	if b.Name == "" {
		o.logger.Debug().Str("origin", b.Origin).Str("importing", b.Importing).Msg("skipping binding: no name")
		return false
	}
	if o.skip.Match(b.Origin) {
		o.logger.Debug().Str("origin", b.Origin).Str("importing", b.Importing).Msg("skipping binding: origin module skipped")
		return false
	}

	alias := b.Alias
	if alias == "" {
		alias = b.Name
	}
	o.recorder.Record(b.Origin, b.Importing, b.Name, alias)
	return true
}

// ObserveAll observes the bindings in order and returns the number recorded.
// It stops early if ctx is done.
func (o *Observer) ObserveAll(ctx context.Context, bindings []Binding) (int, error) {
	recorded := 0
	for _, b := range bindings {
		if err := ctx.Err(); err != nil {
			return recorded, err
		}
		if o.Observe(b) {
			recorded++
		}
	}
	return recorded, nil
}
