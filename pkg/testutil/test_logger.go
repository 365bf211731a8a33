package testutil

import (
	"testing"

	"github.com/rs/zerolog"
)

// NewTestLogger creates a debug-level logger that writes to the provided
// testing.T, so log lines show up next to the test that produced them.
func NewTestLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}
