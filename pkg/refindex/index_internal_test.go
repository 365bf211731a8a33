package refindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBase(t *testing.T) {
	for name, tc := range map[string]struct {
		in       string
		wantBase string
		wantRest string
	}{
		"degenerate":   {},
		"plain":        {in: "pkg", wantBase: "pkg"},
		"dotted":       {in: "pkg.sub", wantBase: "pkg", wantRest: "sub"},
		"deep":         {in: "pkg.sub.attr", wantBase: "pkg", wantRest: "sub.attr"},
		"leading dot":  {in: ".pkg", wantBase: "", wantRest: "pkg"},
		"trailing dot": {in: "pkg.", wantBase: "pkg", wantRest: ""},
	} {
		t.Run(name, func(t *testing.T) {
			base, rest := splitBase(tc.in)
			assert.Equal(t, tc.wantBase, base)
			assert.Equal(t, tc.wantRest, rest)
		})
	}
}

func TestPoisonedIndex(t *testing.T) {
	ix := New()
	ix.Record("pkg", "m", "orig", "x")

	require.PanicsWithValue(t, "torn write", func() {
		ix.locked(func() {
			panic("torn write")
		})
	})

	for name, op := range map[string]func(){
		"Record":              func() { ix.Record("pkg", "m", "y", "y") },
		"LookupForward":       func() { ix.LookupForward("m", "x") },
		"LookupReverse":       func() { ix.LookupReverse("pkg", "orig") },
		"ResolveOriginalName": func() { ix.ResolveOriginalName("m", "x") },
		"Dump":                func() { ix.Dump() },
		"Stats":               func() { ix.Stats() },
	} {
		t.Run(name, func(t *testing.T) {
			assert.PanicsWithError(t, ErrPoisoned.Error(), op)
		})
	}

	// the lock must have been released
	assert.True(t, ix.mu.TryLock())
	ix.mu.Unlock()
}
