package refindex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stackb/aliasrefs/pkg/refindex"
)

func TestPatchTargets(t *testing.T) {
	for name, tc := range map[string]struct {
		records []record
		module  string
		name    string
		want    []string
	}{
		"degenerate": {
			want: []string{"."},
		},
		"seed only": {
			module: "pkg",
			name:   "thing",
			want:   []string{"pkg.thing"},
		},
		"reverse references": {
			records: []record{
				{"pkg", "modA", "thing", "thing"},
				{"pkg", "modB", "thing", "t"},
			},
			module: "pkg",
			name:   "thing",
			want:   []string{"modA.thing", "modB.t", "pkg.thing"},
		},
		"forward reference": {
			records: []record{
				{"pkg", "modA", "thing", "t"},
			},
			module: "modA",
			name:   "t",
			want:   []string{"modA.t", "pkg.thing"},
		},
		"dotted name patched once": {
			records: []record{
				{"pkg", "modA", "thing", "thing"},
			},
			module: "pkg",
			name:   "thing.method",
			want:   []string{"pkg.thing.method"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			ix := newIndex(t, tc.records...)
			got := refindex.PatchTargets(ix, tc.module, tc.name).Strings()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
