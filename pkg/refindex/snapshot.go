package refindex

import (
	"encoding/json"
	"fmt"
	"io"
)

// Snapshot is a deep copy of the index tables, for diagnostics only.
type Snapshot struct {
	// Forward is importing module -> alias -> origin.
	Forward map[string]map[string]QualifiedName `json:"forward"`
	// Reverse is origin module -> base name -> sorted (importing module, alias)
	// pairs.
	Reverse map[string]map[string][]QualifiedName `json:"reverse"`
	// Renames is importing module -> alias -> original name.
	Renames map[string]map[string]string `json:"renames"`
}

// Stats summarizes the size of the index tables.
type Stats struct {
	ImportingModules int
	ForwardEntries   int
	OriginModules    int
	ReverseBuckets   int
	ReverseEntries   int
	Renames          int
}

// Dump returns a copy of the current tables.
func (ix *Index) Dump() *Snapshot {
	snap := &Snapshot{
		Forward: make(map[string]map[string]QualifiedName),
		Reverse: make(map[string]map[string][]QualifiedName),
		Renames: make(map[string]map[string]string),
	}

	ix.locked(func() {
		for module, entries := range ix.forward {
			aliases := make(map[string]QualifiedName, len(entries))
			for alias, origin := range entries {
				aliases[alias] = origin
			}
			snap.Forward[module] = aliases
		}
		for module, buckets := range ix.reverse {
			bases := make(map[string][]QualifiedName, len(buckets))
			for base, bucket := range buckets {
				bases[base] = bucket.Values()
			}
			snap.Reverse[module] = bases
		}
		for binding, original := range ix.renames {
			aliases, ok := snap.Renames[binding.Module]
			if !ok {
				aliases = make(map[string]string)
				snap.Renames[binding.Module] = aliases
			}
			aliases[binding.Name] = original
		}
	})

	return snap
}

// Stats counts the entries in each table.
func (ix *Index) Stats() Stats {
	var stats Stats
	ix.locked(func() {
		stats.ImportingModules = len(ix.forward)
		for _, entries := range ix.forward {
			stats.ForwardEntries += len(entries)
		}
		stats.OriginModules = len(ix.reverse)
		for _, buckets := range ix.reverse {
			stats.ReverseBuckets += len(buckets)
			for _, bucket := range buckets {
				stats.ReverseEntries += bucket.Len()
			}
		}
		stats.Renames = len(ix.renames)
	})
	return stats
}

// WriteJSON writes the snapshot as indented JSON.
func (s *Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
