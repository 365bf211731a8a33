package refindex

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// ErrPoisoned is the panic value raised by every operation on an Index after a
// previous operation panicked while holding the lock. The tables may be torn
// at that point and there is no way to repair them.
var ErrPoisoned = errors.New("refindex: index poisoned by a panic while locked")

// Option configures an Index.
type Option func(ix *Index) *Index

// WithLogger sets the logger used for debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(ix *Index) *Index {
		ix.logger = logger
		return ix
	}
}

// Index records, for every import binding observed in the program, where the
// bound symbol came from and who else imported it. All three tables are
// guarded by a single mutex and are updated together.
type Index struct {
	logger zerolog.Logger

	mu       sync.Mutex
	poisoned bool

	// forward maps importing module -> alias -> origin.
	forward map[string]map[string]QualifiedName
	// reverse maps origin module -> base name -> (importing module, alias).
	reverse map[string]map[string]QualifiedNameSet
	// renames maps (importing module, alias) -> original name, only for
	// bindings where the two differ.
	renames map[QualifiedName]string
}

// New constructs an empty Index.
func New(options ...Option) *Index {
	ix := &Index{
		logger:  zerolog.Nop(),
		forward: make(map[string]map[string]QualifiedName),
		reverse: make(map[string]map[string]QualifiedNameSet),
		renames: make(map[QualifiedName]string),
	}
	for _, opt := range options {
		ix = opt(ix)
	}
	return ix
}

// Record adds the binding of originalName (defined in originModule) to alias
// in importingModule. A prior binding of the same alias in importingModule is
// overwritten.
func (ix *Index) Record(originModule, importingModule, originalName, alias string) {
	origin := QualifiedName{Module: originModule, Name: originalName}
	binding := QualifiedName{Module: importingModule, Name: alias}
	base, _ := splitBase(originalName)

	ix.locked(func() {
		ix.forwardEntries(importingModule)[alias] = origin
		ix.reverseBucket(originModule, base).Add(binding)
		if alias != originalName {
			ix.renames[binding] = originalName
		}
	})

	ix.logger.Debug().
		Str("origin", origin.String()).
		Str("binding", binding.String()).
		Msg("recorded import reference")
}

// LookupForward returns the origin of alias in importingModule, or an empty
// set if the alias was never recorded.
func (ix *Index) LookupForward(importingModule, alias string) QualifiedNameSet {
	result := make(QualifiedNameSet, 1)
	ix.locked(func() {
		if origin, ok := ix.forward[importingModule][alias]; ok {
			result.Add(origin)
		}
	})
	return result
}

// LookupReverse returns every (module, name) location through which name,
// as defined in originModule, can be reached. Lookup is keyed by the first
// component of name; the remaining components are reattached to each alias
// found, so "pkg.sub.attr" resolves through an alias "p" of "pkg" as
// "p.sub.attr".
func (ix *Index) LookupReverse(originModule, name string) QualifiedNameSet {
	base, rest := splitBase(name)
	result := make(QualifiedNameSet)
	ix.locked(func() {
		for binding := range ix.reverse[originModule][base] {
			result.Add(QualifiedName{
				Module: binding.Module,
				Name:   joinName(binding.Name, rest),
			})
		}
	})
	return result
}

// ResolveOriginalName returns the name alias was renamed from in
// importingModule. If no rename was recorded the alias is its own original
// name.
func (ix *Index) ResolveOriginalName(importingModule, alias string) string {
	original := alias
	ix.locked(func() {
		if name, ok := ix.renames[QualifiedName{Module: importingModule, Name: alias}]; ok {
			original = name
		}
	})
	return original
}

// locked runs fn while holding the lock. If fn does not return normally the
// index is marked poisoned before the lock is released.
func (ix *Index) locked(fn func()) {
	ix.mu.Lock()
	if ix.poisoned {
		ix.mu.Unlock()
		panic(ErrPoisoned)
	}
	completed := false
	defer func() {
		if !completed {
			ix.poisoned = true
		}
		ix.mu.Unlock()
	}()
	fn()
	completed = true
}

// forwardEntries returns the alias table for importingModule, creating it if
// needed. Must be called with the lock held.
func (ix *Index) forwardEntries(importingModule string) map[string]QualifiedName {
	entries, ok := ix.forward[importingModule]
	if !ok {
		entries = make(map[string]QualifiedName)
		ix.forward[importingModule] = entries
	}
	return entries
}

// reverseBucket returns the binding set for (originModule, base), creating
// intermediate containers if needed. Must be called with the lock held.
func (ix *Index) reverseBucket(originModule, base string) QualifiedNameSet {
	buckets, ok := ix.reverse[originModule]
	if !ok {
		buckets = make(map[string]QualifiedNameSet)
		ix.reverse[originModule] = buckets
	}
	bucket, ok := buckets[base]
	if !ok {
		bucket = make(QualifiedNameSet)
		buckets[base] = bucket
	}
	return bucket
}
