package refindex

import "sync"

var defaultIndex = sync.OnceValue(func() *Index {
	return New()
})

// Default returns the process-wide index, constructing it on first use. It is
// never torn down. Code that needs isolation (tests, in particular) should
// construct its own Index with New.
func Default() *Index {
	return defaultIndex()
}
