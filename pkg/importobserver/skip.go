package importobserver

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dghubble/trie"
)

// skipMatcher decides which origin modules are not recorded. It is read-only
// after construction.
type skipMatcher struct {
	prefixes *trie.PathTrie
	patterns []string
	private  bool
}

func newSkipMatcher(config Config) (*skipMatcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	m := &skipMatcher{
		prefixes: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: moduleSegmenter,
		}),
		private: config.SkipPrivate,
	}
	for _, module := range config.SkipModules {
		// an empty prefix would land on the root and skip everything
		if module == "" {
			continue
		}
		m.prefixes.Put(module, true)
	}
	for _, pattern := range config.SkipPatterns {
		m.patterns = append(m.patterns, modulePath(pattern))
	}
	return m, nil
}

// Match reports whether bindings from the given origin module are skipped.
func (m *skipMatcher) Match(module string) bool {
	if m.private && strings.HasPrefix(module, "_") {
		return true
	}

	found := false
	m.prefixes.WalkPath(module, func(key string, value interface{}) error {
		found = true
		return nil
	})
	if found {
		return true
	}

	if len(m.patterns) > 0 {
		path := modulePath(module)
		for _, pattern := range m.patterns {
			// patterns were validated in newSkipMatcher
			if ok, _ := doublestar.Match(pattern, path); ok {
				return true
			}
		}
	}

	return false
}

// moduleSegmenter segments dotted module paths. For example, "a.b.c" -> ("a",
// 1), (".b", 3), (".c", -1) in successive calls. It does not allocate any heap
// memory.
func moduleSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '.') // next '.' after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}

// modulePath turns a dotted module path (or pattern) into a slash-separated
// one so that glob matching treats each module component as a path segment.
func modulePath(module string) string {
	return strings.ReplaceAll(module, ".", "/")
}
