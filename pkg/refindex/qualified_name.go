package refindex

import (
	"sort"
	"strings"
)

// QualifiedName identifies a name as it is looked up in a module. The name may
// be dotted, denoting attribute access chained from a top-level import.
type QualifiedName struct {
	// Module is the fully-qualified module path.
	Module string `json:"module"`
	// Name is the (possibly dotted) name within Module.
	Name string `json:"name"`
}

// String renders the name in mock path form, "module.name".
func (q QualifiedName) String() string {
	return q.Module + "." + q.Name
}

// QualifiedNameSet is a set of QualifiedName values.
type QualifiedNameSet map[QualifiedName]struct{}

// NewQualifiedNameSet constructs a set holding the given names.
func NewQualifiedNameSet(names ...QualifiedName) QualifiedNameSet {
	s := make(QualifiedNameSet, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add puts the name in the set.
func (s QualifiedNameSet) Add(name QualifiedName) {
	s[name] = struct{}{}
}

// Has reports whether the name is in the set.
func (s QualifiedNameSet) Has(name QualifiedName) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s QualifiedNameSet) Len() int {
	return len(s)
}

// Union adds all names of other to s and returns s.
func (s QualifiedNameSet) Union(other QualifiedNameSet) QualifiedNameSet {
	for name := range other {
		s[name] = struct{}{}
	}
	return s
}

// Values returns the names sorted by module, then name.
func (s QualifiedNameSet) Values() []QualifiedName {
	vals := make([]QualifiedName, 0, len(s))
	for name := range s {
		vals = append(vals, name)
	}
	sortQualifiedNames(vals)
	return vals
}

// Strings returns the sorted names in mock path form.
func (s QualifiedNameSet) Strings() []string {
	vals := s.Values()
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = v.String()
	}
	return strs
}

func sortQualifiedNames(names []QualifiedName) {
	sort.Slice(names, func(i, j int) bool {
		a := names[i]
		b := names[j]
		if a.Module != b.Module {
			return a.Module < b.Module
		}
		return a.Name < b.Name
	})
}

// splitBase splits a dotted name at its first dot. For example, "pkg.sub.attr"
// -> ("pkg", "sub.attr") and "pkg" -> ("pkg", "").
func splitBase(name string) (base, rest string) {
	base, rest, _ = strings.Cut(name, ".")
	return
}

// joinName reattaches an unresolved suffix onto an alias.
func joinName(alias, rest string) string {
	if rest == "" {
		return alias
	}
	return alias + "." + rest
}
