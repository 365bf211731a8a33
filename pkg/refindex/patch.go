package refindex

import "strings"

// Lookup is the query side of an Index.
type Lookup interface {
	LookupForward(importingModule, alias string) QualifiedNameSet
	LookupReverse(originModule, name string) QualifiedNameSet
}

// PatchTargets returns every location a patch of name in module must be
// applied to. The given location is always a target. A dotted name refers to
// a nested attribute and is patched only there; otherwise the forward and
// reverse references of the name are added.
func PatchTargets(lookup Lookup, module, name string) QualifiedNameSet {
	targets := NewQualifiedNameSet(QualifiedName{Module: module, Name: name})
	if strings.Contains(name, ".") {
		return targets
	}
	return targets.
		Union(lookup.LookupForward(module, name)).
		Union(lookup.LookupReverse(module, name))
}
