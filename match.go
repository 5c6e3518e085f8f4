package easyid3

import "path"

// match resolves a lowercased key against the table. An exact literal
// match always wins; otherwise patterns are tried as globs in
// registration order and the first match is returned. Patterns that are
// not valid globs never match.
func (t *table[F]) match(key string) (F, bool) {
	if fn, ok := t.funcs[key]; ok {
		return fn, true
	}
	for _, pattern := range t.order {
		if ok, err := path.Match(pattern, key); err == nil && ok {
			return t.funcs[pattern], true
		}
	}
	var zero F
	return zero, false
}
