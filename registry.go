package easyid3

import (
	"slices"
	"strings"

	"github.com/simonhull/easyid3/id3"
)

// GetFunc reads the values for key from the frame container. It returns
// *KeyNotPresentError when the underlying data is absent.
type GetFunc func(tag *id3.Tag, key string) ([]string, error)

// SetFunc writes values for key into the frame container. values is
// never nil; a single-string assignment arrives as a one-element slice.
type SetFunc func(tag *id3.Tag, key string, values []string) error

// DeleteFunc removes the data for key from the frame container. It
// returns *KeyNotPresentError when there is nothing to remove.
type DeleteFunc func(tag *id3.Tag, key string) error

// ListFunc expands a wildcard pattern to the concrete keys currently
// present in the frame container (e.g. "performer:*" to
// "performer:guitar"). It returns an empty slice when none are present.
type ListFunc func(tag *id3.Tag, pattern string) []string

// KeyOps bundles the behaviors registered under one key pattern. Any
// field may be nil; List is only meaningful for wildcard patterns.
type KeyOps struct {
	Get    GetFunc
	Set    SetFunc
	Delete DeleteFunc
	List   ListFunc
}

// Registry maps key patterns to behaviors, one table per operation kind.
//
// Patterns are stored lowercase and may be literal keys ("title") or
// glob patterns ("performer:*"). Each table remembers registration
// order, which makes the glob tie-break deterministic: the first
// registered matching pattern wins.
//
// Registries are meant to be configured once, before any Tag built on
// them performs lookups. Registration concurrent with lookups is not
// supported.
type Registry struct {
	get  table[GetFunc]
	set  table[SetFunc]
	del  table[DeleteFunc]
	list map[string]ListFunc
}

// NewRegistry returns an empty registry. Most callers want the package
// defaults and never construct one; an explicit registry is useful for
// isolated tests and nonstandard key sets:
//
//	reg := easyid3.NewRegistry()
//	reg.RegisterText("title", "TIT2")
//	tag := easyid3.New(easyid3.WithRegistry(reg))
func NewRegistry() *Registry {
	return &Registry{}
}

// Register stores the non-nil behaviors in ops under the lowercased
// pattern. A second Register call for the same pattern augments the
// earlier one: behaviors for other operation kinds are kept, a behavior
// for the same kind is overwritten.
func (r *Registry) Register(pattern string, ops KeyOps) {
	pattern = strings.ToLower(pattern)
	if ops.Get != nil {
		r.get.put(pattern, ops.Get)
	}
	if ops.Set != nil {
		r.set.put(pattern, ops.Set)
	}
	if ops.Delete != nil {
		r.del.put(pattern, ops.Delete)
	}
	if ops.List != nil {
		if r.list == nil {
			r.list = make(map[string]ListFunc)
		}
		r.list[pattern] = ops.List
	}
}

// RegisterText registers the standard behavior triple for a key that
// maps one-to-one onto a text frame:
//
//	reg.RegisterText("title", "TIT2")
//
// Get returns the frame's text values, failing with *KeyNotPresentError
// if the frame is absent. Set creates the frame when absent and replaces
// its text in place otherwise. Delete removes the frame by ID, failing
// with *KeyNotPresentError if absent. No lister is installed.
func (r *Registry) RegisterText(key, frameID string) {
	getter := func(tag *id3.Tag, key string) ([]string, error) {
		frame, ok := tag.Get(frameID).(*id3.TextFrame)
		if !ok {
			return nil, &KeyNotPresentError{Key: key}
		}
		return slices.Clone(frame.Text), nil
	}
	setter := func(tag *id3.Tag, key string, values []string) error {
		if frame, ok := tag.Get(frameID).(*id3.TextFrame); ok {
			frame.Text = slices.Clone(values)
			return nil
		}
		tag.Add(&id3.TextFrame{ID: frameID, Text: slices.Clone(values)})
		return nil
	}
	deleter := func(tag *id3.Tag, key string) error {
		if !tag.Remove(frameID) {
			return &KeyNotPresentError{Key: key}
		}
		return nil
	}
	r.Register(key, KeyOps{Get: getter, Set: setter, Delete: deleter})
}

// Register adds behaviors to the default registry shared by tags created
// without WithRegistry. Complete all registrations before the first
// lookup; see Registry.
func Register(pattern string, ops KeyOps) {
	defaultRegistry.Register(pattern, ops)
}

// RegisterText adds a text key to the default registry; see
// Registry.RegisterText.
func RegisterText(key, frameID string) {
	defaultRegistry.RegisterText(key, frameID)
}

// table is one operation-kind mapping with stable iteration order.
type table[F any] struct {
	funcs map[string]F
	order []string
}

func (t *table[F]) put(pattern string, fn F) {
	if t.funcs == nil {
		t.funcs = make(map[string]F)
	}
	if _, ok := t.funcs[pattern]; !ok {
		t.order = append(t.order, pattern)
	}
	t.funcs[pattern] = fn
}
