package easyid3

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/easyid3/id3"
)

// Tag exposes an ID3v2 frame container through flat, case-insensitive
// string keys.
//
// Keys map to frames via a Registry: "title" reads and writes the TIT2
// frame, "genre" the parsed TCON genre list, "performer:guitar" the
// guitar credits inside the TMCL frame, and so on. Values crossing the
// Tag boundary are always string slices; frame objects never leak to
// callers.
//
// Values are constructed on each call, so mutating a returned slice does
// not change the tag. Read, modify, and write back instead:
//
//	people, _ := tag.Get("performer:guitar")
//	people = append(people, "Joe")
//	tag.Set("performer:guitar", people...)
//
// A Tag owns its container exclusively and is not safe for concurrent
// use.
type Tag struct {
	id3 *id3.Tag
	reg *Registry
}

// New returns an empty tag backed by a fresh frame container.
func New(opts ...Option) *Tag {
	options := defaultTagOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &Tag{id3: id3.New(), reg: options.registry}
}

// Open creates a tag and loads it from path.
//
// Files without a parseable ID3v2 tag produce a *FormatError, surfaced
// unchanged from the container's parser.
//
// Example:
//
//	tag, err := easyid3.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	title, err := tag.Get("title")
func Open(path string, opts ...Option) (*Tag, error) {
	t := New(opts...)
	if err := t.Load(path); err != nil {
		return nil, err
	}
	return t, nil
}

// OpenMany opens multiple tags concurrently, up to runtime.NumCPU() at a
// time. Results are returned in input order; the first failure aborts
// the whole batch.
func OpenMany(ctx context.Context, paths ...string) ([]*Tag, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Tag, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tag, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = tag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Get returns the values for key.
//
// It returns *InvalidKeyError when key matches no registered pattern,
// and *KeyNotPresentError when the key is valid but the tag holds no
// value for it. Both satisfy errors.Is(err, ErrNotFound).
func (t *Tag) Get(key string) ([]string, error) {
	key = strings.ToLower(key)
	getter, ok := t.reg.get.match(key)
	if !ok {
		return nil, &InvalidKeyError{Key: key}
	}
	return getter(t.id3, key)
}

// Set stores values under key, replacing whatever the key held before.
// How the values land in frames is up to the key's registered behavior;
// see the package documentation for the built-in policies.
func (t *Tag) Set(key string, values ...string) error {
	key = strings.ToLower(key)
	setter, ok := t.reg.set.match(key)
	if !ok {
		return &InvalidKeyError{Key: key}
	}
	vals := slices.Clone(values)
	if vals == nil {
		// Setters are promised a non-nil slice even for zero values.
		vals = []string{}
	}
	return setter(t.id3, key, vals)
}

// Delete removes the values for key. It returns *InvalidKeyError for
// unregistered keys and *KeyNotPresentError when there is nothing to
// remove.
func (t *Tag) Delete(key string) error {
	key = strings.ToLower(key)
	deleter, ok := t.reg.del.match(key)
	if !ok {
		return &InvalidKeyError{Key: key}
	}
	return deleter(t.id3, key)
}

// Keys returns the keys that currently have values, in no particular
// order. Wildcard patterns with a registered lister expand to concrete
// keys ("performer:guitar"), never the pattern itself. Keys never
// returns an error; existence probes that fail are simply skipped.
func (t *Tag) Keys() []string {
	var keys []string
	for _, pattern := range t.reg.get.order {
		if lister, ok := t.reg.list[pattern]; ok {
			keys = append(keys, lister(t.id3, pattern)...)
		} else if _, err := t.Get(pattern); err == nil {
			keys = append(keys, pattern)
		}
	}
	return keys
}

// String renders the tag as "key=value" lines, one per value, sorted by
// key with values in their natural order. The output is deterministic,
// which makes it useful for diffing and snapshot tests.
func (t *Tag) String() string {
	keys := t.Keys()
	slices.Sort(keys)

	var lines []string
	for _, key := range keys {
		values, err := t.Get(key)
		if err != nil {
			continue
		}
		for _, value := range values {
			lines = append(lines, key+"="+value)
		}
	}
	return strings.Join(lines, "\n")
}

// Load reads the tag from path, delegating to the frame container.
func (t *Tag) Load(path string) error {
	return t.id3.Load(path)
}

// Save writes the tag to path, or to Filename if no path is given,
// delegating to the frame container.
func (t *Tag) Save(path ...string) error {
	return t.id3.Save(path...)
}

// DeleteTag strips the ID3v2 tag from the underlying file and empties
// the container.
func (t *Tag) DeleteTag() error {
	return t.id3.Delete()
}

// Filename returns the container's current file path.
func (t *Tag) Filename() string {
	return t.id3.Filename
}

// SetFilename changes the container's file path, which Save and
// DeleteTag use by default.
func (t *Tag) SetFilename(path string) {
	t.id3.Filename = path
}
