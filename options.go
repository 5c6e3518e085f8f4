package easyid3

// Option configures a Tag at construction.
//
// Options use the functional options pattern:
//
//	tag, err := easyid3.Open("song.mp3",
//	    easyid3.WithRegistry(reg),
//	)
type Option func(*tagOptions)

// tagOptions holds configuration applied by New and Open.
type tagOptions struct {
	registry *Registry
}

// defaultTagOptions returns the default configuration.
func defaultTagOptions() *tagOptions {
	return &tagOptions{
		registry: defaultRegistry,
	}
}

// WithRegistry backs the tag with an explicit key registry instead of
// the shared package defaults.
//
// Use this to test behaviors in isolation, or to build a tag whose key
// set differs from the standard one:
//
//	reg := easyid3.NewRegistry()
//	reg.RegisterText("title", "TIT2")
//	tag := easyid3.New(easyid3.WithRegistry(reg))
//	// tag knows only "title"
func WithRegistry(reg *Registry) Option {
	return func(o *tagOptions) {
		o.registry = reg
	}
}
