package easyid3

import (
	"errors"
	"slices"
	"testing"

	"github.com/simonhull/easyid3/id3"
)

func staticGet(values ...string) GetFunc {
	return func(tag *id3.Tag, key string) ([]string, error) {
		return values, nil
	}
}

func TestRegister_Augment(t *testing.T) {
	reg := NewRegistry()
	reg.Register("custom", KeyOps{Get: staticGet("a")})

	var setCalled bool
	reg.Register("custom", KeyOps{
		Set: func(tag *id3.Tag, key string, values []string) error {
			setCalled = true
			return nil
		},
	})

	// The second registration adds the setter without dropping the getter.
	getter, ok := reg.get.match("custom")
	if !ok {
		t.Fatal("getter lost after augmenting registration")
	}
	if got, _ := getter(nil, "custom"); !slices.Equal(got, []string{"a"}) {
		t.Errorf("getter = %v, want [a]", got)
	}

	setter, ok := reg.set.match("custom")
	if !ok {
		t.Fatal("setter not registered")
	}
	setter(nil, "custom", nil)
	if !setCalled {
		t.Error("registered setter was not the one invoked")
	}
}

func TestRegister_OverwriteSameKind(t *testing.T) {
	reg := NewRegistry()
	reg.Register("custom", KeyOps{Get: staticGet("old")})
	reg.Register("custom", KeyOps{Get: staticGet("new")})

	getter, ok := reg.get.match("custom")
	if !ok {
		t.Fatal("no getter registered")
	}
	if got, _ := getter(nil, "custom"); !slices.Equal(got, []string{"new"}) {
		t.Errorf("getter = %v, want [new] (same-kind registration must overwrite)", got)
	}

	// Overwriting must not duplicate the pattern in iteration order.
	if n := len(reg.get.order); n != 1 {
		t.Errorf("get table order has %d entries, want 1", n)
	}
}

func TestRegister_LowercasesPattern(t *testing.T) {
	reg := NewRegistry()
	reg.Register("TITLE", KeyOps{Get: staticGet("x")})

	if _, ok := reg.get.match("title"); !ok {
		t.Error("pattern registered as TITLE should match lowercased key")
	}
}

func TestMatch_LiteralBeatsGlob(t *testing.T) {
	reg := NewRegistry()
	// The glob is registered first, so only the literal-first rule can
	// keep "performer" from being captured by it.
	reg.Register("performer:*", KeyOps{Get: staticGet("glob")})
	reg.Register("performer", KeyOps{Get: staticGet("literal")})

	getter, ok := reg.get.match("performer")
	if !ok {
		t.Fatal("no match for literal key")
	}
	if got, _ := getter(nil, "performer"); !slices.Equal(got, []string{"literal"}) {
		t.Errorf("match(performer) = %v, want the literal entry", got)
	}

	getter, ok = reg.get.match("performer:guitar")
	if !ok {
		t.Fatal("no match for wildcard key")
	}
	if got, _ := getter(nil, "performer:guitar"); !slices.Equal(got, []string{"glob"}) {
		t.Errorf("match(performer:guitar) = %v, want the glob entry", got)
	}
}

func TestMatch_FirstRegisteredGlobWins(t *testing.T) {
	reg := NewRegistry()
	reg.Register("custom:*", KeyOps{Get: staticGet("first")})
	reg.Register("custom:a*", KeyOps{Get: staticGet("second")})

	getter, ok := reg.get.match("custom:abc")
	if !ok {
		t.Fatal("no match")
	}
	if got, _ := getter(nil, "custom:abc"); !slices.Equal(got, []string{"first"}) {
		t.Errorf("overlapping globs: matched %v, want the first registered", got)
	}
}

func TestMatch_BadPatternNeverMatches(t *testing.T) {
	reg := NewRegistry()
	reg.Register("custom[", KeyOps{Get: staticGet("x")})

	if _, ok := reg.get.match("customx"); ok {
		t.Error("malformed glob pattern must not match")
	}
}

func TestMatch_NoMatch(t *testing.T) {
	reg := NewRegistry()
	reg.Register("title", KeyOps{Get: staticGet("x")})

	if _, ok := reg.get.match("artist"); ok {
		t.Error("unregistered key must not match")
	}
}

func TestSet_ZeroValuesPassesNonNil(t *testing.T) {
	reg := NewRegistry()
	var got []string
	called := false
	reg.Register("custom", KeyOps{
		Set: func(tag *id3.Tag, key string, values []string) error {
			got = values
			called = true
			return nil
		},
	})

	tag := New(WithRegistry(reg))
	if err := tag.Set("custom"); err != nil {
		t.Fatalf("Set with zero values failed: %v", err)
	}
	if !called {
		t.Fatal("setter was not invoked")
	}
	if got == nil {
		t.Error("setter received nil values, want an empty slice")
	}
}

func TestWithRegistry_Isolation(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterText("title", "TIT2")

	tag := New(WithRegistry(reg))
	if err := tag.Set("title", "X"); err != nil {
		t.Fatalf("Set(title) failed: %v", err)
	}

	// Keys outside the custom registry are invalid for this tag.
	var invalid *InvalidKeyError
	if _, err := tag.Get("artist"); !errors.As(err, &invalid) {
		t.Errorf("Get(artist) with minimal registry: got %v, want *InvalidKeyError", err)
	}

	// The default registry is untouched.
	if _, err := New().Get("artist"); errors.As(err, &invalid) {
		t.Error("default registry lost a built-in key")
	}
}

func TestRegisterText_DefaultRegistry(t *testing.T) {
	// Extend the shared defaults, as callers adding custom keys would.
	RegisterText("language", "TLAN")

	tag := New()
	if err := tag.Set("language", "eng"); err != nil {
		t.Fatalf("Set(language) failed: %v", err)
	}
	got, err := tag.Get("language")
	if err != nil || !slices.Equal(got, []string{"eng"}) {
		t.Errorf("Get(language) = %v, %v; want [eng]", got, err)
	}
}
