package easyid3

import (
	"errors"
	"strings"
	"testing"
)

func TestInvalidKeyError_Error(t *testing.T) {
	err := &InvalidKeyError{Key: "nonexistent"}

	msg := err.Error()
	if !strings.Contains(msg, `"nonexistent"`) {
		t.Errorf("error should contain the key, got: %s", msg)
	}
	if !strings.Contains(msg, "not a valid key") {
		t.Errorf("error should contain 'not a valid key', got: %s", msg)
	}
}

func TestKeyNotPresentError_Error(t *testing.T) {
	err := &KeyNotPresentError{Key: "performer:cello"}

	msg := err.Error()
	if !strings.Contains(msg, `"performer:cello"`) {
		t.Errorf("error should contain the key, got: %s", msg)
	}
	if !strings.Contains(msg, "no value present") {
		t.Errorf("error should contain 'no value present', got: %s", msg)
	}
}

func TestErrNotFound_Unifies(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"invalid key", &InvalidKeyError{Key: "x"}},
		{"key not present", &KeyNotPresentError{Key: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrNotFound) {
				t.Errorf("%T should satisfy errors.Is(err, ErrNotFound)", tt.err)
			}
		})
	}

	// Unrelated errors stay outside the category.
	if errors.Is(errors.New("boom"), ErrNotFound) {
		t.Error("arbitrary errors must not match ErrNotFound")
	}
}
