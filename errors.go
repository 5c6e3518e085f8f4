package easyid3

import (
	"errors"
	"fmt"

	"github.com/simonhull/easyid3/id3"
)

// ErrNotFound unifies the two ways a key lookup can fail: the key not
// being registered at all (InvalidKeyError) and the key being valid but
// having no value in the tag (KeyNotPresentError).
//
// Callers that only care about "this key has no value" can test with
// errors.Is(err, ErrNotFound) instead of distinguishing the two types.
var ErrNotFound = errors.New("key not found")

// InvalidKeyError is returned when a key matches no registered pattern
// for the requested operation.
type InvalidKeyError struct {
	// Key is the offending key, already lowercased.
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("%q is not a valid key", e.Key)
}

// Is reports ErrNotFound so both key error types form one category.
func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrNotFound
}

// KeyNotPresentError is returned when a key is valid but the tag holds
// no value for it (missing frame, or no credits for a performer role).
type KeyNotPresentError struct {
	// Key is the requested key, already lowercased.
	Key string
}

func (e *KeyNotPresentError) Error() string {
	return fmt.Sprintf("no value present for key %q", e.Key)
}

// Is reports ErrNotFound so both key error types form one category.
func (e *KeyNotPresentError) Is(target error) bool {
	return target == ErrNotFound
}

// FormatError is an alias to id3.FormatError. Load and Open propagate it
// unchanged from the frame container's parser.
type FormatError = id3.FormatError
