package id3

import "fmt"

// FormatError is returned when a file's ID3v2 tag is missing or cannot
// be parsed.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: invalid ID3v2 tag: %s", e.Path, e.Reason)
}
