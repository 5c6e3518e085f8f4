// Package id3 provides an in-memory ID3v2 frame container with load and
// save support.
//
// A Tag holds an ordered collection of parsed frames, at most one per
// frame ID. It is the storage layer underneath the easyid3 key-dispatch
// facade, but can be used on its own for frame-level access:
//
//	tag := id3.New()
//	if err := tag.Load("song.mp3"); err != nil {
//		return err
//	}
//	if f, ok := tag.Get("TIT2").(*id3.TextFrame); ok {
//		fmt.Println(f.Text)
//	}
//
// Load accepts ID3v2.3 and ID3v2.4 tags; Save always writes ID3v2.4 with
// UTF-8 text encoding. Frames the codec does not interpret are carried as
// RawFrame and written back verbatim.
package id3

import (
	"fmt"
	"iter"
	"slices"
)

// Tag is an ordered container of ID3v2 frames.
//
// Frames are kept in insertion order (load order for parsed tags). Adding
// a frame whose ID is already present replaces the existing frame in
// place, preserving its position.
//
// A Tag is not safe for concurrent use.
type Tag struct {
	// Filename is the path the tag was loaded from, and the default
	// destination for Save and Delete. It may be set freely.
	Filename string

	frames []Frame
}

// New returns an empty tag.
func New() *Tag {
	return &Tag{}
}

// Get returns the frame with the given ID, or nil if absent.
func (t *Tag) Get(id string) Frame {
	for _, f := range t.frames {
		if f.FrameID() == id {
			return f
		}
	}
	return nil
}

// Add inserts a frame. If a frame with the same ID is already present it
// is replaced in place; otherwise the frame is appended.
func (t *Tag) Add(frame Frame) {
	for i, f := range t.frames {
		if f.FrameID() == frame.FrameID() {
			t.frames[i] = frame
			return
		}
	}
	t.frames = append(t.frames, frame)
}

// Remove deletes the frame with the given ID. It reports whether a frame
// was removed.
func (t *Tag) Remove(id string) bool {
	for i, f := range t.frames {
		if f.FrameID() == id {
			t.frames = slices.Delete(t.frames, i, i+1)
			return true
		}
	}
	return false
}

// Len returns the number of frames in the tag.
func (t *Tag) Len() int {
	return len(t.frames)
}

// Frames returns an iterator over the frames in order.
func (t *Tag) Frames() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for _, f := range t.frames {
			if !yield(f) {
				return
			}
		}
	}
}

// Load reads the ID3v2 tag from path, replacing the tag's current frames.
//
// The tag's Filename is set to path. Files without an ID3v2 header, and
// files whose tag cannot be parsed, produce a *FormatError.
func (t *Tag) Load(path string) error {
	frames, err := readTag(path)
	if err != nil {
		return err
	}
	t.Filename = path
	t.frames = frames
	return nil
}

// Save writes the tag to path, or to the tag's Filename if no path is
// given. Any existing ID3v2 tag in the destination file is replaced; the
// audio payload after it is preserved. If the destination does not exist
// it is created and contains only the tag.
func (t *Tag) Save(path ...string) error {
	dst := t.Filename
	if len(path) > 0 {
		dst = path[0]
	}
	if dst == "" {
		return fmt.Errorf("save: no filename set")
	}
	return writeTag(dst, t.frames)
}

// Delete strips the ID3v2 tag from the tag's file, leaving the audio
// payload in place, and empties the in-memory frame list.
func (t *Tag) Delete() error {
	if t.Filename == "" {
		return fmt.Errorf("delete: no filename set")
	}
	if err := stripTag(t.Filename); err != nil {
		return err
	}
	t.frames = nil
	return nil
}
