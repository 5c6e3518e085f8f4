package id3

// Frame is a single ID3v2 frame with a typed payload.
//
// Concrete frame types carry the payload kinds the tag model understands:
// plain multi-string text, genre lists, timestamps, and (role, person)
// credit pairs. Frames the codec does not recognize are preserved as
// RawFrame so they survive a load/save round trip untouched.
type Frame interface {
	// FrameID returns the 4-character ID3v2 frame identifier (e.g. "TIT2").
	FrameID() string
}

// TextFrame is a standard text information frame (TIT2, TPE1, TALB, ...).
//
// ID3v2.4 allows multiple values per text frame, separated by null bytes
// on the wire. Text holds them in order.
type TextFrame struct {
	// ID is the 4-character frame identifier.
	ID string

	// Text holds the frame's values in wire order.
	Text []string
}

func (f *TextFrame) FrameID() string { return f.ID }

// GenreFrame is the content type frame (TCON).
//
// Genres holds the resolved genre names. Numeric ID3v1 references in the
// raw text (e.g. "(17)" or a bare "17") are decoded to their names during
// parsing; see DecodeGenres.
type GenreFrame struct {
	Genres []string
}

func (f *GenreFrame) FrameID() string { return FrameGenre }

// TimestampFrame is a timestamp frame (TDRC, recording time).
//
// Timestamps are kept in their textual ID3v2.4 form (subsets of
// "yyyy-MM-ddTHH:mm:ss"); the codec does not interpret them further.
type TimestampFrame struct {
	// ID is the 4-character frame identifier.
	ID string

	// Timestamps holds the frame's values in wire order.
	Timestamps []string
}

func (f *TimestampFrame) FrameID() string { return f.ID }

// Credit is one (role, person) pair in a paired text frame.
type Credit struct {
	Role   string
	Person string
}

// PairedTextFrame is a paired text frame (TMCL musician credits,
// TIPL involved people).
//
// People holds the credit pairs in wire order. The same role may appear
// in multiple pairs.
type PairedTextFrame struct {
	// ID is the 4-character frame identifier.
	ID string

	// People holds the (role, person) pairs in wire order.
	People []Credit
}

func (f *PairedTextFrame) FrameID() string { return f.ID }

// RawFrame is a frame the codec does not interpret (APIC, TXXX, COMM, ...).
//
// Data is the frame payload exactly as read; it is written back verbatim
// on save.
type RawFrame struct {
	// ID is the 4-character frame identifier.
	ID string

	// Data is the uninterpreted frame payload.
	Data []byte
}

func (f *RawFrame) FrameID() string { return f.ID }

// Well-known frame IDs used by the built-in key behaviors.
const (
	FrameGenre           = "TCON"
	FrameRecordingTime   = "TDRC"
	FrameMusicianCredits = "TMCL"
	FrameInvolvedPeople  = "TIPL"
)
