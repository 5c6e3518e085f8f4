// Package easyid3 exposes ID3v2 tags through flat, case-insensitive
// string keys.
//
// ID3v2 stores metadata in typed binary frames with four-character IDs.
// easyid3 hides that structure behind a simple mapping: keys like
// "title", "artist", and "genre" read and write the right frames, and
// every value is a slice of strings, the way Vorbis comments behave.
//
// # Quick Start
//
// Reading and editing a tag:
//
//	tag, err := easyid3.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	title, _ := tag.Get("title")
//	fmt.Println(title)
//
//	tag.Set("album", "Blue Train")
//	if err := tag.Save(); err != nil {
//		log.Fatal(err)
//	}
//
// # Keys
//
// Keys are matched case-insensitively: Set("TITLE", ...) and
// Get("title") address the same frame. The built-in key set covers the
// common text frames (title, artist, album, tracknumber, ...), plus
// three keys with frame-specific behavior:
//
//   - "genre": the parsed genre list of the TCON frame. Numeric ID3v1
//     references are decoded to names on load.
//   - "date": the recording time (TDRC). Setting it always replaces the
//     frame wholesale; text keys instead merge into an existing frame.
//   - "performer:<role>": the credits for one role inside the TMCL
//     frame, e.g. Get("performer:guitar"). Keys() expands the present
//     roles to concrete keys.
//
// # Error Handling
//
// Lookups fail in two distinguishable ways: *InvalidKeyError when a key
// is not registered at all, and *KeyNotPresentError when the key is
// valid but the tag holds no value. Both satisfy
// errors.Is(err, ErrNotFound), so callers that don't care about the
// difference can catch them together:
//
//	values, err := tag.Get("performer:cello")
//	if errors.Is(err, easyid3.ErrNotFound) {
//		// no cello credits
//	}
//
// Parse failures during Open and Load surface as *FormatError.
//
// # Extending the Key Set
//
// The key table is extensible. RegisterText covers keys that map
// one-to-one onto a text frame:
//
//	easyid3.RegisterText("language", "TLAN")
//
// Register installs arbitrary behaviors, including glob patterns with
// listers; see Registry. Complete all registrations before the first
// lookup: the registry is read-mostly state shared by every tag built
// on it.
//
// # Architecture
//
// easyid3 is a dispatch layer, not a parser:
//
//	[Tag]            - flat key mapping (this package)
//	  └─ [Registry]  - per-key behavior tables with glob matching
//	       └─ [id3.Tag] - ordered frame container + ID3v2 codec
//
// The id3 subpackage owns all byte-level work; behaviors only move
// strings in and out of parsed frame objects.
package easyid3
