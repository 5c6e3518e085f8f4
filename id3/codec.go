package id3

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strings"
	"unicode/utf16"
)

// ID3v2 text encoding bytes.
const (
	encLatin1  = 0 // ISO-8859-1
	encUTF16   = 1 // UTF-16 with BOM
	encUTF16BE = 2 // UTF-16BE (ID3v2.4)
	encUTF8    = 3 // UTF-8 (ID3v2.4)
)

// padding appended after the last frame when writing a tag, so small
// edits can be done in place by other tools.
const padding = 1024

// readTag reads and parses the ID3v2 tag at the start of path.
func readTag(path string) ([]Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	frames, _, err := parseTag(data, path)
	return frames, err
}

// parseTag parses an ID3v2 tag from the head of data. It returns the
// parsed frames and the total tag length in bytes (header, frames,
// padding, and footer if present).
func parseTag(data []byte, path string) ([]Frame, int, error) {
	if len(data) < 10 || string(data[0:3]) != "ID3" {
		return nil, 0, &FormatError{Path: path, Reason: "no ID3v2 tag found"}
	}

	version := data[3]
	flags := data[5]
	size := int(decodeSynchsafe(data[6:10]))

	// Only ID3v2.3 and ID3v2.4 are supported.
	if version != 3 && version != 4 {
		return nil, 0, &FormatError{
			Path:   path,
			Reason: fmt.Sprintf("unsupported ID3v2 version: 2.%d", version),
		}
	}

	tagLen := 10 + size
	if flags&0x10 != 0 {
		tagLen += 10 // footer (ID3v2.4)
	}
	if tagLen > len(data) {
		return nil, 0, &FormatError{
			Path:   path,
			Reason: fmt.Sprintf("tag size %d exceeds file size %d", tagLen, len(data)),
		}
	}

	// Skip the extended header if present.
	offset := 10
	end := 10 + size
	if flags&0x40 != 0 && offset+4 <= end {
		var extSize int
		if version == 4 {
			extSize = int(decodeSynchsafe(data[offset : offset+4]))
		} else {
			extSize = int(binary.BigEndian.Uint32(data[offset:offset+4])) + 4
		}
		offset += extSize
	}

	var frames []Frame
	for offset+10 <= end {
		// Null bytes mark the start of padding.
		if data[offset] == 0 {
			break
		}

		id := string(data[offset : offset+4])
		var frameSize int
		if version == 4 {
			frameSize = int(decodeSynchsafe(data[offset+4 : offset+8]))
		} else {
			frameSize = int(binary.BigEndian.Uint32(data[offset+4 : offset+8]))
		}
		offset += 10

		if frameSize < 0 || offset+frameSize > end {
			return nil, 0, &FormatError{
				Path:   path,
				Reason: fmt.Sprintf("frame %s overruns tag boundary", id),
			}
		}

		payload := data[offset : offset+frameSize]
		frames = append(frames, decodeFrame(id, payload))
		offset += frameSize
	}

	return frames, tagLen, nil
}

// decodeFrame turns a raw frame payload into a typed Frame. Frames the
// codec does not understand are kept raw.
func decodeFrame(id string, payload []byte) Frame {
	switch {
	case id == FrameGenre:
		return &GenreFrame{Genres: DecodeGenres(decodeTextValues(payload))}
	case id == FrameRecordingTime:
		return &TimestampFrame{ID: id, Timestamps: decodeTextValues(payload)}
	case id == FrameMusicianCredits || id == FrameInvolvedPeople:
		return &PairedTextFrame{ID: id, People: decodeCredits(payload)}
	case strings.HasPrefix(id, "T") && id != "TXXX":
		return &TextFrame{ID: id, Text: decodeTextValues(payload)}
	default:
		return &RawFrame{ID: id, Data: bytes.Clone(payload)}
	}
}

// decodeTextValues decodes a text frame payload into its string values.
// The first payload byte selects the encoding; values are separated by
// null terminators (ID3v2.4 multi-value form).
func decodeTextValues(payload []byte) []string {
	if len(payload) < 1 {
		return nil
	}
	encoding := payload[0]

	var values []string
	for _, chunk := range splitTerminated(payload[1:], encoding) {
		values = append(values, decodeText(chunk, encoding))
	}
	return values
}

// decodeCredits decodes a paired text frame payload (TMCL/TIPL) into
// (role, person) pairs. The wire form alternates role and person strings.
func decodeCredits(payload []byte) []Credit {
	values := decodeTextValues(payload)

	var people []Credit
	for i := 0; i+1 < len(values); i += 2 {
		people = append(people, Credit{Role: values[i], Person: values[i+1]})
	}
	return people
}

// splitTerminated splits data on null terminators sized for the encoding
// (one byte for Latin-1/UTF-8, two for UTF-16). A trailing terminator
// does not produce an empty value.
func splitTerminated(data []byte, encoding byte) [][]byte {
	var chunks [][]byte
	for len(data) > 0 {
		idx := findNullTerminator(data, encoding)
		if idx < 0 {
			chunks = append(chunks, data)
			break
		}
		chunks = append(chunks, data[:idx])
		data = data[idx+terminatorSize(encoding):]
	}
	return chunks
}

// writeTag renders frames as an ID3v2.4 tag and splices it ahead of the
// audio payload in dst. A missing destination file is created and holds
// only the tag.
func writeTag(dst string, frames []Frame) error {
	var audio []byte
	if data, err := os.ReadFile(dst); err == nil {
		audio = data[existingTagLength(data):]
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", dst, err)
	}

	out := renderTag(frames)
	out = append(out, audio...)
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}

// stripTag removes the ID3v2 tag from path, keeping the audio payload.
// A file without a tag is left unchanged.
func stripTag(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	tagLen := existingTagLength(data)
	if tagLen == 0 {
		return nil
	}
	if err := os.WriteFile(path, data[tagLen:], 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// existingTagLength returns the length of the ID3v2 tag at the head of
// data, or 0 if there is none.
func existingTagLength(data []byte) int {
	if len(data) < 10 || string(data[0:3]) != "ID3" {
		return 0
	}
	tagLen := 10 + int(decodeSynchsafe(data[6:10]))
	if data[5]&0x10 != 0 {
		tagLen += 10
	}
	if tagLen > len(data) {
		return 0
	}
	return tagLen
}

// renderTag serializes frames as a complete ID3v2.4 tag, padding
// included. Text frames are written with UTF-8 encoding.
func renderTag(frames []Frame) []byte {
	body := &bytes.Buffer{}
	for _, f := range frames {
		payload := encodeFrame(f)
		if payload == nil {
			continue
		}
		body.WriteString(f.FrameID())
		body.Write(encodeSynchsafe(uint32(len(payload))))
		body.Write([]byte{0, 0}) // frame flags
		body.Write(payload)
	}
	body.Write(make([]byte, padding))

	out := &bytes.Buffer{}
	out.WriteString("ID3")
	out.Write([]byte{4, 0, 0}) // version 2.4.0, no flags
	out.Write(encodeSynchsafe(uint32(body.Len())))
	out.Write(body.Bytes())
	return out.Bytes()
}

// encodeFrame serializes a frame payload. Returns nil for frames with
// nothing to write.
func encodeFrame(f Frame) []byte {
	switch f := f.(type) {
	case *TextFrame:
		return encodeTextValues(f.Text)
	case *GenreFrame:
		return encodeTextValues(f.Genres)
	case *TimestampFrame:
		return encodeTextValues(f.Timestamps)
	case *PairedTextFrame:
		values := make([]string, 0, len(f.People)*2)
		for _, c := range f.People {
			values = append(values, c.Role, c.Person)
		}
		return encodeTextValues(values)
	case *RawFrame:
		return f.Data
	default:
		return nil
	}
}

// encodeTextValues serializes strings as a UTF-8 text frame payload with
// null separators.
func encodeTextValues(values []string) []byte {
	buf := &bytes.Buffer{}
	buf.WriteByte(encUTF8)
	buf.WriteString(strings.Join(values, "\x00"))
	return buf.Bytes()
}

// decodeSynchsafe decodes a synchsafe integer (7 bits per byte).
func decodeSynchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// encodeSynchsafe encodes n as a 4-byte synchsafe integer.
func encodeSynchsafe(n uint32) []byte {
	return []byte{
		byte(n >> 21 & 0x7F),
		byte(n >> 14 & 0x7F),
		byte(n >> 7 & 0x7F),
		byte(n & 0x7F),
	}
}

// decodeText decodes text based on the ID3v2 encoding byte.
func decodeText(data []byte, encoding byte) string {
	switch encoding {
	case encLatin1:
		return decodeLatin1(data)
	case encUTF16:
		return decodeUTF16(data)
	case encUTF16BE:
		return decodeUTF16BE(data)
	default:
		// UTF-8 and unknown encodings pass through as-is.
		return string(data)
	}
}

// decodeLatin1 decodes ISO-8859-1 text. Each byte is exactly one code
// point, so bytes above 0x7F must widen to runes rather than pass
// through.
func decodeLatin1(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}

// decodeUTF16 decodes UTF-16 with BOM; big-endian is assumed without one.
func decodeUTF16(data []byte) string {
	if len(data) >= 2 {
		if data[0] == 0xFF && data[1] == 0xFE {
			return decodeUTF16LE(data[2:])
		}
		if data[0] == 0xFE && data[1] == 0xFF {
			return decodeUTF16BE(data[2:])
		}
	}
	return decodeUTF16BE(data)
}

func decodeUTF16LE(data []byte) string {
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}
	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		u16[i] = uint16(data[i*2]) | uint16(data[i*2+1])<<8
	}
	return string(utf16.Decode(u16))
}

func decodeUTF16BE(data []byte) string {
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}
	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		u16[i] = uint16(data[i*2])<<8 | uint16(data[i*2+1])
	}
	return string(utf16.Decode(u16))
}

// findNullTerminator finds the null terminator for the encoding, or -1.
func findNullTerminator(data []byte, encoding byte) int {
	switch encoding {
	case encUTF16, encUTF16BE:
		for i := 0; i+1 < len(data); i += 2 {
			if data[i] == 0 && data[i+1] == 0 {
				return i
			}
		}
		return -1
	default:
		return bytes.IndexByte(data, 0)
	}
}

// terminatorSize returns the null terminator width for the encoding.
func terminatorSize(encoding byte) int {
	if encoding == encUTF16 || encoding == encUTF16BE {
		return 2
	}
	return 1
}
