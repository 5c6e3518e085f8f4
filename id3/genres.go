package id3

import (
	"strconv"
	"strings"
)

// id3v1Genres is the standard ID3v1 genre table plus the common Winamp
// extensions. TCON frames may reference entries by index instead of
// spelling the name out.
var id3v1Genres = []string{
	"Blues", "Classic Rock", "Country", "Dance", "Disco", "Funk", "Grunge",
	"Hip-Hop", "Jazz", "Metal", "New Age", "Oldies", "Other", "Pop", "R&B",
	"Rap", "Reggae", "Rock", "Techno", "Industrial", "Alternative", "Ska",
	"Death Metal", "Pranks", "Soundtrack", "Euro-Techno", "Ambient",
	"Trip-Hop", "Vocal", "Jazz+Funk", "Fusion", "Trance", "Classical",
	"Instrumental", "Acid", "House", "Game", "Sound Clip", "Gospel",
	"Noise", "Alt. Rock", "Bass", "Soul", "Punk", "Space", "Meditative",
	"Instrumental Pop", "Instrumental Rock", "Ethnic", "Gothic",
	"Darkwave", "Techno-Industrial", "Electronic", "Pop-Folk",
	"Eurodance", "Dream", "Southern Rock", "Comedy", "Cult", "Gangsta Rap",
	"Top 40", "Christian Rap", "Pop/Funk", "Jungle", "Native American",
	"Cabaret", "New Wave", "Psychedelic", "Rave", "Showtunes", "Trailer",
	"Lo-Fi", "Tribal", "Acid Punk", "Acid Jazz", "Polka", "Retro",
	"Musical", "Rock & Roll", "Hard Rock", "Folk", "Folk-Rock",
	"National Folk", "Swing", "Fast-Fusion", "Bebop", "Latin", "Revival",
	"Celtic", "Bluegrass", "Avantgarde", "Gothic Rock",
	"Progressive Rock", "Psychedelic Rock", "Symphonic Rock", "Slow Rock",
	"Big Band", "Chorus", "Easy Listening", "Acoustic", "Humour",
	"Speech", "Chanson", "Opera", "Chamber Music", "Sonata", "Symphony",
	"Booty Bass", "Primus", "Porn Groove", "Satire", "Slow Jam", "Club",
	"Tango", "Samba", "Folklore", "Ballad", "Power Ballad",
	"Rhythmic Soul", "Freestyle", "Duet", "Punk Rock", "Drum Solo",
	"A Cappella", "Euro-House", "Dance Hall",
}

// DecodeGenres resolves a TCON frame's raw text values to genre names.
//
// Each value may be a plain genre name, a bare ID3v1 index ("17"), or the
// parenthesized ID3v2.3 form ("(17)", optionally followed by a refinement
// like "(17)Alt Rock"). "(RX)" and "(CR)" decode to "Remix" and "Cover".
// Values that look numeric but fall outside the table are kept as
// "Unknown" so information is never silently dropped.
func DecodeGenres(values []string) []string {
	var genres []string
	for _, v := range values {
		if v == "" {
			continue
		}
		if n, err := strconv.Atoi(v); err == nil {
			genres = append(genres, genreByIndex(n))
			continue
		}
		genres = append(genres, decodeGenreRefs(v)...)
	}
	return genres
}

// decodeGenreRefs expands leading "(NN)" references in a single TCON
// value. Trailing free text after the references is kept as its own
// genre; "((" escapes a literal open parenthesis.
func decodeGenreRefs(value string) []string {
	var genres []string
	for strings.HasPrefix(value, "(") {
		if strings.HasPrefix(value, "((") {
			value = value[1:]
			break
		}
		end := strings.IndexByte(value, ')')
		if end < 0 {
			break
		}
		ref := value[1:end]
		value = value[end+1:]
		switch {
		case ref == "RX":
			genres = append(genres, "Remix")
		case ref == "CR":
			genres = append(genres, "Cover")
		default:
			n, err := strconv.Atoi(ref)
			if err != nil {
				// Not a reference after all, keep the raw text.
				return append(genres, "("+ref+")"+value)
			}
			genres = append(genres, genreByIndex(n))
		}
	}
	if value != "" {
		genres = append(genres, value)
	}
	return genres
}

func genreByIndex(n int) string {
	if n >= 0 && n < len(id3v1Genres) {
		return id3v1Genres[n]
	}
	return "Unknown"
}
