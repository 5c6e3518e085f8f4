package easyid3

import (
	"slices"
	"strings"

	"github.com/simonhull/easyid3/id3"
)

// defaultRegistry backs every tag constructed without WithRegistry.
// It is fully populated before first use; package-level Register calls
// extend it.
var defaultRegistry = newDefaultRegistry()

// textKeys lists the built-in keys that map one-to-one onto a text
// frame, in registration order.
var textKeys = []struct {
	key     string
	frameID string
}{
	{"album", "TALB"},
	{"bpm", "TBPM"},
	{"compilation", "TCMP"}, // iTunes extension
	{"composer", "TCOM"},
	{"copyright", "TCOP"},
	{"encodedby", "TENC"},
	{"lyricist", "TEXT"},
	{"length", "TLEN"},
	{"media", "TMED"},
	{"mood", "TMOO"},
	{"title", "TIT2"},
	{"version", "TIT3"},
	{"artist", "TPE1"},
	{"performer", "TPE2"},
	{"conductor", "TPE3"},
	{"arranger", "TPE4"},
	{"discnumber", "TPOS"},
	{"organization", "TPUB"},
	{"tracknumber", "TRCK"},
	{"author", "TOLY"},
	{"albumartistsort", "TSO2"}, // iTunes extension
	{"albumsort", "TSOA"},
	{"composersort", "TSOC"}, // iTunes extension
	{"artistsort", "TSOP"},
	{"titlesort", "TSOT"},
	{"isrc", "TSRC"},
	{"discsubtitle", "TSST"},
}

func newDefaultRegistry() *Registry {
	reg := NewRegistry()
	for _, tk := range textKeys {
		reg.RegisterText(tk.key, tk.frameID)
	}
	reg.Register("genre", KeyOps{Get: genreGet, Set: genreSet, Delete: genreDelete})
	reg.Register("date", KeyOps{Get: dateGet, Set: dateSet, Delete: dateDelete})
	reg.Register("performer:*", KeyOps{
		Get:    performerGet,
		Set:    performerSet,
		Delete: performerDelete,
		List:   performerList,
	})
	return reg
}

func genreGet(tag *id3.Tag, key string) ([]string, error) {
	frame, ok := tag.Get(id3.FrameGenre).(*id3.GenreFrame)
	if !ok {
		return nil, &KeyNotPresentError{Key: key}
	}
	return slices.Clone(frame.Genres), nil
}

func genreSet(tag *id3.Tag, key string, values []string) error {
	if frame, ok := tag.Get(id3.FrameGenre).(*id3.GenreFrame); ok {
		frame.Genres = slices.Clone(values)
		return nil
	}
	tag.Add(&id3.GenreFrame{Genres: slices.Clone(values)})
	return nil
}

func genreDelete(tag *id3.Tag, key string) error {
	if !tag.Remove(id3.FrameGenre) {
		return &KeyNotPresentError{Key: key}
	}
	return nil
}

func dateGet(tag *id3.Tag, key string) ([]string, error) {
	frame, ok := tag.Get(id3.FrameRecordingTime).(*id3.TimestampFrame)
	if !ok {
		return nil, &KeyNotPresentError{Key: key}
	}
	return slices.Clone(frame.Timestamps), nil
}

// dateSet always installs a fresh frame; unlike text keys, date writes
// replace the frame wholesale rather than merging into an existing one.
func dateSet(tag *id3.Tag, key string, values []string) error {
	tag.Add(&id3.TimestampFrame{
		ID:         id3.FrameRecordingTime,
		Timestamps: slices.Clone(values),
	})
	return nil
}

func dateDelete(tag *id3.Tag, key string) error {
	if !tag.Remove(id3.FrameRecordingTime) {
		return &KeyNotPresentError{Key: key}
	}
	return nil
}

// roleSuffix extracts the role from a "performer:<role>" key. The glob
// pattern guarantees the colon is present.
func roleSuffix(key string) string {
	_, role, _ := strings.Cut(key, ":")
	return role
}

func performerGet(tag *id3.Tag, key string) ([]string, error) {
	frame, ok := tag.Get(id3.FrameMusicianCredits).(*id3.PairedTextFrame)
	if !ok {
		return nil, &KeyNotPresentError{Key: key}
	}

	role := roleSuffix(key)
	var people []string
	for _, c := range frame.People {
		if c.Role == role {
			people = append(people, c.Person)
		}
	}
	if len(people) == 0 {
		return nil, &KeyNotPresentError{Key: key}
	}
	return people, nil
}

func performerSet(tag *id3.Tag, key string, values []string) error {
	frame, ok := tag.Get(id3.FrameMusicianCredits).(*id3.PairedTextFrame)
	if !ok {
		frame = &id3.PairedTextFrame{ID: id3.FrameMusicianCredits}
		tag.Add(frame)
	}

	// Replace the role's credits, keeping other roles' pairs in their
	// original positions and appending the new ones at the end.
	role := roleSuffix(key)
	people := slices.DeleteFunc(slices.Clone(frame.People), func(c id3.Credit) bool {
		return c.Role == role
	})
	for _, v := range values {
		people = append(people, id3.Credit{Role: role, Person: v})
	}
	frame.People = people
	return nil
}

func performerDelete(tag *id3.Tag, key string) error {
	frame, ok := tag.Get(id3.FrameMusicianCredits).(*id3.PairedTextFrame)
	if !ok {
		return &KeyNotPresentError{Key: key}
	}

	role := roleSuffix(key)
	people := slices.DeleteFunc(slices.Clone(frame.People), func(c id3.Credit) bool {
		return c.Role == role
	})
	switch {
	case len(people) == len(frame.People):
		// Nothing matched the role.
		return &KeyNotPresentError{Key: key}
	case len(people) > 0:
		frame.People = people
	default:
		// Last role removed; drop the frame rather than keep it empty.
		tag.Remove(id3.FrameMusicianCredits)
	}
	return nil
}

func performerList(tag *id3.Tag, pattern string) []string {
	frame, ok := tag.Get(id3.FrameMusicianCredits).(*id3.PairedTextFrame)
	if !ok {
		return nil
	}

	var keys []string
	seen := make(map[string]bool)
	for _, c := range frame.People {
		if !seen[c.Role] {
			seen[c.Role] = true
			keys = append(keys, "performer:"+c.Role)
		}
	}
	return keys
}
