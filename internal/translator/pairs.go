package translator

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/fhs/gompd/v2/mpd"
)

// MPD tag vocabulary.
const (
	TagFile                     = "file"
	TagTime                     = "Time"
	TagArtist                   = "Artist"
	TagTitle                    = "Title"
	TagName                     = "Name"
	TagAlbum                    = "Album"
	TagAlbumArtist              = "AlbumArtist"
	TagComposer                 = "Composer"
	TagPerformer                = "Performer"
	TagGenre                    = "Genre"
	TagTrack                    = "Track"
	TagDate                     = "Date"
	TagDisc                     = "Disc"
	TagPos                      = "Pos"
	TagID                       = "Id"
	TagMusicBrainzTrackID       = "MUSICBRAINZ_TRACKID"
	TagMusicBrainzAlbumID       = "MUSICBRAINZ_ALBUMID"
	TagMusicBrainzAlbumArtistID = "MUSICBRAINZ_ALBUMARTISTID"
	TagMusicBrainzArtistID      = "MUSICBRAINZ_ARTISTID"
)

// Value is a response value: either text or an integer.
//
// The zero Value is the empty text.
type Value struct {
	text    string
	number  int
	numeric bool
}

// Text builds a text [Value].
func Text(s string) Value { return Value{text: s} }

// Number builds an integer [Value].
func Number(n int) Value { return Value{number: n, numeric: true} }

// IsNumber reports whether v holds an integer.
func (v Value) IsNumber() bool { return v.numeric }

// Int returns the integer held by v and whether v is numeric.
func (v Value) Int() (int, bool) { return v.number, v.numeric }

// String renders v the way it appears after "Tag: " on the wire.
func (v Value) String() string {
	if v.numeric {
		return strconv.Itoa(v.number)
	}
	return v.text
}

// MarshalJSON encodes numbers as JSON numbers and text as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return json.Marshal(v.number)
	}
	return json.Marshal(v.text)
}

// Pair is one "Tag: value" line of a response.
type Pair struct {
	Tag   string `json:"tag"`
	Value Value  `json:"value"`
}

// String renders the pair as a protocol line without the terminator.
func (p Pair) String() string { return p.Tag + ": " + p.Value.String() }

// Pairs is an ordered response. Order is significant on the wire.
type Pairs []Pair

// Lookup returns the first value stored under tag.
func (ps Pairs) Lookup(tag string) (Value, bool) {
	for _, p := range ps {
		if p.Tag == tag {
			return p.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether tag is present.
func (ps Pairs) Has(tag string) bool {
	_, ok := ps.Lookup(tag)
	return ok
}

// Contains reports whether the exact tag/value pair is present.
func (ps Pairs) Contains(p Pair) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

// Tags returns the tags in emission order.
func (ps Pairs) Tags() []string {
	tags := make([]string, len(ps))
	for i, p := range ps {
		tags[i] = p.Tag
	}
	return tags
}

// Lines renders the response as newline separated "Tag: value" lines, without a trailing newline.
func (ps Pairs) Lines() string {
	lines := make([]string, len(ps))
	for i, p := range ps {
		lines[i] = p.String()
	}
	return strings.Join(lines, "\n")
}

// Attrs converts the response to the [mpd.Attrs] map used by MPD client code.
//
// Ordering is lost. If a tag repeats, the first value wins.
func (ps Pairs) Attrs() mpd.Attrs {
	attrs := make(mpd.Attrs, len(ps))
	for _, p := range ps {
		if _, ok := attrs[p.Tag]; ok {
			continue
		}
		attrs[p.Tag] = p.Value.String()
	}
	return attrs
}
