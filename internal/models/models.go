// package models defines the data model for the MPD response translator
package models

// Artist is a performer, composer or album artist.
type Artist struct {
	Name          string `toml:"name" json:"name,omitempty"`
	MusicBrainzID string `toml:"musicbrainz_id" json:"musicbrainz_id,omitempty"`
}

// Album groups tracks released together.
type Album struct {
	Name          string   `json:"name,omitempty"`
	NumTracks     *int     `json:"num_tracks,omitempty"` // total tracks on the release
	Artists       []Artist `json:"artists,omitempty"`
	MusicBrainzID string   `json:"musicbrainz_id,omitempty"`
}

// Track is a single playable song.
//
// Comment is carried for completeness but is never part of an MPD response.
type Track struct {
	URI           string   `json:"uri"`
	Name          string   `json:"name,omitempty"`
	Artists       []Artist `json:"artists,omitempty"`
	Album         *Album   `json:"album,omitempty"`
	TrackNo       *int     `json:"track_no,omitempty"`
	Composers     []Artist `json:"composers,omitempty"`
	Performers    []Artist `json:"performers,omitempty"`
	Genre         string   `json:"genre,omitempty"`
	Date          string   `json:"date,omitempty"`
	DiscNo        *int     `json:"disc_no,omitempty"`
	Comment       string   `json:"comment,omitempty"`
	Length        *int     `json:"length,omitempty"`        // milliseconds
	LastModified  *int64   `json:"last_modified,omitempty"` // milliseconds since the epoch
	MusicBrainzID string   `json:"musicbrainz_id,omitempty"`
}

// TlTrack binds a [Track] to the tracklist id it was given when queued.
type TlTrack struct {
	TLID  int   `json:"tlid"`
	Track Track `json:"track"`
}

// Playlist is an ordered list of tracks. Order is significant.
type Playlist struct {
	URI    string  `json:"uri,omitempty"`
	Name   string  `json:"name"`
	Tracks []Track `json:"tracks"`
}

// Item is either a bare [Track] or a [TlTrack].
//
// Unwrap returns the underlying track and, for a [TlTrack], its tlid.
type Item interface {
	Unwrap() (Track, *int)
}

var (
	_ Item = Track{}
	_ Item = TlTrack{}
)

// Unwrap implements [Item]. A bare track has no tlid.
func (t Track) Unwrap() (Track, *int) { return t, nil }

// Unwrap implements [Item].
func (t TlTrack) Unwrap() (Track, *int) {
	id := t.TLID
	return t.Track, &id
}

// Int returns a pointer to v for populating optional integer fields.
func Int(v int) *int { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// NewTracklist binds consecutive tlids, starting at firstID, to tracks in order.
func NewTracklist(tracks []Track, firstID int) []TlTrack {
	tl := make([]TlTrack, len(tracks))
	for i, track := range tracks {
		tl[i] = TlTrack{TLID: firstID + i, Track: track}
	}
	return tl
}

// Len returns the number of tracks in the playlist.
func (p Playlist) Len() int { return len(p.Tracks) }
