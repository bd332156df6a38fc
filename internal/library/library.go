// package library decodes library documents into [models] entities.
//
// A library document is TOML. Artists and albums carry a local id so that albums and tracks can refer to them;
// playlists refer to tracks by URI:
//
//	[[artists]]
//	id = "abba"
//	name = "ABBA"
//
//	[[albums]]
//	id = "arrival"
//	name = "Arrival"
//	num_tracks = 10
//	artists = ["abba"]
//
//	[[tracks]]
//	uri = "local:track:abba/arrival/01.mp3"
//	name = "When I Kissed the Teacher"
//	artists = ["abba"]
//	album = "arrival"
//	track_no = 1
//
//	[[playlists]]
//	name = "Favourites"
//	tracks = ["local:track:abba/arrival/01.mp3"]
//
// Every reference is resolved while decoding, so a [Library] only ever holds fully-populated entities.
package library

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/mpdfmt/internal/models"
	"github.com/desertthunder/mpdfmt/internal/shared"
)

type artistEntry struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	MusicBrainzID string `toml:"musicbrainz_id"`
}

type albumEntry struct {
	ID            string   `toml:"id"`
	Name          string   `toml:"name"`
	NumTracks     *int     `toml:"num_tracks"`
	Artists       []string `toml:"artists"`
	MusicBrainzID string   `toml:"musicbrainz_id"`
}

type trackEntry struct {
	URI           string   `toml:"uri"`
	Name          string   `toml:"name"`
	Artists       []string `toml:"artists"`
	Album         string   `toml:"album"`
	TrackNo       *int     `toml:"track_no"`
	Composers     []string `toml:"composers"`
	Performers    []string `toml:"performers"`
	Genre         string   `toml:"genre"`
	Date          string   `toml:"date"`
	DiscNo        *int     `toml:"disc_no"`
	Comment       string   `toml:"comment"`
	Length        *int     `toml:"length"`
	LastModified  *int64   `toml:"last_modified"`
	MusicBrainzID string   `toml:"musicbrainz_id"`
}

type playlistEntry struct {
	URI    string   `toml:"uri"`
	Name   string   `toml:"name"`
	Tracks []string `toml:"tracks"`
}

type document struct {
	Artists   []artistEntry   `toml:"artists"`
	Albums    []albumEntry    `toml:"albums"`
	Tracks    []trackEntry    `toml:"tracks"`
	Playlists []playlistEntry `toml:"playlists"`
}

// Library is an immutable, fully resolved set of tracks and playlists.
// Every entity handed out is a deep copy, so callers may modify what they receive.
type Library struct {
	tracks    []models.Track
	byURI     map[string]int
	playlists []models.Playlist
	byName    map[string]int
}

// Load reads and decodes the library document at path.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", shared.ErrMissingLibrary, path, err)
	}
	return Decode(data)
}

// Decode parses a library document and resolves all references.
//
// Unknown keys are rejected so that typos in field names surface instead of silently dropping tags.
func Decode(data []byte) (*Library, error) {
	var doc document
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrInvalidLibrary, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", shared.ErrInvalidLibrary, strings.Join(keys, ", "))
	}

	return doc.resolve()
}

func (doc document) resolve() (*Library, error) {
	artists := make(map[string]models.Artist, len(doc.Artists))
	for _, a := range doc.Artists {
		if a.ID == "" {
			return nil, fmt.Errorf("%w: artist %q has no id", shared.ErrInvalidLibrary, a.Name)
		}
		if _, ok := artists[a.ID]; ok {
			return nil, fmt.Errorf("%w: artist %s", shared.ErrDuplicateEntry, a.ID)
		}
		artists[a.ID] = models.Artist{Name: a.Name, MusicBrainzID: a.MusicBrainzID}
	}

	lookupArtists := func(owner string, ids []string) ([]models.Artist, error) {
		if len(ids) == 0 {
			return nil, nil
		}
		out := make([]models.Artist, len(ids))
		for i, id := range ids {
			a, ok := artists[id]
			if !ok {
				return nil, fmt.Errorf("%w: artist %s referenced by %s", shared.ErrUnknownReference, id, owner)
			}
			out[i] = a
		}
		return out, nil
	}

	albums := make(map[string]*models.Album, len(doc.Albums))
	for _, a := range doc.Albums {
		if a.ID == "" {
			return nil, fmt.Errorf("%w: album %q has no id", shared.ErrInvalidLibrary, a.Name)
		}
		if _, ok := albums[a.ID]; ok {
			return nil, fmt.Errorf("%w: album %s", shared.ErrDuplicateEntry, a.ID)
		}
		albumArtists, err := lookupArtists("album "+a.ID, a.Artists)
		if err != nil {
			return nil, err
		}
		albums[a.ID] = &models.Album{
			Name:          a.Name,
			NumTracks:     a.NumTracks,
			Artists:       albumArtists,
			MusicBrainzID: a.MusicBrainzID,
		}
	}

	lib := &Library{
		tracks:    make([]models.Track, 0, len(doc.Tracks)),
		byURI:     make(map[string]int, len(doc.Tracks)),
		playlists: make([]models.Playlist, 0, len(doc.Playlists)),
		byName:    make(map[string]int, len(doc.Playlists)),
	}

	for _, t := range doc.Tracks {
		if _, ok := lib.byURI[t.URI]; ok {
			return nil, fmt.Errorf("%w: track %s", shared.ErrDuplicateEntry, t.URI)
		}

		owner := "track " + t.URI
		track := models.Track{
			URI:           t.URI,
			Name:          t.Name,
			TrackNo:       t.TrackNo,
			Genre:         t.Genre,
			Date:          t.Date,
			DiscNo:        t.DiscNo,
			Comment:       t.Comment,
			Length:        t.Length,
			LastModified:  t.LastModified,
			MusicBrainzID: t.MusicBrainzID,
		}

		var err error
		if track.Artists, err = lookupArtists(owner, t.Artists); err != nil {
			return nil, err
		}
		if track.Composers, err = lookupArtists(owner, t.Composers); err != nil {
			return nil, err
		}
		if track.Performers, err = lookupArtists(owner, t.Performers); err != nil {
			return nil, err
		}
		if t.Album != "" {
			album, ok := albums[t.Album]
			if !ok {
				return nil, fmt.Errorf("%w: album %s referenced by %s", shared.ErrUnknownReference, t.Album, owner)
			}
			track.Album = album
		}

		lib.byURI[t.URI] = len(lib.tracks)
		lib.tracks = append(lib.tracks, track.Clone())
	}

	for _, p := range doc.Playlists {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: playlist %q has no name", shared.ErrInvalidLibrary, p.URI)
		}
		if _, ok := lib.byName[p.Name]; ok {
			return nil, fmt.Errorf("%w: playlist %s", shared.ErrDuplicateEntry, p.Name)
		}

		playlist := models.Playlist{URI: p.URI, Name: p.Name, Tracks: make([]models.Track, len(p.Tracks))}
		for i, uri := range p.Tracks {
			idx, ok := lib.byURI[uri]
			if !ok {
				return nil, fmt.Errorf("%w: track %s referenced by playlist %s", shared.ErrUnknownReference, uri, p.Name)
			}
			playlist.Tracks[i] = lib.tracks[idx].Clone()
		}

		lib.byName[p.Name] = len(lib.playlists)
		lib.playlists = append(lib.playlists, playlist)
	}

	return lib, nil
}

// Tracks returns every track in document order.
func (l *Library) Tracks() []models.Track {
	out := make([]models.Track, len(l.tracks))
	for i, t := range l.tracks {
		out[i] = t.Clone()
	}
	return out
}

// Track looks a track up by URI.
func (l *Library) Track(uri string) (models.Track, error) {
	idx, ok := l.byURI[uri]
	if !ok {
		return models.Track{}, fmt.Errorf("%w: %s", shared.ErrTrackNotFound, uri)
	}
	return l.tracks[idx].Clone(), nil
}

// Playlists returns every playlist in document order.
func (l *Library) Playlists() []models.Playlist {
	out := make([]models.Playlist, len(l.playlists))
	for i, p := range l.playlists {
		out[i] = p.Clone()
	}
	return out
}

// Playlist looks a playlist up by name, falling back to its URI.
func (l *Library) Playlist(nameOrURI string) (models.Playlist, error) {
	if idx, ok := l.byName[nameOrURI]; ok {
		return l.playlists[idx].Clone(), nil
	}
	for _, p := range l.playlists {
		if p.URI != "" && p.URI == nameOrURI {
			return p.Clone(), nil
		}
	}
	return models.Playlist{}, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, nameOrURI)
}
