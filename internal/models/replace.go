package models

import "slices"

// The With* helpers return modified copies. Slices are cloned so the copy never aliases the receiver.

// WithMusicBrainzID returns a copy of the artist with its MusicBrainz id replaced.
func (a Artist) WithMusicBrainzID(id string) Artist {
	a.MusicBrainzID = id
	return a
}

// WithArtists returns a copy of the album with its album artists replaced.
func (a Album) WithArtists(artists ...Artist) Album {
	a.Artists = slices.Clone(artists)
	return a
}

// WithMusicBrainzID returns a copy of the album with its MusicBrainz id replaced.
func (a Album) WithMusicBrainzID(id string) Album {
	a.MusicBrainzID = id
	return a
}

// WithName returns a copy of the track with its name replaced.
func (t Track) WithName(name string) Track {
	t = t.Clone()
	t.Name = name
	return t
}

// WithArtists returns a copy of the track with its artists replaced.
func (t Track) WithArtists(artists ...Artist) Track {
	t = t.Clone()
	t.Artists = slices.Clone(artists)
	return t
}

// WithAlbum returns a copy of the track pointing at a copy of album.
func (t Track) WithAlbum(album Album) Track {
	t = t.Clone()
	album.Artists = slices.Clone(album.Artists)
	t.Album = &album
	return t
}

// WithMusicBrainzID returns a copy of the track with its MusicBrainz id replaced.
func (t Track) WithMusicBrainzID(id string) Track {
	t = t.Clone()
	t.MusicBrainzID = id
	return t
}

// Clone returns a deep copy of the track. Nothing in the copy is shared with the receiver.
func (t Track) Clone() Track {
	t.Artists = slices.Clone(t.Artists)
	t.Composers = slices.Clone(t.Composers)
	t.Performers = slices.Clone(t.Performers)
	t.TrackNo = cloneInt(t.TrackNo)
	t.DiscNo = cloneInt(t.DiscNo)
	t.Length = cloneInt(t.Length)
	if t.LastModified != nil {
		t.LastModified = Int64(*t.LastModified)
	}
	if t.Album != nil {
		album := *t.Album
		album.Artists = slices.Clone(album.Artists)
		album.NumTracks = cloneInt(album.NumTracks)
		t.Album = &album
	}
	return t
}

// Clone returns a deep copy of the playlist.
func (p Playlist) Clone() Playlist {
	if p.Tracks == nil {
		return p
	}
	tracks := make([]Track, len(p.Tracks))
	for i, t := range p.Tracks {
		tracks[i] = t.Clone()
	}
	p.Tracks = tracks
	return p
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	return Int(*v)
}
