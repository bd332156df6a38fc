package translator

import (
	"fmt"
	"strings"

	"github.com/desertthunder/mpdfmt/internal/models"
)

// MultiValueSeparator joins the values of one-to-many relations.
const MultiValueSeparator = ";"

// Options carries the optional session parameters of [TrackToMPDFormat].
//
// A nil field means "not supplied". Zero values are real values: Position 0 is the head of the tracklist.
type Options struct {
	Position    *int    // index in the tracklist; emitted as Pos only for a [models.TlTrack]
	StreamTitle *string // overrides Title; the track name then moves to Name
}

// Range selects the half-open slice [Start, End) of a collection. A nil End means "to the end".
type Range struct {
	Start int
	End   *int
}

// All selects an entire collection.
var All = Range{}

// bounds clamps r to a collection of length n.
func (r Range) bounds(n int) (int, int) {
	start := min(max(r.Start, 0), n)
	end := n
	if r.End != nil {
		end = min(max(*r.End, start), n)
	}
	return start, end
}

// ArtistName is the accessor for [models.Artist.Name].
func ArtistName(a models.Artist) string { return a.Name }

// ArtistMusicBrainzID is the accessor for [models.Artist.MusicBrainzID].
func ArtistMusicBrainzID(a models.Artist) string { return a.MusicBrainzID }

// ConcatMultiValues extracts one attribute from each entity, in order, and joins the results with ";".
//
// Entities lacking the attribute contribute an empty string; nothing is trimmed or deduplicated.
func ConcatMultiValues[T any](entities []T, attr func(T) string) string {
	values := make([]string, len(entities))
	for i, e := range entities {
		values[i] = attr(e)
	}
	return strings.Join(values, MultiValueSeparator)
}

// anyValue reports whether at least one entity has a non-empty attribute.
func anyValue[T any](entities []T, attr func(T) string) bool {
	for _, e := range entities {
		if attr(e) != "" {
			return true
		}
	}
	return false
}

// TrackToMPDFormat maps a track, or a tracklist-bound track, to its MPD response.
//
// The comment field is never emitted. Pos requires both a position and a tracklist id; Id requires only the latter.
func TrackToMPDFormat(item models.Item, opts Options) Pairs {
	track, tlid := item.Unwrap()

	result := make(Pairs, 0, 19)
	result = append(result,
		Pair{TagFile, Text(track.URI)},
		Pair{TagTime, Number(seconds(track.Length))},
		Pair{TagArtist, Text(ConcatMultiValues(track.Artists, ArtistName))},
	)

	if opts.StreamTitle != nil {
		result = append(result, Pair{TagTitle, Text(*opts.StreamTitle)})
		if track.Name != "" {
			result = append(result, Pair{TagName, Text(track.Name)})
		}
	} else {
		result = append(result, Pair{TagTitle, Text(track.Name)})
	}

	albumName := ""
	if track.Album != nil {
		albumName = track.Album.Name
	}
	result = append(result, Pair{TagAlbum, Text(albumName)})

	if track.Album != nil {
		result = append(result, Pair{TagAlbumArtist, Text(ConcatMultiValues(track.Album.Artists, ArtistName))})
	}
	if len(track.Composers) > 0 {
		result = append(result, Pair{TagComposer, Text(ConcatMultiValues(track.Composers, ArtistName))})
	}
	if len(track.Performers) > 0 {
		result = append(result, Pair{TagPerformer, Text(ConcatMultiValues(track.Performers, ArtistName))})
	}
	if track.Genre != "" {
		result = append(result, Pair{TagGenre, Text(track.Genre)})
	}

	result = append(result, Pair{TagTrack, trackNumber(track)})

	if track.Date != "" {
		result = append(result, Pair{TagDate, Text(track.Date)})
	}
	if track.DiscNo != nil {
		result = append(result, Pair{TagDisc, Number(*track.DiscNo)})
	}

	if tlid != nil {
		if opts.Position != nil {
			result = append(result, Pair{TagPos, Number(*opts.Position)})
		}
		result = append(result, Pair{TagID, Number(*tlid)})
	}

	if track.MusicBrainzID != "" {
		result = append(result, Pair{TagMusicBrainzTrackID, Text(track.MusicBrainzID)})
	}
	if track.Album != nil {
		if track.Album.MusicBrainzID != "" {
			result = append(result, Pair{TagMusicBrainzAlbumID, Text(track.Album.MusicBrainzID)})
		}
		if anyValue(track.Album.Artists, ArtistMusicBrainzID) {
			ids := ConcatMultiValues(track.Album.Artists, ArtistMusicBrainzID)
			result = append(result, Pair{TagMusicBrainzAlbumArtistID, Text(ids)})
		}
	}
	if anyValue(track.Artists, ArtistMusicBrainzID) {
		result = append(result, Pair{TagMusicBrainzArtistID, Text(ConcatMultiValues(track.Artists, ArtistMusicBrainzID))})
	}

	return result
}

// PlaylistToMPDFormat translates the tracks of playlist selected by r, one response per track.
//
// Each track is given its absolute 1-based index in the full playlist as position, whatever the range.
func PlaylistToMPDFormat(playlist models.Playlist, r Range) []Pairs {
	start, end := r.bounds(len(playlist.Tracks))
	result := make([]Pairs, 0, end-start)
	for i := start; i < end; i++ {
		result = append(result, TrackToMPDFormat(playlist.Tracks[i], Options{Position: models.Int(i + 1)}))
	}
	return result
}

// TracksToMPDFormat translates the tracklist entries selected by r.
//
// Pos is the absolute 0-based index of each entry in the full tracklist, as MPD's playlistinfo reports it.
func TracksToMPDFormat(tracks []models.TlTrack, r Range) []Pairs {
	start, end := r.bounds(len(tracks))
	result := make([]Pairs, 0, end-start)
	for i := start; i < end; i++ {
		result = append(result, TrackToMPDFormat(tracks[i], Options{Position: models.Int(i)}))
	}
	return result
}

// seconds converts a length in milliseconds to whole seconds. Absent or negative lengths are 0.
func seconds(length *int) int {
	if length == nil || *length < 0 {
		return 0
	}
	return *length / 1000
}

// trackNumber renders "n/total" when the album knows its size, otherwise the bare number.
func trackNumber(track models.Track) Value {
	n := 0
	if track.TrackNo != nil {
		n = *track.TrackNo
	}
	if track.Album != nil && track.Album.NumTracks != nil {
		return Text(fmt.Sprintf("%d/%d", n, *track.Album.NumTracks))
	}
	return Number(n)
}
