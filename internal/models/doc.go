// Package models defines the music-library entities translated into MPD responses.
//
// All entities are value objects. Once built they are never mutated; the With* helpers return modified copies.
//
//   - [Artist] : name and MusicBrainz id
//   - [Album] : name, track count, album artists and MusicBrainz id
//   - [Track] : a single song with its relations to artists, composers, performers and album
//   - [TlTrack] : a [Track] bound to a tracklist id (tlid) for the lifetime of a session
//   - [Playlist] : an ordered sequence of tracks
//
// Optional integers are pointers so that a legitimate zero (track 0, position 0) is never confused with "not set".
// Optional strings use the empty string as "not set".
//
// [Item] is the closed variant over [Track] and [TlTrack] accepted by the translator.
package models
