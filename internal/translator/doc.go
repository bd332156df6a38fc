// Package translator turns library entities into MPD response pairs.
//
// # Core Operations
//
//  1. [TrackToMPDFormat] : one track (bare or tracklist-bound) to an ordered list of tag/value [Pair]s
//  2. [ConcatMultiValues] : flatten one attribute of many related entities into a single ";" separated value
//  3. [PlaylistToMPDFormat] : one response per playlist track, optionally restricted to a [Range]
//  4. [TracksToMPDFormat] : one response per tracklist entry, with Pos and Id attached
//  5. [TagCache] : a whole library rendered as an MPD tag_cache document
//
// Every operation is pure: inputs are never mutated and no state is shared, so all of them are safe for concurrent use.
// The only capability that reaches outside the arguments is the [Clock] injected into [TagCache].
//
// # Output
//
// A response is [Pairs], an ordered slice. Values are either text or integers ([Value]).
// Serializing to the wire is left to the caller; [Pairs.Lines] and [Pairs.Attrs] cover the common cases.
package translator
