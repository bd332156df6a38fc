package translator

import (
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/desertthunder/mpdfmt/internal/models"
)

// Clock supplies the current time. It is injected wherever output depends on "now".
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to [Clock].
type ClockFunc func() time.Time

// Now implements [Clock].
func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

const (
	// DefaultTagCacheVersion is the mpd_version written to the tag cache header.
	DefaultTagCacheVersion = "0.14.2"

	localTrackPrefix = "local:track:"
	fileURIPrefix    = "file://"
)

// TagCacheOptions configures [TagCache].
type TagCacheOptions struct {
	MediaDir string // file URIs under this directory are written relative to it
	Version  string // defaults to [DefaultTagCacheVersion]
	Clock    Clock  // fallback mtime source; defaults to [SystemClock]
}

// TagCache renders tracks as an MPD tag_cache document.
//
// Each song entry carries a key (the file's base name), the file path relative to the media directory,
// the track's response tags and an mtime. The mtime is the track's last-modified time when known,
// otherwise the injected clock's current time.
func TagCache(tracks []models.Track, opts TagCacheOptions) Pairs {
	if opts.Version == "" {
		opts.Version = DefaultTagCacheVersion
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}

	result := Pairs{
		{"info_begin", Text("")},
		{"mpd_version", Text(opts.Version)},
		{"fs_charset", Text("UTF-8")},
		{"info_end", Text("")},
		{"songList begin", Text("")},
	}

	for _, track := range tracks {
		relative := RelativePath(track.URI, opts.MediaDir)
		result = append(result,
			Pair{"key", Text(path.Base(relative))},
			Pair{TagFile, Text(relative)},
		)
		for _, p := range TrackToMPDFormat(track, Options{}) {
			if p.Tag == TagFile {
				continue
			}
			result = append(result, p)
		}
		result = append(result, Pair{"mtime", Number(mtime(track, opts.Clock))})
	}

	return append(result, Pair{"songList end", Text("")})
}

// RelativePath converts a track URI to a path relative to mediaDir.
//
// Both local:track: and file:// URIs are understood; anything else is returned unchanged.
func RelativePath(uri, mediaDir string) string {
	switch {
	case strings.HasPrefix(uri, localTrackPrefix):
		p := strings.TrimPrefix(uri, localTrackPrefix)
		if unescaped, err := url.PathUnescape(p); err == nil {
			p = unescaped
		}
		return strings.TrimPrefix(p, "/")
	case strings.HasPrefix(uri, fileURIPrefix):
		p := strings.TrimPrefix(uri, fileURIPrefix)
		if unescaped, err := url.PathUnescape(p); err == nil {
			p = unescaped
		}
		if mediaDir != "" {
			dir := strings.TrimSuffix(mediaDir, "/") + "/"
			p = strings.TrimPrefix(p, dir)
		}
		return p
	default:
		return uri
	}
}

func mtime(track models.Track, clock Clock) int {
	if track.LastModified != nil {
		return int(*track.LastModified / 1000)
	}
	return int(clock.Now().Unix())
}

// sectionMarkers are the tag cache lines written without a value.
var sectionMarkers = map[string]bool{
	"info_begin":     true,
	"info_end":       true,
	"songList begin": true,
	"songList end":   true,
}

// RenderTagCache writes a [TagCache] document as MPD stores it on disk: section markers stand alone,
// every other pair is a "key: value" line. The result ends with a newline.
func RenderTagCache(ps Pairs) string {
	var b strings.Builder
	for _, p := range ps {
		if sectionMarkers[p.Tag] {
			b.WriteString(p.Tag)
		} else {
			b.WriteString(p.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
