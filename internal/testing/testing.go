// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// LibraryTOML is a small library document used across package tests.
//
// It holds three tracks on one album, a stream without album, and two playlists.
const LibraryTOML = `
[[artists]]
id = "abba"
name = "ABBA"
musicbrainz_id = "d87e52c5-bb8d-4da8-b941-9f4928627dc8"

[[artists]]
id = "beatles"
name = "Beatles"

[[artists]]
id = "andersson"
name = "Benny Andersson"

[[artists]]
id = "faltskog"
name = "Agnetha Fältskog"

[[albums]]
id = "arrival"
name = "Arrival"
num_tracks = 10
artists = ["abba"]
musicbrainz_id = "8a5dbc4c-8b3e-4fa3-b0a6-c1f9a5a0e8e1"

[[tracks]]
uri = "local:track:abba/arrival/01.mp3"
name = "When I Kissed the Teacher"
artists = ["abba"]
album = "arrival"
track_no = 1
composers = ["andersson"]
performers = ["faltskog", "abba"]
genre = "Pop"
date = "1976-10-11"
disc_no = 1
length = 181000
comment = "never shown"

[[tracks]]
uri = "local:track:abba/arrival/02.mp3"
name = "Dancing Queen"
artists = ["abba", "beatles"]
album = "arrival"
track_no = 2
length = 230500

[[tracks]]
uri = "local:track:abba/arrival/03.mp3"
name = "My Love, My Life"
artists = ["abba"]
album = "arrival"
track_no = 3
last_modified = 1234567000

[[tracks]]
uri = "http://radio.example.com/stream"
name = "Example Radio"

[[playlists]]
uri = "m3u:favourites.m3u"
name = "Favourites"
tracks = [
  "local:track:abba/arrival/01.mp3",
  "local:track:abba/arrival/02.mp3",
  "local:track:abba/arrival/03.mp3",
]

[[playlists]]
name = "Radio"
tracks = ["http://radio.example.com/stream"]
`

// WriteLibrary writes [LibraryTOML] into a temporary directory and returns its path.
func WriteLibrary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.toml")
	if err := os.WriteFile(path, []byte(LibraryTOML), 0644); err != nil {
		t.Fatalf("Failed to write library fixture: %v", err)
	}
	return path
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
