package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/mpdfmt/internal/models"
	"github.com/desertthunder/mpdfmt/internal/translator"
)

var (
	_ list.Item = playlistItem{}
	_ list.Item = trackItem{}
)

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	desc := fmt.Sprintf("%d tracks", i.playlist.Len())
	if i.playlist.URI != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.playlist.URI)
	}
	return desc
}

// trackItem is one translated playlist entry. It renders from the response, so the list shows exactly what MPD clients see.
type trackItem struct {
	position int
	response translator.Pairs
}

func (i trackItem) value(tag string) string {
	v, _ := i.response.Lookup(tag)
	return v.String()
}

func (i trackItem) FilterValue() string { return i.value(translator.TagTitle) }
func (i trackItem) Title() string {
	title := i.value(translator.TagTitle)
	if title == "" {
		title = i.value(translator.TagFile)
	}
	return fmt.Sprintf("%d. %s", i.position, title)
}
func (i trackItem) Description() string {
	desc := i.value(translator.TagArtist)
	if album := i.value(translator.TagAlbum); album != "" {
		desc = fmt.Sprintf("%s • %s", desc, album)
	}
	return desc
}
