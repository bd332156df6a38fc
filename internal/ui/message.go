package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mpdfmt/internal/models"
	"github.com/desertthunder/mpdfmt/internal/translator"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgPlaylistsLoaded MsgKind = iota
	MsgPlaylistTranslated
)

type playlistsLoaded struct {
	playlists []models.Playlist
	err       error
}

type playlistTranslated struct {
	playlist  models.Playlist
	responses []translator.Pairs
}

// playlistsLoadedMsg is the constructor for [MsgPlaylistsLoaded]
func playlistsLoadedMsg(playlists []models.Playlist, err error) Msg {
	return Msg{kind: MsgPlaylistsLoaded, data: playlistsLoaded{playlists, err}}
}

// playlistTranslatedMsg is the constructor for [MsgPlaylistTranslated]
func playlistTranslatedMsg(playlist models.Playlist, responses []translator.Pairs) Msg {
	return Msg{kind: MsgPlaylistTranslated, data: playlistTranslated{playlist, responses}}
}
