package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mpdfmt/internal/models"
	"github.com/desertthunder/mpdfmt/internal/shared"
	"github.com/desertthunder/mpdfmt/internal/translator"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PlaylistListView ViewState = iota
	TrackListView
	TagView
)

// Source provides the playlists the browser starts from.
//
// [library.Library] satisfies it.
type Source interface {
	Playlists() []models.Playlist
}

// Model represents the TUI application state.
type Model struct {
	source       Source
	view         ViewState
	width        int
	height       int
	playlistList list.Model
	playlists    []models.Playlist
	trackList    list.Model
	selected     *models.Playlist
	responses    []translator.Pairs
	tags         viewport.Model
	current      *trackItem
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates a new TUI model reading from source.
func NewModel(source Source) *Model {
	return &Model{
		source:       source,
		view:         PlaylistListView,
		playlistList: list.New(nil, list.NewDefaultDelegate(), 0, 0),
		trackList:    list.New(nil, list.NewDefaultDelegate(), 0, 0),
		tags:         viewport.New(0, 0),
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init loads the playlists from the source.
func (m *Model) Init() tea.Cmd {
	return m.loadPlaylists()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.playlistList.SetSize(msg.Width-4, msg.Height-8)
		m.trackList.SetSize(msg.Width-4, msg.Height-8)
		m.tags.Width = msg.Width - 4
		m.tags.Height = msg.Height - 8
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case TrackListView:
			return m.handleTrackListKeys(msg)
		case TagView:
			return m.handleTagKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateViews(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgPlaylistsLoaded:
		data := msg.data.(playlistsLoaded)
		if data.err != nil {
			m.err = data.err
			return m, nil
		}
		m.playlists = data.playlists
		items := make([]list.Item, len(data.playlists))
		for i, pl := range data.playlists {
			items[i] = playlistItem{playlist: pl}
		}
		m.playlistList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.playlistList.Title = "Playlists"
		m.resize(m.playlistList.SetSize)
		return m, nil

	case MsgPlaylistTranslated:
		data := msg.data.(playlistTranslated)
		m.selected = &data.playlist
		m.responses = data.responses
		items := make([]list.Item, len(data.responses))
		for i, response := range data.responses {
			items[i] = trackItem{position: i + 1, response: response}
		}
		m.trackList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.trackList.Title = fmt.Sprintf("Tracks in '%s'", data.playlist.Name)
		m.resize(m.trackList.SetSize)
		m.view = TrackListView
		return m, nil
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case PlaylistListView:
		return m.renderPlaylistList()
	case TrackListView:
		return m.renderTrackList()
	case TagView:
		return m.renderTags()
	default:
		return ""
	}
}

// resize applies the current window size, minus chrome, once one is known.
func (m *Model) resize(set func(w, h int)) {
	if m.width > 0 && m.height > 0 {
		set(m.width-4, m.height-8)
	}
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.enter):
		if pl, ok := m.playlistList.SelectedItem().(playlistItem); ok {
			return m, m.translatePlaylist(pl.playlist)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handleTrackListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = PlaylistListView
		m.selected = nil
		m.responses = nil
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.trackList.SelectedItem().(trackItem); ok {
			m.current = &item
			m.tags.SetContent(renderPairs(item.response))
			m.tags.GotoTop()
			m.view = TagView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

func (m *Model) handleTagKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = TrackListView
		m.current = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.tags, cmd = m.tags.Update(msg)
	return m, cmd
}

func (m *Model) updateViews(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case TrackListView:
		m.trackList, cmd = m.trackList.Update(msg)
	case TagView:
		m.tags, cmd = m.tags.Update(msg)
	}
	return m, cmd
}

func (m *Model) loadPlaylists() tea.Cmd {
	return func() tea.Msg {
		if m.source == nil {
			return playlistsLoadedMsg(nil, shared.ErrMissingLibrary)
		}
		return playlistsLoadedMsg(m.source.Playlists(), nil)
	}
}

func (m *Model) translatePlaylist(pl models.Playlist) tea.Cmd {
	return func() tea.Msg {
		return playlistTranslatedMsg(pl, translator.PlaylistToMPDFormat(pl, translator.All))
	}
}

// renderPairs lays out a response one "tag: value" line at a time with the tag highlighted.
func renderPairs(response translator.Pairs) string {
	var b strings.Builder
	for i, p := range response {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.tag.Render(p.Tag + ":"))
		b.WriteString(" ")
		b.WriteString(p.Value.String())
	}
	return b.String()
}

func (m *Model) renderPlaylistList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.playlistList.View(), helpView)
}

func (m *Model) renderTrackList() string {
	inspectKey := key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "inspect"),
	)
	helpKeys := []key.Binding{inspectKey, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.trackList.View(), helpView)
}

func (m *Model) renderTags() string {
	heading := "Response"
	if m.current != nil {
		heading = m.current.Title()
	}
	title := styles.title.Render(heading)

	helpKeys := []key.Binding{m.keys.up, m.keys.down, m.keys.back, m.keys.quit}
	helpView := styles.help.Render(m.help.ShortHelpView(helpKeys))

	return fmt.Sprintf("%s\n%s\n\n%s", title, m.tags.View(), helpView)
}
