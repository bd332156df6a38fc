package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mpdfmt/internal/library"
	"github.com/desertthunder/mpdfmt/internal/models"
	"github.com/desertthunder/mpdfmt/internal/translator"
	th "github.com/desertthunder/mpdfmt/internal/testing"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()

	lib, err := library.Decode([]byte(th.LibraryTOML))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	m := NewModel(lib)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(m.Init()())
	return m
}

func press(m *Model, k tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(k)
	return cmd
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	quit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func TestModel(t *testing.T) {
	t.Run("Init loads playlists", func(t *testing.T) {
		m := newTestModel(t)

		if m.view != PlaylistListView {
			t.Errorf("expected PlaylistListView, got %v", m.view)
		}
		if len(m.playlists) != 2 {
			t.Fatalf("expected 2 playlists, got %d", len(m.playlists))
		}
		if got := len(m.playlistList.Items()); got != 2 {
			t.Errorf("expected 2 list items, got %d", got)
		}
		if !strings.Contains(m.View(), "Favourites") {
			t.Error("expected playlist name in view")
		}
	})

	t.Run("enter translates the selected playlist", func(t *testing.T) {
		m := newTestModel(t)

		cmd := press(m, enter)
		if cmd == nil {
			t.Fatal("expected translate command")
		}
		m.Update(cmd())

		if m.view != TrackListView {
			t.Fatalf("expected TrackListView, got %v", m.view)
		}
		if m.selected == nil || m.selected.Name != "Favourites" {
			t.Fatalf("unexpected selection %+v", m.selected)
		}
		if len(m.responses) != 3 {
			t.Fatalf("expected 3 responses, got %d", len(m.responses))
		}
		if !m.responses[0].Contains(translator.Pair{Tag: translator.TagTitle, Value: translator.Text("When I Kissed the Teacher")}) {
			t.Errorf("unexpected first response %v", m.responses[0])
		}
	})

	t.Run("enter on a track opens its tags", func(t *testing.T) {
		m := newTestModel(t)
		m.Update(press(m, enter)())
		press(m, enter)

		if m.view != TagView {
			t.Fatalf("expected TagView, got %v", m.view)
		}
		if m.current == nil || m.current.position != 1 {
			t.Fatalf("unexpected current track %+v", m.current)
		}

		view := m.View()
		for _, want := range []string{"When I Kissed the Teacher", "local:track:abba/arrival/01.mp3", "Arrival"} {
			if !strings.Contains(view, want) {
				t.Errorf("expected %q in tag view", want)
			}
		}
	})

	t.Run("esc walks back", func(t *testing.T) {
		m := newTestModel(t)
		m.Update(press(m, enter)())
		press(m, enter)

		press(m, esc)
		if m.view != TrackListView {
			t.Errorf("expected TrackListView, got %v", m.view)
		}
		if m.current != nil {
			t.Error("expected current track to be cleared")
		}

		press(m, esc)
		if m.view != PlaylistListView {
			t.Errorf("expected PlaylistListView, got %v", m.view)
		}
		if m.selected != nil || m.responses != nil {
			t.Error("expected selection to be cleared")
		}
	})

	t.Run("q quits from every view", func(t *testing.T) {
		m := newTestModel(t)

		for _, setup := range []func(){
			func() {},
			func() { m.Update(press(m, enter)()) },
			func() { press(m, enter) },
		} {
			setup()
			cmd := press(m, quit)
			if cmd == nil {
				t.Fatalf("expected quit command in view %v", m.view)
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("expected tea.QuitMsg in view %v", m.view)
			}
		}
	})

	t.Run("missing source renders an error", func(t *testing.T) {
		m := NewModel(nil)
		m.Update(m.Init()())

		if m.err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(m.View(), "library not found") {
			t.Errorf("unexpected view %q", m.View())
		}
	})
}

func TestItems(t *testing.T) {
	t.Run("playlistItem", func(t *testing.T) {
		item := playlistItem{playlist: models.Playlist{
			URI:    "m3u:mix.m3u",
			Name:   "Mix",
			Tracks: []models.Track{{URI: "a"}, {URI: "b"}},
		}}

		if item.Title() != "Mix" || item.FilterValue() != "Mix" {
			t.Errorf("unexpected title %q", item.Title())
		}
		if item.Description() != "2 tracks • m3u:mix.m3u" {
			t.Errorf("unexpected description %q", item.Description())
		}
	})

	t.Run("trackItem falls back to file", func(t *testing.T) {
		response := translator.TrackToMPDFormat(models.Track{URI: "http://radio.example.com/stream"}, translator.Options{})
		item := trackItem{position: 4, response: response}

		if item.Title() != "4. http://radio.example.com/stream" {
			t.Errorf("unexpected title %q", item.Title())
		}
		if item.Description() != "" {
			t.Errorf("expected empty description, got %q", item.Description())
		}
	})

	t.Run("trackItem shows artist and album", func(t *testing.T) {
		track := models.Track{
			URI:     "local:track:a.mp3",
			Name:    "Song",
			Artists: []models.Artist{{Name: "Band"}},
			Album:   &models.Album{Name: "Record"},
		}
		item := trackItem{position: 1, response: translator.TrackToMPDFormat(track, translator.Options{})}

		if item.Title() != "1. Song" {
			t.Errorf("unexpected title %q", item.Title())
		}
		if item.Description() != "Band • Record" {
			t.Errorf("unexpected description %q", item.Description())
		}
	})
}
