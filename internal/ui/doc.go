// Package ui implements an interactive terminal browser for translated MPD responses using bubbletea's Elm architecture.
//
// The TUI provides a three-step drill down:
//  1. [PlaylistListView] : Browse the playlists of the loaded library
//  2. [TrackListView] : Browse the tracks of the selected playlist
//  3. [TagView] : Inspect the MPD response of the selected track, tag by tag
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the [Msg] union type.
// Translation happens in a [tea.Cmd] so the event loop never blocks on it.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
