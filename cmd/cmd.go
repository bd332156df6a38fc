// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// globalFlags are shared by every command.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   "config.toml",
		},
		&cli.StringFlag{
			Name:    "library",
			Aliases: []string{"l"},
			Usage:   "Path to library document (overrides library.path)",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "attrs",
			Usage: "Output responses as the attribute maps an MPD client sees",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	}
}

// newApp builds the root command around r.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "mpdfmt",
		Usage:    "Translate library tracks and playlists to MPD protocol responses",
		Version:  "0.1.0",
		Flags:    globalFlags(),
		Before:   r.before,
		Commands: r.register(),
	}
}

// trackCommand translates a single track
func trackCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "track",
		Usage: "Translate one track to an MPD song response",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "uri",
				Aliases:  []string{"u"},
				Usage:    "Track URI",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "position",
				Usage: "Position in the current playlist (requires --tlid)",
			},
			&cli.IntFlag{
				Name:  "tlid",
				Usage: "Tracklist ID; binds the track to the tracklist",
			},
			&cli.StringFlag{
				Name:  "stream-title",
				Usage: "Title announced by the stream, replaces the track name",
			},
		},
		Action: r.Track,
	}
}

// playlistCommand translates a stored playlist
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"listplaylistinfo"},
		Usage:   "Translate a stored playlist, one response per track",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Usage:    "Playlist name or URI",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "start",
				Usage: "First index to translate (inclusive)",
			},
			&cli.IntFlag{
				Name:  "end",
				Usage: "Last index to translate (exclusive)",
			},
		},
		Action: r.Playlist,
	}
}

// tracklistCommand loads a playlist into a tracklist and translates it
func tracklistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tracklist",
		Aliases: []string{"playlistinfo"},
		Usage:   "Translate a playlist as if queued, with Pos and Id tags",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Usage:    "Playlist name or URI",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "first-id",
				Usage: "Tracklist ID of the first entry",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "start",
				Usage: "First index to translate (inclusive)",
			},
			&cli.IntFlag{
				Name:  "end",
				Usage: "Last index to translate (exclusive)",
			},
		},
		Action: r.Tracklist,
	}
}

// tagCacheCommand writes the library as an MPD tag cache
func tagCacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tagcache",
		Usage: "Render the whole library as an MPD tag_cache document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "media-dir",
				Usage: "Media directory file URIs are relative to (overrides library.media_dir)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path",
			},
		},
		Action: r.TagCache,
	}
}

// exportCommand writes a translated playlist to a file
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export translated playlists to files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Playlist name or URI",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Export every playlist in the library",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (mpd, json, csv, markdown); defaults to output.format",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: {playlist}.{ext})",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "Directory for --all exports (default: mpd_export_{epoch})",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Concurrent workers for --all",
				Value: 4,
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Playlists dispatched per second for --all (0 = unlimited)",
			},
		},
		Action: r.Export,
	}
}

// setupCommand handles setup operations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a config.toml from the bundled template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path (default: --config)",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI to browse playlists and their MPD responses",
		Action:  r.TUI,
	}
}
