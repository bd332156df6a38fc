package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/mpdfmt/internal/models"
	"github.com/desertthunder/mpdfmt/internal/shared"
	"github.com/desertthunder/mpdfmt/internal/translator"
	"github.com/urfave/cli/v3"
)

// Track translates the track named by --uri.
//
// --tlid binds the track to the tracklist, which adds an Id tag; --position only surfaces alongside it.
func (r *Runner) Track(ctx context.Context, cmd *cli.Command) error {
	lib, err := r.loadLibrary(cmd)
	if err != nil {
		return err
	}

	uri := cmd.String("uri")
	track, err := lib.Track(uri)
	if err != nil {
		return err
	}

	var item models.Item = track
	if cmd.IsSet("tlid") {
		item = models.TlTrack{TLID: int(cmd.Int("tlid")), Track: track}
	}

	var opts translator.Options
	if cmd.IsSet("position") {
		opts.Position = models.Int(int(cmd.Int("position")))
	}
	if cmd.IsSet("stream-title") {
		opts.StreamTitle = models.String(cmd.String("stream-title"))
	}

	if opts.Position != nil && !cmd.IsSet("tlid") {
		r.logger.Warn("position ignored without a tracklist id", "position", *opts.Position)
	}

	r.logger.Debug("translating track", "uri", uri)
	return r.writeResponses(cmd, track.Name, []translator.Pairs{translator.TrackToMPDFormat(item, opts)})
}

// Playlist translates a stored playlist, optionally restricted to [--start, --end).
func (r *Runner) Playlist(ctx context.Context, cmd *cli.Command) error {
	lib, err := r.loadLibrary(cmd)
	if err != nil {
		return err
	}

	playlist, err := lib.Playlist(cmd.String("name"))
	if err != nil {
		return err
	}

	rng, err := rangeFlags(cmd)
	if err != nil {
		return err
	}

	responses := translator.PlaylistToMPDFormat(playlist, rng)
	r.logger.Info("translated playlist", "name", playlist.Name, "tracks", playlist.Len(), "responses", len(responses))
	return r.writeResponses(cmd, playlist.Name, responses)
}

// Tracklist queues a stored playlist with consecutive tracklist ids from --first-id and translates the entries.
func (r *Runner) Tracklist(ctx context.Context, cmd *cli.Command) error {
	lib, err := r.loadLibrary(cmd)
	if err != nil {
		return err
	}

	playlist, err := lib.Playlist(cmd.String("name"))
	if err != nil {
		return err
	}

	rng, err := rangeFlags(cmd)
	if err != nil {
		return err
	}

	tracklist := models.NewTracklist(playlist.Tracks, int(cmd.Int("first-id")))
	responses := translator.TracksToMPDFormat(tracklist, rng)
	r.logger.Info("translated tracklist", "name", playlist.Name, "entries", len(tracklist), "responses", len(responses))
	return r.writeResponses(cmd, playlist.Name, responses)
}

// TagCache renders every library track as a tag_cache document, to --output or the runner's output.
func (r *Runner) TagCache(ctx context.Context, cmd *cli.Command) error {
	lib, err := r.loadLibrary(cmd)
	if err != nil {
		return err
	}

	mediaDir := cmd.String("media-dir")
	if mediaDir == "" {
		mediaDir = r.config.Library.MediaDir
	}

	tracks := lib.Tracks()
	doc := translator.TagCache(tracks, translator.TagCacheOptions{MediaDir: mediaDir, Clock: r.clock})
	r.logger.Info("rendered tag cache", "tracks", len(tracks), "media_dir", mediaDir)

	if cmd.Bool("json") {
		return r.writeJSON(doc, cmd.Bool("pretty") || r.config.Output.Pretty)
	}

	text := translator.RenderTagCache(doc)
	if path := cmd.String("output"); path != "" {
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write tag cache: %w", err)
		}
		return r.writePlain("✓ Tag cache written to %s (%d songs)\n", path, len(tracks))
	}

	return r.writePlain("%s", text)
}

// rangeFlags reads --start and --end into a [translator.Range]. An unset --end runs to the end of the collection.
func rangeFlags(cmd *cli.Command) (translator.Range, error) {
	rng := translator.Range{Start: int(cmd.Int("start"))}
	if rng.Start < 0 {
		return rng, fmt.Errorf("%w: --start must not be negative", shared.ErrInvalidArgument)
	}

	if cmd.IsSet("end") {
		end := int(cmd.Int("end"))
		if end < rng.Start {
			return rng, fmt.Errorf("%w: --end %d precedes --start %d", shared.ErrInvalidArgument, end, rng.Start)
		}
		rng.End = &end
	}

	return rng, nil
}
