package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/mpdfmt/internal/formatter"
	"github.com/desertthunder/mpdfmt/internal/library"
	"github.com/desertthunder/mpdfmt/internal/shared"
	"github.com/desertthunder/mpdfmt/internal/tasks"
	"github.com/desertthunder/mpdfmt/internal/translator"
	"github.com/urfave/cli/v3"
)

// Export writes translated playlists to disk in --format, falling back to output.format from the config.
//
// --name exports a single playlist; --all exports the whole library through the bulk export engine.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	all := cmd.Bool("all")
	name := cmd.String("name")
	if !all && name == "" {
		return fmt.Errorf("%w: either --name or --all must be provided", shared.ErrMissingArgument)
	}
	if all && name != "" {
		return fmt.Errorf("%w: cannot specify both --name and --all", shared.ErrInvalidArgument)
	}

	lib, err := r.loadLibrary(cmd)
	if err != nil {
		return err
	}

	formatName := cmd.String("format")
	if formatName == "" {
		formatName = r.config.Output.Format
	}
	format, err := formatter.ParseFormat(formatName)
	if err != nil {
		return err
	}

	if all {
		return r.exportAll(ctx, cmd, lib, format)
	}

	playlist, err := lib.Playlist(name)
	if err != nil {
		return err
	}

	export := &formatter.Export{
		Title:     playlist.Name,
		Responses: translator.PlaylistToMPDFormat(playlist, translator.All),
	}

	path, err := formatter.WriteExport(export, format, cmd.String("output"))
	if err != nil {
		return err
	}

	r.logger.Info("exported playlist", "name", playlist.Name, "format", format, "path", path)
	return r.writeLines(
		fmt.Sprintf("✓ Exported %d responses from '%s'", len(export.Responses), playlist.Name),
		fmt.Sprintf("File saved to: %s", path),
	)
}

func (r *Runner) exportAll(ctx context.Context, cmd *cli.Command, lib *library.Library, format formatter.Format) error {
	playlists := lib.Playlists()
	r.logger.Info("starting bulk export", "playlists", len(playlists), "format", format)

	// progress is logged; output carries only the summary
	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			r.logger.Info(update.Message, "phase", update.Phase)
		}
	}()

	engine := tasks.NewExportEngine(nil, r.clock)
	result, err := engine.BulkExport(ctx, progressCh, playlists, tasks.BulkExportOpts{
		Format:     format,
		OutputDir:  cmd.String("output-dir"),
		NumWorkers: int(cmd.Int("workers")),
		RateLimit:  cmd.Float("rate"),
	})
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	lines := []string{
		"═══════════════════════════════════════",
		"Bulk Export Complete!",
		"═══════════════════════════════════════",
		fmt.Sprintf("Exported: %d/%d playlists", result.SuccessfulExports, result.TotalPlaylists),
		fmt.Sprintf("Directory: %s", result.OutputDirectory),
		fmt.Sprintf("Manifest: %s", result.ManifestPath),
	}

	if result.FailedExports > 0 {
		lines = append(lines, fmt.Sprintf("\nFailed to export %d playlists:", result.FailedExports))
		for _, res := range result.Results {
			if !res.Success {
				lines = append(lines, fmt.Sprintf("  • %s: %v", res.PlaylistName, res.Error))
			}
		}
	}

	return r.writeLines(lines...)
}
