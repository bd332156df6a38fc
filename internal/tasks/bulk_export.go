package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/desertthunder/mpdfmt/internal/formatter"
	"github.com/desertthunder/mpdfmt/internal/models"
	"github.com/desertthunder/mpdfmt/internal/translator"
	"golang.org/x/time/rate"
)

const (
	defaultWorkers = 4
	maxWorkers     = 16
	manifestName   = "export_manifest.json"
)

// BulkExportOpts contains configuration for bulk playlist exports.
type BulkExportOpts struct {
	Format     formatter.Format // Export format, defaults to mpd
	OutputDir  string           // Base output directory (default: mpd_export_{epoch})
	NumWorkers int              // Concurrent workers (default: 4, at most 16)
	RateLimit  float64          // Playlists dispatched per second; 0 means unlimited
}

// PlaylistExportJob is one playlist queued for export.
type PlaylistExportJob struct {
	Index    int
	Playlist models.Playlist
}

// PlaylistExportResult records the outcome of exporting one playlist.
type PlaylistExportResult struct {
	Index        int
	PlaylistURI  string
	PlaylistName string
	Responses    int
	File         string
	Success      bool
	Error        error
}

// BulkExportResult summarizes a bulk export. Results are in playlist order.
type BulkExportResult struct {
	TotalPlaylists    int
	SuccessfulExports int
	FailedExports     int
	OutputDirectory   string
	ManifestPath      string
	Results           []PlaylistExportResult
}

// BulkExport translates and writes playlists concurrently with progress tracking.
//
// A worker pool handles the playlists; a failed playlist is recorded and the rest continue.
// A manifest summarizing the run is written next to the exports.
func (e *ExportEngine) BulkExport(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	playlists []models.Playlist,
	opts BulkExportOpts,
) (*BulkExportResult, error) {
	if opts.Format == "" {
		opts.Format = formatter.FormatMPD
	}
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("mpd_export_%d", e.clock.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = defaultWorkers
	}
	if opts.NumWorkers > maxWorkers {
		opts.NumWorkers = maxWorkers
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		TotalPlaylists:  len(playlists),
		OutputDirectory: opts.OutputDir,
		Results:         make([]PlaylistExportResult, 0, len(playlists)),
	}

	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	limiter := rate.NewLimiter(limit, 1)

	jobs := make(chan PlaylistExportJob, len(playlists))
	results := make(chan PlaylistExportResult, len(playlists))

	var wg sync.WaitGroup
	for range opts.NumWorkers {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, jobs, results, opts)
	}

	go func() {
		defer close(jobs)
		for i, pl := range playlists {
			if err := limiter.Wait(ctx); err != nil {
				return
			}
			e.sendProgress(prog, translatingPlaylistUpdate(i+1, len(playlists), pl.Name))
			jobs <- PlaylistExportJob{Index: i, Playlist: pl}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			e.sendProgress(prog, exportCompletedUpdate(completed, len(playlists), res))
		} else {
			result.FailedExports++
			e.sendProgress(prog, exportFailedUpdate(completed, len(playlists), res))
		}
	}

	slices.SortFunc(result.Results, func(a, b PlaylistExportResult) int { return a.Index - b.Index })

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("bulk export interrupted after %d of %d playlists: %w", completed, len(playlists), err)
	}

	manifestPath := filepath.Join(opts.OutputDir, manifestName)
	e.sendProgress(prog, manifestUpdate(manifestPath))
	if err := e.writeManifest(result, opts.Format, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	return result, nil
}

// exportWorker is a worker goroutine that exports playlists from the jobs channel.
func (e *ExportEngine) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan PlaylistExportJob,
	results chan<- PlaylistExportResult,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		if ctx.Err() != nil {
			return
		}
		results <- e.exportSinglePlaylist(job, opts)
	}
}

// exportSinglePlaylist translates one playlist and writes it as {n}-{slug}{ext}.
func (e *ExportEngine) exportSinglePlaylist(j PlaylistExportJob, opts BulkExportOpts) PlaylistExportResult {
	result := PlaylistExportResult{
		Index:        j.Index,
		PlaylistURI:  j.Playlist.URI,
		PlaylistName: j.Playlist.Name,
	}

	export := &formatter.Export{
		Title:     j.Playlist.Name,
		Responses: translator.PlaylistToMPDFormat(j.Playlist, translator.All),
	}
	result.Responses = len(export.Responses)

	name := fmt.Sprintf("%02d-%s%s", j.Index+1, formatter.Slug(j.Playlist.Name), opts.Format.Extension())
	path, err := e.write(export, opts.Format, filepath.Join(opts.OutputDir, name))
	if err != nil {
		result.Error = fmt.Errorf("%s export failed: %w", opts.Format, err)
		return result
	}

	result.File = path
	result.Success = true
	return result
}

type manifest struct {
	Format            string          `json:"format"`
	ExportedAt        string          `json:"exported_at"`
	OutputDirectory   string          `json:"output_directory"`
	TotalPlaylists    int             `json:"total_playlists"`
	SuccessfulExports int             `json:"successful_exports"`
	FailedExports     int             `json:"failed_exports"`
	Playlists         []manifestEntry `json:"playlists"`
}

type manifestEntry struct {
	URI       string `json:"uri,omitempty"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Responses int    `json:"responses"`
	File      string `json:"file,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (e *ExportEngine) writeManifest(result *BulkExportResult, format formatter.Format, path string) error {
	m := manifest{
		Format:            string(format),
		ExportedAt:        e.clock.Now().UTC().Format(time.RFC3339),
		OutputDirectory:   result.OutputDirectory,
		TotalPlaylists:    result.TotalPlaylists,
		SuccessfulExports: result.SuccessfulExports,
		FailedExports:     result.FailedExports,
		Playlists:         make([]manifestEntry, len(result.Results)),
	}

	for i, res := range result.Results {
		entry := manifestEntry{
			URI:       res.PlaylistURI,
			Name:      res.PlaylistName,
			Status:    "success",
			Responses: res.Responses,
			File:      res.File,
		}
		if !res.Success {
			entry.Status = "failed"
			if res.Error != nil {
				entry.Error = res.Error.Error()
			}
		}
		m.Playlists[i] = entry
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
