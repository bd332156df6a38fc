package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mpdfmt/internal/formatter"
	"github.com/desertthunder/mpdfmt/internal/library"
	"github.com/desertthunder/mpdfmt/internal/shared"
	"github.com/desertthunder/mpdfmt/internal/translator"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	library    *library.Library
	logger     *log.Logger
	output     io.Writer
	clock      translator.Clock
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Library    *library.Library // preloaded library; when nil it is read from disk on first use
	Logger     *log.Logger
	Output     io.Writer
	Clock      translator.Clock
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Clock == nil {
		opts.Clock = translator.SystemClock
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		library:    opts.Library,
		logger:     opts.Logger,
		output:     opts.Output,
		clock:      opts.Clock,
	}
}

// SetLogger swaps the logger, e.g. for a file logger while the TUI owns the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		trackCommand, playlistCommand, tracklistCommand, tagCacheCommand, exportCommand, tuiCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// before loads the configuration named by --config when it exists, then configures the logger.
func (r *Runner) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	configPath := cmd.String("config")
	if _, err := os.Stat(configPath); err == nil {
		config, err := shared.LoadConfig(configPath)
		if err != nil {
			return ctx, err
		}
		r.config = config
		r.configPath = configPath
	}

	level := shared.ParseLogLevel(r.config.Log.Level)
	if cmd.Bool("verbose") {
		level = log.DebugLevel
	}
	shared.SetLogLevel(r.logger, level)

	r.logger = shared.WithLogger(r.logger, "run", shared.GenerateID())
	r.logger.Debug("configuration loaded", "path", r.configPath, "library", r.config.Library.Path)
	return ctx, nil
}

// loadLibrary returns the library, reading it from --library or the configured path on first use.
func (r *Runner) loadLibrary(cmd *cli.Command) (*library.Library, error) {
	if r.library != nil {
		return r.library, nil
	}

	path := cmd.String("library")
	if path == "" {
		path = r.config.Library.Path
	}
	if path == "" {
		return nil, fmt.Errorf("%w: no library path configured", shared.ErrMissingArgument)
	}

	r.logger.Debug("loading library", "path", path)
	lib, err := library.Load(path)
	if err != nil {
		return nil, err
	}

	r.logger.Info("library loaded", "path", path, "tracks", len(lib.Tracks()), "playlists", len(lib.Playlists()))
	r.library = lib
	return lib, nil
}

// writeResponses renders responses in the configured output format, or JSON with --json.
func (r *Runner) writeResponses(cmd *cli.Command, title string, responses []translator.Pairs) error {
	export := &formatter.Export{Title: title, Responses: responses}
	pretty := cmd.Bool("pretty") || r.config.Output.Pretty

	if cmd.Bool("json") {
		return r.writeJSON(export, pretty)
	}

	format, err := formatter.ParseFormat(r.config.Output.Format)
	if err != nil {
		return err
	}
	if cmd.Bool("attrs") {
		format = formatter.FormatAttrs
	}

	data, err := formatter.Render(export, format, pretty)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// writeLines writes each line followed by a newline, stopping at the first failure.
func (r *Runner) writeLines(lines ...string) error {
	for _, line := range lines {
		if err := r.writePlain("%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
