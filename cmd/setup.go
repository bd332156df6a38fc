package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/mpdfmt/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the bundled configuration template to --output, or to the --config path.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")
	if path == "" {
		path = cmd.String("config")
	}
	if path == "" {
		return fmt.Errorf("%w: --output is required", shared.ErrMissingArgument)
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load created config: %w", err)
	}
	r.config = config
	r.configPath = path

	r.logger.Info("config file created", "path", path)
	return r.writeLines(
		fmt.Sprintf("✓ Configuration written to %s", path),
		"\nNext steps:",
		fmt.Sprintf("1. Point library.path at your library document (currently \"%s\")", config.Library.Path),
		"2. Run 'mpdfmt playlist --name \"<playlist>\"' to print its MPD responses",
	)
}
