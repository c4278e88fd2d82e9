package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/enginegrid/internal/ctxlog"
	"github.com/specialistvlad/enginegrid/internal/fsutil"
	"github.com/specialistvlad/enginegrid/internal/schematic"
)

// LoadSchematic reads and parses the configured input file.
func (a *App) LoadSchematic(ctx context.Context) (*schematic.Grid, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading schematic...", "path", a.config.InputPath)

	data, err := fsutil.ReadRegularFile(a.config.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schematic: %w", err)
	}

	grid, err := schematic.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to load schematic %s: %w", a.config.InputPath, err)
	}

	logger.Info("Schematic loaded.", "rows", grid.Rows(), "cols", grid.Cols())
	return grid, nil
}

// writeMask dumps the symbol mask to the configured path, replacing any
// existing file.
func (a *App) writeMask(ctx context.Context, grid *schematic.Grid) (err error) {
	logger := ctxlog.FromContext(ctx)

	f, err := os.Create(a.config.MaskPath)
	if err != nil {
		return fmt.Errorf("failed to write mask: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close mask file: %w", cerr)
		}
	}()

	mask := schematic.SymbolMask(grid)
	n, err := mask.WriteTo(f)
	if err != nil {
		return fmt.Errorf("failed to write mask: %w", err)
	}
	logger.Debug("Symbol mask written.", "path", a.config.MaskPath, "bytes", n, "marked", mask.Count())
	return nil
}
