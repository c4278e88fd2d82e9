package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/enginegrid/internal/ctxlog"
	"github.com/specialistvlad/enginegrid/internal/schematic"
)

// Run loads the schematic, analyzes it and prints both task results.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	grid, err := a.LoadSchematic(ctx)
	if err != nil {
		return err
	}

	if a.config.ShowGrid {
		fmt.Fprintln(a.outW, grid.String())
	}
	if a.config.MaskPath != "" {
		if err := a.writeMask(ctx, grid); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("analysis cancelled: %w", err)
	}

	report, err := schematic.Analyze(grid)
	if err != nil {
		return fmt.Errorf("failed to analyze schematic: %w", err)
	}
	logger.Debug("Numbers extracted.", "numbers", report.Numbers, "part_numbers", report.Parts, "gear_candidates", report.GearCandidates)
	logger.Debug("Gears evaluated.", "gears", report.Gears, "skipped", len(report.SkippedGears))
	for _, skipped := range report.SkippedGears {
		logger.Debug("Gear skipped.", "gear", skipped.Gear.String(), "neighbours", skipped.Found)
	}

	fmt.Fprintf(a.outW, "Task 1: %d\n", report.PartSum)
	fmt.Fprintf(a.outW, "Task 2: %d\n", report.GearSum)

	logger.Debug("App.Run method finished.")
	return nil
}
