package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/enginegrid/internal/app"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an application run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	Config    *app.Config
}

// WriteSchematic stores content as a schematic file in a fresh temporary
// directory and returns its path.
func WriteSchematic(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schematic.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// RunApp runs the application against the given schematic text using a
// background context. Options can adjust the configuration before the run.
func RunApp(t *testing.T, schematicText string, opts ...func(*app.Config)) *HarnessResult {
	t.Helper()
	return RunAppWithContext(context.Background(), t, schematicText, opts...)
}

// RunAppWithContext is RunApp with a caller-provided context.
func RunAppWithContext(ctx context.Context, t *testing.T, schematicText string, opts ...func(*app.Config)) *HarnessResult {
	t.Helper()

	cfg := &app.Config{
		InputPath: WriteSchematic(t, schematicText),
		LogLevel:  "debug",
		LogFormat: "text",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	err := app.NewApp(out, logs, cfg).Run(ctx)

	if os.Getenv("ENGINEGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       err,
		Config:    cfg,
	}
}
