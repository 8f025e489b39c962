package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runSetupLogger(t *testing.T, level string) error {
	t.Helper()
	app := &cli.App{
		Name: "evidex",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "info"},
		},
		Before: setupLogger,
		Action: func(c *cli.Context) error { return nil },
	}
	return app.Run([]string{"evidex", "--log-level", level})
}

func TestSetupLogger_ValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
		t.Run(level, func(t *testing.T) {
			require.NoError(t, runSetupLogger(t, level))
		})
	}
}

func TestSetupLogger_InvalidLevel(t *testing.T) {
	err := runSetupLogger(t, "verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestSetupLogger_SetsDefault(t *testing.T) {
	require.NoError(t, runSetupLogger(t, "debug"))
	assert.True(t, slog.Default().Enabled(nil, slog.LevelDebug))
}

func TestIngestCommand_RequiresArgs(t *testing.T) {
	app := &cli.App{
		Name: "evidex",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "evidex.yaml"},
		},
		Commands: []*cli.Command{
			{Name: "ingest", Action: ingestCommand},
		},
	}
	err := app.Run([]string{"evidex", "ingest"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one file")
}
