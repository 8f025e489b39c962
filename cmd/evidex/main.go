// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/evidex"
	"github.com/poiesic/evidex/config"
	"github.com/poiesic/evidex/query"
	"github.com/poiesic/evidex/storage"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "evidex",
		Usage: "Document ingestion and search for evidence files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
				Value:   "evidex.yaml",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the upload and search HTTP server",
				Action: serveCommand,
			},
			{
				Name:      "ingest",
				Usage:     "Store files and index them synchronously",
				ArgsUsage: "FILE [FILE ...]",
				Action:    ingestCommand,
			},
			{
				Name:      "search",
				Usage:     "Search the primary index",
				ArgsUsage: "TEXT",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "program",
						Usage: "Filter by program (repeatable)",
					},
					&cli.StringFlag{
						Name:  "domain",
						Usage: "Filter by domain",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openApp(c *cli.Context) (*evidex.App, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return evidex.NewApp(cfg)
}

func serveCommand(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	app, err := evidex.NewApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer app.Close()

	srv, err := app.NewServer()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}
	defer srv.Release()

	httpServer := &http.Server{
		Addr:    cfg.Listen.Addr,
		Handler: srv.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.Listen.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one file is required")
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := context.Background()
	container := app.Pipeline().Container()

	for _, path := range c.Args().Slice() {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		name := filepath.Base(path)
		contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		if _, err := app.BlobRepository().PutBlob(ctx, container, name, content, storage.PutOptions{
			ContentType: contentType,
		}); err != nil {
			return fmt.Errorf("failed to store %s: %w", name, err)
		}

		count, err := app.Pipeline().Run(ctx, content, contentType, name)
		if err != nil {
			return fmt.Errorf("failed to ingest %s: %w", name, err)
		}
		fmt.Printf("%s: %d documents indexed\n", name, count)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	req := &query.Request{
		SearchText: strings.Join(c.Args().Slice(), " "),
		Programs:   query.StringList(c.StringSlice("program")),
		Domain:     c.String("domain"),
	}

	resp, err := app.SearchService().Search(context.Background(), req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
