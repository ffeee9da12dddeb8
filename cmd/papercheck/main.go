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
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/papercheck/checker"
	"github.com/poiesic/papercheck/document"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "papercheck",
		Usage:     "Document similarity checker for plagiarism detection",
		ArgsUsage: "[original file] [candidate file] [answer file]",
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
				Usage:   "Path to a TOML configuration file",
			},
			&cli.IntFlag{
				Name:  "max-features",
				Usage: "Vocabulary size cap per comparison",
			},
		},
		Before: setupLogger,
		Action: checkCommand,
		Commands: []*cli.Command{
			{
				Name:      "batch",
				Usage:     "Compare one original against many candidate files",
				ArgsUsage: "[original file] [output directory] [candidate files...]",
				Action:    batchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent comparisons (0 selects the default)",
					},
				},
			},
		},
	}
}

func checkCommand(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit("expected exactly three arguments: original file, candidate file, answer file", 1)
	}

	chk, err := buildChecker(c, 0)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	origPath := c.Args().Get(0)
	candidatePath := c.Args().Get(1)
	outPath := c.Args().Get(2)

	score, err := chk.Check(c.Context, origPath, candidatePath, outPath)
	if err != nil {
		return exitError(err)
	}

	fmt.Printf("similarity: %.2f%%\n", score*100)
	return nil
}

func batchCommand(c *cli.Context) error {
	if c.NArg() < 3 {
		return cli.Exit("expected an original file, an output directory, and at least one candidate file", 1)
	}

	chk, err := buildChecker(c, c.Int("workers"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	origPath := c.Args().Get(0)
	outDir := c.Args().Get(1)
	candidates := c.Args().Slice()[2:]

	results, err := chk.CheckMany(c.Context, origPath, candidates, outDir)
	if err != nil {
		return exitError(err)
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Printf("%s: error: %v\n", result.CandidatePath, result.Err)
			continue
		}
		fmt.Printf("%s: %.2f%%\n", result.CandidatePath, result.Score*100)
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d comparisons failed", failed, len(results)), 1)
	}
	return nil
}

// buildChecker assembles engine configuration from the config file and
// command-line overrides. workers overrides the pool size when > 0.
func buildChecker(c *cli.Context, workers int) (*checker.Checker, error) {
	var cfg *checker.Config
	if path := c.String("config"); path != "" {
		loaded, err := checker.LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = checker.DefaultConfig()
	}

	if c.IsSet("max-features") {
		cfg.MaxFeatures = c.Int("max-features")
	}
	if workers > 0 {
		cfg.PoolSize = workers
	}

	chk, err := checker.NewChecker(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing checker: %w", err)
	}
	return chk, nil
}

// exitError maps engine errors onto the process exit contract: file
// errors and generic errors are reported distinctly, both exit 1.
func exitError(err error) error {
	if errors.Is(err, document.ErrNotFound) ||
		errors.Is(err, document.ErrDecodeFailed) ||
		errors.Is(err, document.ErrEmptyContent) {
		return cli.Exit(fmt.Sprintf("file error: %v", err), 1)
	}
	return cli.Exit(fmt.Sprintf("error: %v", err), 1)
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
