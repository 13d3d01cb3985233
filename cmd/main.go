package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"rag-chat/cmd/ask"
	"rag-chat/cmd/upload"
	"rag-chat/config"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "rag-chat",
		Usage: "Ask questions about an uploaded PDF",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "backend",
				Usage: "base URL of the question answering backend (default $BACKEND_URL or http://localhost:8000)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (default $LOG_LEVEL or info)",
			},
		},
		Before: loadConfig,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Aliases:   []string{"a"},
				Usage:     "Ask a question about the current document",
				ArgsUsage: "[question words...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "question",
						Aliases: []string{"q"},
						Usage:   "the question to ask, instead of positional words",
					},
				},
				Action: ask.Ask,
			},
			{
				Name:      "upload",
				Aliases:   []string{"u"},
				Usage:     "Upload a PDF for the backend to answer questions about",
				ArgsUsage: "<file> [file...]",
				Action:    upload.Upload,
			},
		},
	}
}

// loadConfig resolves configuration from the environment and lets global flags override it
func loadConfig(ctx *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if ctx.IsSet("backend") {
		cfg.BackendURL = ctx.String("backend")
	}
	if ctx.IsSet("log-level") {
		if err := cfg.LogLevel.UnmarshalText([]byte(ctx.String("log-level"))); err != nil {
			return fmt.Errorf("invalid log level %q: %w", ctx.String("log-level"), err)
		}
	}

	slog.SetDefault(cfg.Logger())

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = map[string]interface{}{}
	}
	ctx.App.Metadata[config.MetadataKey] = cfg

	return nil
}
