package upload

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"rag-chat/backend"
	"rag-chat/config"
	"rag-chat/document"
	"rag-chat/ui"
)

// Upload sends the first file named on the command line for ingestion and prints the resulting status
func Upload(ctx *cli.Context) error {
	cfg, ok := ctx.App.Metadata[config.MetadataKey].(*config.Config)
	if !ok {
		return fmt.Errorf("configuration was not loaded")
	}

	var files []document.File
	for _, path := range ctx.Args().Slice() {
		files = append(files, document.FromPath(path))
	}

	logger := slog.Default()
	uploader := &ui.Uploader{
		Backend: backend.NewClient(cfg.BackendURL, logger),
		Logger:  logger,
	}

	status := ui.NewTerminal(ctx.App.Writer)
	uploader.Upload(ctx.Context, status, files)
	status.Flush()

	return nil
}
