package ask

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"rag-chat/backend"
	"rag-chat/config"
	"rag-chat/ui"
)

// Ask sends a single question and prints what the backend had to say. Backend and transport errors are printed as
// the answer and do not fail the command.
func Ask(ctx *cli.Context) error {
	cfg, ok := ctx.App.Metadata[config.MetadataKey].(*config.Config)
	if !ok {
		return fmt.Errorf("configuration was not loaded")
	}

	question := strings.Join(ctx.Args().Slice(), " ")
	if ctx.IsSet("question") {
		question = ctx.String("question")
	}

	logger := slog.Default()
	submitter := &ui.Submitter{
		Backend: backend.NewClient(cfg.BackendURL, logger),
		Logger:  logger,
	}

	answer := ui.NewTerminal(ctx.App.Writer)
	submitter.Ask(ctx.Context, answer, question)
	answer.Flush()

	return nil
}
