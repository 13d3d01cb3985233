// Package ui holds the two user actions of the chat page: asking a question and uploading a document. Each action
// reports progress and outcome only by replacing the text of the Region it was given.
package ui

import (
	"context"
	"log/slog"

	"rag-chat/backend"
	"rag-chat/document"
	"rag-chat/render"
)

// Backend is the subset of the backend client the actions need
type Backend interface {
	Chat(ctx context.Context, question string) (*backend.Response, error)
	Ingest(ctx context.Context, file document.File) (*backend.Response, error)
}

type Submitter struct {
	Backend Backend
	Logger  *slog.Logger
}

// Ask sends the question and writes the answer, or whatever went wrong, into the region. Nothing is validated, an
// empty question is sent like any other.
func (s *Submitter) Ask(ctx context.Context, region Region, question string) {
	region.SetText(render.Thinking)

	resp, err := s.Backend.Chat(ctx, question)
	if err != nil {
		s.Logger.DebugContext(ctx, "chat request failed", slog.Any("error", err))
		region.SetText(render.ChatFailure(err))
		return
	}

	text, err := render.Chat(resp)
	if err != nil {
		s.Logger.DebugContext(ctx, "chat response could not be read", slog.Int("status", resp.StatusCode), slog.Any("error", err))
		region.SetText(render.ChatFailure(err))
		return
	}

	region.SetText(text)
}

type Uploader struct {
	Backend Backend
	Logger  *slog.Logger
}

// Upload sends the first of the selected files for ingestion. Any further files are ignored.
func (u *Uploader) Upload(ctx context.Context, region Region, files []document.File) {
	if len(files) == 0 {
		region.SetText(render.NoFile)
		return
	}

	file := files[0]
	region.SetText(render.Uploading)

	resp, err := u.Backend.Ingest(ctx, file)
	if err != nil {
		u.Logger.DebugContext(ctx, "ingest request failed", slog.String("filename", file.Name), slog.Any("error", err))
		region.SetText(render.IngestFailure(err))
		return
	}

	text, err := render.Ingest(resp)
	if err != nil {
		u.Logger.DebugContext(ctx, "ingest response could not be read", slog.Int("status", resp.StatusCode), slog.Any("error", err))
		region.SetText(render.IngestFailure(err))
		return
	}

	region.SetText(text)
}
