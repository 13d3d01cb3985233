package main

import (
	"errors"
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rag-chat/backend"
	"rag-chat/config"
	"rag-chat/document"
	"rag-chat/render"
	"rag-chat/service/page"
	"rag-chat/ui"
)

// The form field the page's file input posts under
const fileField = "pdf"

type server struct {
	submitter *ui.Submitter
	uploader  *ui.Uploader
	logger    *slog.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := cfg.Logger()
	slog.SetDefault(logger)

	router := newRouter(cfg, logger)

	logger.Info("serving chat page", slog.String("addr", cfg.ListenAddr), slog.String("backend", cfg.BackendURL))
	err = router.Run(cfg.ListenAddr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Unexpected error in http server:", err)
	}
}

func newRouter(cfg *config.Config, logger *slog.Logger) *gin.Engine {
	client := backend.NewClient(cfg.BackendURL, logger)
	s := &server{
		submitter: &ui.Submitter{Backend: client, Logger: logger},
		uploader:  &ui.Uploader{Backend: client, Logger: logger},
		logger:    logger,
	}

	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.AllowOrigins)))
	router.SetHTMLTemplate(page.Templates())

	router.GET("/", s.indexHandler)
	router.POST("/ask", s.askHandler)
	router.POST("/upload", s.uploadHandler)
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

func (s *server) indexHandler(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, page.Name, page.View{})
}

func (s *server) askHandler(ctx *gin.Context) {
	question := ctx.PostForm("question")

	answer := &ui.Recorder{}
	s.submitter.Ask(ctx.Request.Context(), answer, question)

	ctx.HTML(http.StatusOK, page.Name, page.View{
		Question: question,
		Answer:   answer.Text(),
	})
}

func (s *server) uploadHandler(ctx *gin.Context) {
	var files []document.File

	form, err := ctx.MultipartForm()
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		s.logger.ErrorContext(ctx, "failed to parse upload form", slog.Any("error", err))
		ctx.HTML(http.StatusBadRequest, page.Name, page.View{UploadStatus: render.IngestFailure(err)})
		return
	}
	if form != nil {
		for _, header := range form.File[fileField] {
			files = append(files, document.FromHeader(header))
		}
	}

	status := &ui.Recorder{}
	s.uploader.Upload(ctx.Request.Context(), status, files)

	ctx.HTML(http.StatusOK, page.Name, page.View{UploadStatus: status.Text()})
}
