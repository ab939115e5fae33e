// Command preview serves rendered sample documents for each built-in
// template so the email layout can be checked in a browser iframe without
// sending anything.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/mailblocks/pkg/logger"
	"github.com/dmitrymomot/mailblocks/pkg/render"
	"github.com/dmitrymomot/mailblocks/pkg/sanitize"
	"github.com/dmitrymomot/mailblocks/pkg/template"
	"github.com/dmitrymomot/mailblocks/pkg/validate"
)

type serverConfig struct {
	Addr            string        `env:"PREVIEW_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"PREVIEW_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func main() {
	_ = godotenv.Load()

	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		slog.Error("failed to parse config", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(logger.WithDevelopment("preview"))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", handleIndex)
	r.Get("/preview/{template}", handlePreview(log))

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", logger.Error(err))
		}
	}()

	log.Info("preview server listening", slog.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", logger.Error(err))
		os.Exit(1)
	}
}

func handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := `<!DOCTYPE html><html><head><title>Template previews</title></head><body style="font-family:sans-serif;">`
	page += `<h1>Template previews</h1>`
	for _, name := range template.BuiltinNames() {
		page += `<h2>` + name + `</h2><iframe src="/preview/` + name + `" width="680" height="800" style="border:1px solid #ccc;"></iframe>`
	}
	page += `</body></html>`
	_, _ = w.Write([]byte(page))
}

func handlePreview(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "template")
		cfg, err := template.Builtin(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		doc := sampleDocument(name)
		doc, err = sanitize.SanitizeDocument(doc)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if errs := validate.Validate(doc, cfg, false); errs.HasBlocking() {
			// The sample is rendered anyway; the renderer is best-effort by
			// contract. Surfacing the findings in the log keeps the preview
			// honest about what a real composer would reject.
			log.Warn("sample document failed validation",
				logger.Template(name),
				slog.String("errors", errs.Error()),
			)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(render.RenderDocument(doc)))
	}
}
