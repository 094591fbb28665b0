// Package server exposes the purchase cost calculation over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/purchase-cost/internal/calculation"
	"github.com/iwvelando/purchase-cost/internal/render"
	"github.com/iwvelando/purchase-cost/pkg/constants"
	"github.com/iwvelando/purchase-cost/pkg/fields"
	"github.com/iwvelando/purchase-cost/pkg/format"
	"github.com/iwvelando/purchase-cost/pkg/output"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	currency    string
	locale      string
}

// Options tune the handler returned by NewHandler.
type Options struct {
	MaxBodySize int64
	Version     string
	Currency    string
	Locale      string
}

// NewHandler constructs the HTTP handler that serves the calculation API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.MaxBodySize <= 0 {
		opts.MaxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: opts.MaxBodySize,
		version:     trimmedVersion,
		currency:    opts.Currency,
		locale:      opts.Locale,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Post("/api/progressive", h.handleProgressive)
	r.Post("/api/retrograde", h.handleRetrograde)
	r.Get("/api/version", h.handleVersion)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

// Serve runs the HTTP server until ctx is canceled, then shuts it down gracefully.
func Serve(ctx context.Context, logger *zap.Logger, cfg *Config, version string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Addr: cfg.Address,
		Handler: NewHandler(logger, Options{
			MaxBodySize: cfg.BodySizeBytes(),
			Version:     version,
			Currency:    cfg.Currency,
			Locale:      cfg.Locale,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("op", "server.Serve"),
			zap.String("address", cfg.Address),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down",
		zap.String("op", "server.Serve"),
	)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func (h *handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("request served",
			zap.String("op", "server.requestLogger"),
			zap.String("requestID", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (h *handler) handleProgressive(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProgressive"

	f, ok := h.decodeFields(w, r, op)
	if !ok {
		return
	}

	in := calculation.ProgressiveInputFromFields(f)
	res := calculation.Progressive(in)
	report := output.Report{
		Parts:    res.Parts,
		Diagram:  render.Progressive(res, h.formatter(f)),
		Warnings: in.Warnings(),
	}

	h.logger.Info("progressive calculation computed",
		zap.String("op", op),
		zap.Float64("invoice", res.Parts.Invoice),
		zap.Float64("totalCost", res.Parts.TotalCost),
		zap.Int("warnings", len(report.Warnings)),
	)

	h.writeJSON(w, http.StatusOK, report)
}

func (h *handler) handleRetrograde(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleRetrograde"

	f, ok := h.decodeFields(w, r, op)
	if !ok {
		return
	}

	in := calculation.RetrogradeInputFromFields(f)
	res := calculation.Retrograde(in)
	report := output.Report{
		Parts:    res.Parts,
		Diagram:  render.Retrograde(res, h.formatter(f)),
		Warnings: in.Warnings(),
	}

	h.logger.Info("retrograde calculation computed",
		zap.String("op", op),
		zap.Float64("totalCost", res.Parts.TotalCost),
		zap.Float64("invoice", res.Parts.Invoice),
		zap.Int("warnings", len(report.Warnings)),
	)

	h.writeJSON(w, http.StatusOK, report)
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeFields reads a JSON object of raw form fields. An empty body is an
// empty object; the calculation then yields zeros.
func (h *handler) decodeFields(w http.ResponseWriter, r *http.Request, op string) (fields.Fields, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var payload map[string]interface{}
	if err := decoder.Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return nil, false
		case errors.Is(err, io.EOF):
			payload = nil
		default:
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode fields: %v", err), op)
			return nil, false
		}
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}
	return fields.Fields(payload), true
}

func (h *handler) formatter(f fields.Fields) format.Formatter {
	return format.NewFormatter(f.String(calculation.FieldCurrency, h.currency), h.locale)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
