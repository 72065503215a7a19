package httpapp

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// App wraps the HTTP server lifecycle: listen, serve, graceful stop. Every
// handler runs behind recovery and request-logging middleware.
type App struct {
	log    *zap.Logger
	server *http.Server
	addr   string
}

func New(log *zap.Logger, host string, port int, timeout time.Duration, handler http.Handler) *App {
	addr := fmt.Sprintf("%s:%d", host, port)

	wrapped := recoveryMiddleware(log, loggingMiddleware(log, handler))

	server := &http.Server{
		Addr:         addr,
		Handler:      wrapped,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	return &App{
		log:    log,
		server: server,
		addr:   addr,
	}
}

func (a *App) Run() error {
	const op = "httpapp.Run"

	l, err := net.Listen("tcp", a.addr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a.log.Info("HTTP server started", zap.String("addr", l.Addr().String()))

	if err := a.server.Serve(l); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *App) Stop() {
	a.log.Info("stopping HTTP server", zap.String("addr", a.addr))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.log.Warn("HTTP server shutdown failed", zap.Error(err))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func recoveryMiddleware(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered", zap.Any("panic", rec), zap.String("path", r.URL.Path))
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
