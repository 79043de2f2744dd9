package httphandler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultHandlerTimeout = 5 * time.Second
	timeoutBody           = `{"success":false,"message":"Service unavailable."}`
)

type HTTPServer struct {
	httpServer *http.Server
}

type ServerOpt func(*http.Server, *time.Duration)

// HandlerTimeoutOpt bounds the time a handler may take to respond.
func HandlerTimeoutOpt(d time.Duration) ServerOpt {
	return func(_ *http.Server, timeout *time.Duration) {
		*timeout = d
	}
}

func NewHTTPServer(addr string, handler http.Handler, opts ...ServerOpt) HTTPServer {
	s := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       2 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	timeout := defaultHandlerTimeout
	for _, opt := range opts {
		opt(s, &timeout)
	}

	s.Handler = timeoutContentType(
		http.TimeoutHandler(handler, timeout, timeoutBody),
	)
	s.WriteTimeout = timeout + time.Second
	return HTTPServer{s}
}

// timeoutContentType labels the timeout body written by
// http.TimeoutHandler, which sets no Content-Type of its own.
func timeoutContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(timeoutWriter{w}, r)
	})
}

type timeoutWriter struct {
	http.ResponseWriter
}

func (w timeoutWriter) WriteHeader(code int) {
	h := w.Header()
	if code == http.StatusServiceUnavailable && h.Get("Content-Type") == "" {
		h.Set("Content-Type", "application/json")
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w timeoutWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (s HTTPServer) Run(stopFn context.CancelFunc) {
	const op = "HTTPServer.Run"
	log := slog.With("op", op)

	defer stopFn()
	log.Info("listening", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return
		}
		log.Error("unexpected servers shutdown", "err", err)
	}
}

func (s HTTPServer) Close(ctx context.Context) {
	const op = "HTTPServer.Close"
	log := slog.With("op", op)

	log.Info("closing http server...")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		log.Error("failed to shutdown gracefully", "err", err)
	}
	log.Info("http server is closed")
}
