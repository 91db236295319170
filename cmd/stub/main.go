// Command kc-stub serves an in-memory fake of the clinic API for local use of kc.
package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/and161185/kid-clinic/internal/clinictest"
	"github.com/and161185/kid-clinic/internal/logger"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	addr := flag.String("addr", "localhost:8000", "listen address")
	token := flag.String("token", clinictest.Token, "accepted bearer token")
	logLevel := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	log, err := logger.New(*logLevel, "json")
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	log.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", *addr),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := clinictest.NewAPI()
	api.SetToken(*token)

	srv := &http.Server{
		Handler:           newRouter(log, api.Handler()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", lis.Addr().String()))
		errCh <- srv.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	log.Info("shutdown complete")
}

// newRouter mounts api behind request logging.
func newRouter(log *zap.Logger, api http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(accessLog(log))
	r.Mount("/", api)
	return r
}

// accessLog logs request metadata only; bodies and headers carry tokens and personal data.
func accessLog(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("dur", time.Since(start)),
				zap.String("request_id", r.Header.Get("X-Request-ID")),
				zap.String("peer", r.RemoteAddr),
			)
		})
	}
}
