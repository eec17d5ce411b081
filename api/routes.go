package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humamux"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	apihandlers "github.com/carson-networks/operacoes-server/internal/handlers"
	"github.com/carson-networks/operacoes-server/internal/handlers/v1/operacao"
	"github.com/carson-networks/operacoes-server/internal/handlers/v1/status"
	"github.com/carson-networks/operacoes-server/internal/logging"
	"github.com/carson-networks/operacoes-server/internal/metrics"
	"github.com/carson-networks/operacoes-server/internal/service"
	"github.com/carson-networks/operacoes-server/internal/storage"
)

const shutdownTimeout = 15 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Host    string
	Port    string
	Service *service.Service
	Storage *storage.Storage
}

// Handler builds the full router: the huma API, /status and /metrics, all
// behind CORS.
func (r *Rest) Handler() http.Handler {
	router := mux.NewRouter()

	statusHandler := status.NewHandler(r.Storage.DB)
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	router.Handle("/metrics", promhttp.Handler())

	api := humamux.New(router, apihandlers.NewHumaConfig())
	api.UseMiddleware(logging.Middleware(r.Logger), metrics.Middleware())

	operacao.NewListOperacoesHandler(r.Service.Operacao).Register(api)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.ExposedHeaders([]string{logging.RequestIDHeader}),
	)
	return cors(router)
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              net.JoinHostPort(r.Host, r.Port),
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		r.Logger.Info("HttpServer.Serve.shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownErr <- server.Shutdown(shutdownCtx)
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}

	return <-shutdownErr
}
