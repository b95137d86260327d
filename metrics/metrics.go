package metrics

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/grailsmarket/ens-referrals/logutils"
)

// Server runs and controls a HTTP metrics interface.
type Server struct {
	server *http.Server
}

func NewMetricsServer(addr string, gatherer prom.Gatherer) *Server {
	if gatherer == nil {
		gatherer = prom.DefaultGatherer
	}
	mux := http.NewServeMux()
	mux.Handle("/health", healthHandler())
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return &Server{
		server: &http.Server{
			Addr:              addr,
			ReadHeaderTimeout: 5 * time.Second,
			Handler:           mux,
		},
	}
}

func healthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("OK"))
		if err != nil {
			logutils.ZapLogger().Error("health handler error", zap.Error(err))
		}
	})
}

// Handler exposes the server's routes, mostly for tests.
func (p *Server) Handler() http.Handler {
	return p.server.Handler
}

// Listen starts the HTTP server and blocks until it stops.
func (p *Server) Listen() {
	err := p.server.ListenAndServe()
	if err == http.ErrServerClosed {
		err = nil
	}
	logutils.ZapLogger().Info("metrics server stopped", zap.Error(err))
}

// Stop shuts the server down.
func (p *Server) Stop(ctx context.Context) error {
	return p.server.Shutdown(ctx)
}
