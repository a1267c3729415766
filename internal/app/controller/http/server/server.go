package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mverhoef/go-order-bridge/internal/app/config"
	"github.com/mverhoef/go-order-bridge/internal/app/controller/http/customers"
	"github.com/mverhoef/go-order-bridge/internal/app/controller/http/middleware/logger"
	"github.com/mverhoef/go-order-bridge/internal/app/controller/http/orders"
)

type HTTPServer struct {
	server *http.Server
	config config.Config
}

func New(config config.Config, orderHandler orders.Handler, customerHandler customers.Handler) *HTTPServer {
	mux := createMux(orderHandler, customerHandler)

	server := &http.Server{
		Addr:    config.NetAddr,
		Handler: mux,
	}

	return &HTTPServer{
		server: server,
		config: config,
	}
}

// Run serves until the context is cancelled, then shuts down gracefully so
// in-flight fan-outs can finish.
func (s *HTTPServer) Run(ctx context.Context) {
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("fatal error while starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")
	err := s.server.Shutdown(context.Background())
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}
}

func createMux(orderHandler orders.Handler, customerHandler customers.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)
	// unexpected panics surface as sanitized 500s, never as partial state
	r.Use(chi_middleware.Recoverer)

	r.Post("/orders", orderHandler.PlaceOrder())
	r.Delete("/orders/{id}", orderHandler.DeleteOrder())
	r.Get("/orders/health", orderHandler.Health())

	r.Post("/customers", customerHandler.CreateCustomer())
	r.Put("/customers/{id}", customerHandler.UpdateCustomer())
	r.Delete("/customers/{id}", customerHandler.DeleteCustomer())

	return r
}
