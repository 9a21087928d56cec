package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/teamwear/jersey-orders/internal/app/config"
	"github.com/teamwear/jersey-orders/internal/app/controller/http/admin"
	authmw "github.com/teamwear/jersey-orders/internal/app/controller/http/middleware/auth"
	"github.com/teamwear/jersey-orders/internal/app/controller/http/middleware/logger"
	"github.com/teamwear/jersey-orders/internal/app/controller/http/orders"
	"github.com/teamwear/jersey-orders/internal/app/mailer"
	storage "github.com/teamwear/jersey-orders/internal/app/storage/api/model"
	"github.com/teamwear/jersey-orders/internal/app/usecase/notify"
	"github.com/teamwear/jersey-orders/internal/app/usecase/token"
	"github.com/teamwear/jersey-orders/internal/app/validator"
)

type HTTPServer struct {
	server *http.Server

	config  config.Config
	storage storage.Storage

	dispatcher *notify.Dispatcher
	orders     orders.Order
	admin      admin.Admin
}

func New(config config.Config, storage storage.Storage) *HTTPServer {
	sender, err := mailer.New(config)
	if err != nil {
		zap.L().Fatal("error while creating smtp sender", zap.Error(err))
	}

	dispatcher := notify.New(sender, config.AdminEmail)
	issuer := token.NewIssuer(config.JWTSecret, time.Duration(config.TokenTTLHour)*time.Hour)

	limits := validator.Limits{
		JerseyNumberMin: config.JerseyNumberMin,
		JerseyNumberMax: config.JerseyNumberMax,
		NameMaxLength:   config.NameMaxLength,
	}

	ordersHandler := orders.New(storage, dispatcher, limits)
	adminHandler := admin.New(storage, dispatcher, issuer)

	mux := createMux(config, issuer, ordersHandler, adminHandler)

	server := &http.Server{
		Addr:    config.NetAddr,
		Handler: mux,
	}

	instance := &HTTPServer{
		server:     server,
		config:     config,
		storage:    storage,
		dispatcher: dispatcher,
		orders:     ordersHandler,
		admin:      adminHandler,
	}

	return instance
}

func (s *HTTPServer) StartHTTPServer() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

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

	s.dispatcher.Stop()
}

func createMux(config config.Config, issuer token.Issuer, ordersHandler orders.Order, adminHandler admin.Admin) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)

	rateLimiter := httprate.LimitByIP(config.RateLimitPerMinute, time.Minute)

	r.Get("/health", ordersHandler.Health())

	r.With(rateLimiter).Post("/orders", ordersHandler.SubmitOrder())
	r.Get("/orders/check-jersey", ordersHandler.CheckJerseyNumber())
	r.Get("/orders/check-name", ordersHandler.CheckName())

	r.Route("/admin", func(r chi.Router) {
		r.With(rateLimiter).Post("/login", adminHandler.Login())

		r.Group(func(r chi.Router) {
			r.Use(authmw.AdminMiddleware(issuer))

			r.Get("/orders", adminHandler.ListOrders())
			r.Get("/orders/{id}", adminHandler.GetOrder())
			r.Patch("/orders/{id}/status", adminHandler.UpdateStatus())
			r.Delete("/orders/{id}", adminHandler.DeleteOrder())
			r.Get("/stats", adminHandler.Stats())
		})
	})

	return r
}
