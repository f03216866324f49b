package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pasal/docs" //this is required to generate swagger docs
	"pasal/internal/checkout"
	"pasal/internal/mailer"
	"pasal/internal/payments"
	"pasal/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	logger        *zap.SugaredLogger
	payments      *payments.PaymentManager
	sessions      *checkout.Store
	confirmations *checkout.ConfirmationCodes
	mailer        mailer.Client
	rateLimiter   *ratelimiter.FixedWindowRateLimiter
}

type config struct {
	addr        string
	env         string
	apiURL      string
	frontendURL string
	auth        authConfig
	merchant    merchantConfig
	payment     paymentConfig
	mail        mailConfig
	rateLimiter ratelimiter.Config
	sessionTTL  time.Duration
}

type authConfig struct {
	basic basicConfig
}

type basicConfig struct {
	user string
	pass string
}

type merchantConfig struct {
	name       string
	address    string
	terminalID string
}

type paymentConfig struct {
	khalti  khaltiConfig
	esewa   esewaConfig
	fonepay fonepayConfig
}

type khaltiConfig struct {
	merchantID string
	secretKey  string
	baseURL    string
}

type esewaConfig struct {
	merchantCode string
	secretKey    string
	formURL      string
}

type fonepayConfig struct {
	merchantCode string
	secretKey    string
	baseURL      string
}

type mailConfig struct {
	fromEmail string
	smtp      smtpConfig
}

type smtpConfig struct {
	host     string
	port     int
	username string
	password string
}

// successURL and failureURL are the exit routes the frontend implements;
// providers send the user back to them after the hosted flow.
func (c config) successURL() string {
	return c.frontendURL + "/payment-success"
}

func (c config) failureURL() string {
	return c.frontendURL + "/payment-failure"
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Route("/checkout", func(r chi.Router) {
			r.Use(app.RateLimiterMiddleware)

			r.Get("/methods", app.listPaymentMethodsHandler)

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", app.createCheckoutSessionHandler)

				r.Route("/{sessionID}", func(r chi.Router) {
					r.Get("/", app.getCheckoutSessionHandler)
					r.Post("/dispatch", app.dispatchPaymentHandler)
					r.Get("/form", app.paymentFormHandler)
					r.Post("/focus", app.focusRegainedHandler)
					r.Post("/cancel", app.cancelCheckoutHandler)
					r.Post("/cod", app.cashOnDeliveryHandler)
				})
			})
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
