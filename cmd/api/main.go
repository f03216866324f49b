package main

import (
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"pasal/internal/checkout"
	"pasal/internal/mailer"
	"pasal/internal/payments"
	"pasal/internal/ratelimiter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// envString returns the value of key, or the hard-coded fallback when unset.
// Merchant identity falls back to the storefront defaults so a bare dev
// environment still renders a working method list; secrets have no fallback
// and leave their provider unconfigured until supplied.
func envString(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if val, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
		fmt.Println("Invalid", key, "defaulting to", fallback)
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if val, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
		fmt.Println("Invalid", key, "defaulting to", fallback)
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if val, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		fmt.Println("Invalid", key, "defaulting to", fallback)
	}
	return fallback
}

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	return ratelimiter.Config{
		RequestsPerTimeFrame: envInt("RATELIMITER_REQUESTS_COUNT", 200),
		TimeFrame:            5 * time.Second,
		Enabled:              envBool("RATE_LIMITER_ENABLED", false),
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

var version = "1.0.0"

//	@title			Pasal Checkout API
//	@description	Payment initiation service for the Pasal storefront. Builds and signs provider requests (Khalti, eSewa, FonePay) server-side and tracks transient checkout sessions.

//	@contact.name	API Support

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/v1
//	@securityDefinitions.basic	BasicAuth

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment and built-in defaults")
	}

	merchant := merchantConfig{
		name:       envString("MERCHANT_NAME", "Mahaseth Mobile All Solution"),
		address:    envString("MERCHANT_ADDRESS", "Kshireshwarnath MC"),
		terminalID: envString("TERMINAL_ID", "2222610015419744"),
	}

	cfg := config{
		addr:        envString("ADDR", ":8080"),
		env:         envString("ENV", "development"),
		apiURL:      envString("EXTERNAL_URL", "localhost:8080"),
		frontendURL: envString("FRONTEND_URL", "http://localhost:5173"),
		auth: authConfig{
			basic: basicConfig{
				user: envString("AUTH_BASIC_USER", "admin"),
				pass: envString("AUTH_BASIC_PASS", "admin"),
			},
		},
		merchant: merchant,
		payment: paymentConfig{
			khalti: khaltiConfig{
				merchantID: os.Getenv("KHALTI_MERCHANT_ID"),
				secretKey:  os.Getenv("KHALTI_SECRET_KEY"),
				// sandbox by default; switch to https://khalti.com/api/v2 when live
				baseURL: envString("KHALTI_BASE_URL", "https://a.khalti.com/api/v2"),
			},
			esewa: esewaConfig{
				merchantCode: os.Getenv("ESEWA_MERCHANT_CODE"),
				secretKey:    os.Getenv("ESEWA_SECRET_KEY"),
				formURL:      envString("ESEWA_EPAY_URL", "https://rc-epay.esewa.com.np/api/epay/main/v2/form"),
			},
			fonepay: fonepayConfig{
				// FonePay issues the terminal id as the merchant code (PID)
				merchantCode: envString("FONEPAY_MERCHANT_CODE", merchant.terminalID),
				secretKey:    os.Getenv("FONEPAY_SECRET_KEY"),
				baseURL:      envString("FONEPAY_BASE_URL", "https://dev-clientapi.fonepay.com/api/merchantRequest"),
			},
		},
		mail: mailConfig{
			fromEmail: os.Getenv("SMTP_FROM_EMAIL"),
			smtp: smtpConfig{
				host:     os.Getenv("SMTP_HOST"),
				port:     envInt("SMTP_PORT", 587),
				username: os.Getenv("SMTP_USERNAME"),
				password: os.Getenv("SMTP_PASSWORD"),
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
		sessionTTL:  envDuration("CHECKOUT_SESSION_TTL", 30*time.Minute),
	}

	// Logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Payment gateways
	pm := payments.NewPaymentManager()
	pm.RegisterGateway("khalti", payments.NewKhaltiAdapter(
		cfg.payment.khalti.merchantID,
		cfg.merchant.name,
		cfg.payment.khalti.secretKey,
		cfg.payment.khalti.baseURL,
		cfg.successURL(),
		cfg.frontendURL,
	))
	pm.RegisterGateway("esewa", payments.NewEsewaAdapter(
		cfg.payment.esewa.merchantCode,
		cfg.payment.esewa.secretKey,
		cfg.payment.esewa.formURL,
		cfg.successURL(),
		cfg.failureURL(),
	))
	pm.RegisterGateway("fonepay", payments.NewFonepayAdapter(
		cfg.payment.fonepay.merchantCode,
		cfg.payment.fonepay.secretKey,
		cfg.payment.fonepay.baseURL,
		cfg.successURL(),
		cfg.merchant.address,
	))
	pm.RegisterGateway("khalti-app", payments.NewKhaltiDeepLink(cfg.payment.khalti.merchantID, cfg.merchant.name))
	pm.RegisterGateway("esewa-app", payments.NewEsewaDeepLink(cfg.payment.esewa.merchantCode))

	// Checkout sessions
	sessions := checkout.NewStore(cfg.sessionTTL)

	confirmations, err := checkout.NewConfirmationCodes(cfg.merchant.terminalID)
	if err != nil {
		logger.Fatal(err)
	}

	// Order confirmation emails are optional; COD works without them.
	var mailClient mailer.Client
	if cfg.mail.smtp.host != "" {
		mailClient, err = mailer.NewSMTPClient(
			cfg.mail.smtp.host,
			cfg.mail.smtp.port,
			cfg.mail.smtp.username,
			cfg.mail.smtp.password,
			cfg.mail.fromEmail,
		)
		if err != nil {
			logger.Fatal(err)
		}
	} else {
		logger.Info("smtp not configured, order confirmation emails disabled")
	}

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:        cfg,
		logger:        logger,
		payments:      pm,
		sessions:      sessions,
		confirmations: confirmations,
		mailer:        mailClient,
		rateLimiter:   rateLimiter,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("checkout_sessions", expvar.Func(func() any {
		return sessions.Len()
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	app.sweepExpiredSessionsEvery(10 * time.Minute)

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
