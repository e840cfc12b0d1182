// Package main is the entry point for the book library API server.
// It wires together configuration, the in-memory catalog, the token service
// and the HTTP router.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aoideee/book-library-api/internal/auth"
	"github.com/aoideee/book-library-api/internal/data"
	"github.com/aoideee/book-library-api/internal/validator"
)

// appVersion is the current version of the API, shown in logs and on GET /.
const appVersion = "1.0.0"

const (
	envDevelopment = "development"
	envStaging     = "staging"
	envProduction  = "production"
)

// defaultJWTSecret is used when no secret is configured. It is not safe
// outside local testing and a warning is logged when it is in effect.
const defaultJWTSecret = "default-secret-key-change-in-production"

// serverConfig holds all the values that can be tweaked at startup via
// command-line flags. Flag defaults fall back to environment variables.
type serverConfig struct {
	port        int    // TCP port the HTTP server listens on (default 3000)
	environment string // Runtime environment: development, staging, or production
	jwt         struct {
		secret string        // HS256 signing key
		ttl    time.Duration // Validity window of issued tokens
	}
	limiter struct {
		enabled bool
		rps     float64
		burst   int
	}
	cors struct {
		trustedOrigins []string
	}
}

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config    serverConfig
	logger    *zap.Logger
	models    data.Models
	tokens    *auth.TokenService
	startedAt time.Time

	// quit is closed by stop; background goroutines tracked by wg exit on it.
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// stop signals background goroutines to exit. It is safe to call more than once.
func (app *applicationDependencies) stop() {
	app.stopOnce.Do(func() { close(app.quit) })
}

func main() {
	settings, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(settings.environment)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if settings.jwt.secret == defaultJWTSecret {
		logger.Warn("using the built-in JWT secret; set JWT_SECRET or -jwt-secret")
	}

	app := newApplication(settings, logger)

	err = app.serve()
	if err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}

// newApplication builds the dependency bundle with a freshly seeded catalog
// and the built-in admin credentials.
func newApplication(settings serverConfig, logger *zap.Logger) *applicationDependencies {
	return &applicationDependencies{
		config:    settings,
		logger:    logger,
		models:    data.NewModels(data.SeedBooks()),
		tokens:    auth.NewTokenService(auth.DefaultCredentials(), []byte(settings.jwt.secret), settings.jwt.ttl),
		startedAt: time.Now(),
		quit:      make(chan struct{}),
	}
}

// parseConfig reads flags from args. Where a flag is not given, PORT,
// APP_ENV (or NODE_ENV) and JWT_SECRET from getenv supply the default.
func parseConfig(args []string, getenv func(string) string) (serverConfig, error) {
	var settings serverConfig

	defaultPort := 3000
	if p := getenv("PORT"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return serverConfig{}, fmt.Errorf("invalid PORT %q: %w", p, err)
		}
		defaultPort = n
	}

	defaultEnv := envDevelopment
	if e := getenv("APP_ENV"); e != "" {
		defaultEnv = e
	} else if e := getenv("NODE_ENV"); e != "" {
		defaultEnv = e
	}

	defaultSecret := defaultJWTSecret
	if s := getenv("JWT_SECRET"); s != "" {
		defaultSecret = s
	}

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.IntVar(&settings.port, "port", defaultPort, "Server port")
	fs.StringVar(&settings.environment, "env", defaultEnv, "Environment(development|staging|production)")
	fs.StringVar(&settings.jwt.secret, "jwt-secret", defaultSecret, "HS256 signing key")
	fs.DurationVar(&settings.jwt.ttl, "jwt-ttl", auth.DefaultTTL, "Token validity window")

	fs.BoolVar(&settings.limiter.enabled, "limiter-enabled", true, "Enable per-IP rate limiting")
	fs.Float64Var(&settings.limiter.rps, "limiter-rps", 20, "Rate limiter maximum requests per second")
	fs.IntVar(&settings.limiter.burst, "limiter-burst", 40, "Rate limiter maximum burst")

	fs.Func("cors-trusted-origins", "Trusted CORS origins (space separated, * for any)", func(val string) error {
		settings.cors.trustedOrigins = strings.Fields(val)
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return serverConfig{}, err
	}

	if settings.cors.trustedOrigins == nil {
		settings.cors.trustedOrigins = []string{"*"}
	}

	v := validator.New()
	v.Check(settings.port > 0 && settings.port <= 65535, "port", "must be between 1 and 65535")
	v.Check(validator.In(settings.environment, envDevelopment, envStaging, envProduction), "env", "must be development, staging or production")
	v.Check(settings.jwt.secret != "", "jwt-secret", "must not be empty")
	v.Check(settings.jwt.ttl > 0, "jwt-ttl", "must be positive")
	v.Check(!settings.limiter.enabled || settings.limiter.rps > 0, "limiter-rps", "must be positive")
	v.Check(!settings.limiter.enabled || settings.limiter.burst > 0, "limiter-burst", "must be positive")
	if !v.Valid() {
		msgs := make([]string, 0, len(v.Errors))
		for key, msg := range v.Errors {
			msgs = append(msgs, key+": "+msg)
		}
		return serverConfig{}, errors.New("invalid configuration: " + strings.Join(msgs, "; "))
	}

	return settings, nil
}

// newLogger returns a development logger outside production.
func newLogger(environment string) (*zap.Logger, error) {
	if environment == envProduction {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
