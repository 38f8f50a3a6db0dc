package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"zonedelivery/internal/generated/servers"
	"zonedelivery/internal/metrics"
)

const (
	apiPrefix          = "/api/"
	rateLimiterExpires = 3 * time.Minute
)

// RouterConfig tunes the middleware chain. A zero RateLimit disables rate
// limiting.
type RouterConfig struct {
	RateLimit float64
	RateBurst int
}

// NewRouter builds the echo instance serving the API together with the
// health, metrics and documentation endpoints.
func NewRouter(cfg RouterConfig, server *Server, m *metrics.Metrics, logger *slog.Logger) (*echo.Echo, error) {
	logger = logger.With("component", "http")

	validationDoc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(validationDoc)
	if err != nil {
		return nil, err
	}

	publishedDoc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = servers.RegisterSwaggerDoc(); err != nil {
		return nil, fmt.Errorf("registering swagger doc: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(e)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(observe(m))
	if cfg.RateLimit > 0 {
		e.Use(rateLimiter(cfg, m, logger))
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, publishedDoc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "http request", attrs...)
			return nil
		},
	})
}

// observe records request count and latency labelled by route pattern, so
// path parameters do not blow up label cardinality.
func observe(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)

			m.HTTPRequests.WithLabelValues(c.Request().Method, path, status).Inc()
			m.HTTPDuration.WithLabelValues(c.Request().Method, path, status).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

func rateLimiter(cfg RouterConfig, m *metrics.Metrics, logger *slog.Logger) echo.MiddlewareFunc {
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RateLimit),
		Burst:     burst,
		ExpiresIn: rateLimiterExpires,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, apiPrefix)
		},
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, _ error) error {
			m.RateLimited.Inc()
			logger.WarnContext(c.Request().Context(), "rate limit exceeded",
				"ip", identifier,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
			)
			c.Response().Header().Set("Retry-After", "1")
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
		},
	})
}
