package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"reco/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// LiveFeed streams notifications to a connected profile.
type LiveFeed interface {
	Serve(w http.ResponseWriter, r *http.Request, profileID string) error
}

type RouterConfig struct {
	Server        *Server
	Authenticator *Authenticator
	Feed          LiveFeed
	Logger        *slog.Logger
	// CORSOrigins enables CORS for the listed origins when not empty.
	CORSOrigins []string
}

// NewRouter builds the echo instance serving the API, its documentation, the
// live notification feed and the health check.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	registerSwaggerDoc(string(docJSON))

	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(cfg.Logger)))
	if len(cfg.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", servers.RawSpec())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.Feed != nil {
		e.GET("/ws", liveFeedHandler(cfg.Authenticator, cfg.Feed, cfg.Logger))
	}

	servers.RegisterHandlersWithBaseURL(e, cfg.Server, "", cfg.Authenticator.Middleware(), validator)
	return e, nil
}

func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	log := logger.With("component", "http")
	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				log.Error("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			log.Info("request", attrs...)
			return nil
		},
	}
}

// liveFeedHandler upgrades GET /ws. Browsers cannot set headers on a
// websocket handshake, so the token travels as a query parameter.
func liveFeedHandler(auth *Authenticator, feed LiveFeed, logger *slog.Logger) echo.HandlerFunc {
	log := logger.With("component", "ws")
	return func(ctx echo.Context) error {
		token := ctx.QueryParam("token")
		if token == "" {
			return unauthorized(ctx, errMissingToken)
		}
		actor, err := auth.Parse(token)
		if err != nil {
			return unauthorized(ctx, err)
		}
		if err := feed.Serve(ctx.Response(), ctx.Request(), actor.ID().String()); err != nil {
			log.Warn("live feed closed", "profile_id", actor.ID().String(), "error", err)
		}
		return nil
	}
}

type swaggerDoc string

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

var swaggerOnce sync.Once

// registerSwaggerDoc exposes the document to echo-swagger. swag panics on a
// second registration, and routers are built more than once in tests.
func registerSwaggerDoc(doc string) {
	swaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc(doc))
	})
}
