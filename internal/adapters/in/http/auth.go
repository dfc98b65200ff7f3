package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "reco.actor"

var errMissingToken = errors.New("bearer token is required")

// Claims is the token payload. The subject is the profile ID.
type Claims struct {
	Role  string `json:"role"`
	Staff bool   `json:"staff"`
	jwt.RegisteredClaims
}

// Authenticator issues and verifies HS256 bearer tokens.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthenticator(secret string, ttl time.Duration) *Authenticator {
	return &Authenticator{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the given actor.
func (a *Authenticator) Issue(actor kernel.Actor) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}
	now := a.now()
	claims := &Claims{
		Role:  actor.Role().String(),
		Staff: actor.IsStaff(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Parse verifies the token and maps its claims to an Actor.
func (a *Authenticator) Parse(tokenString string) (kernel.Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.now))
	if err != nil {
		return kernel.Actor{}, err
	}
	if !token.Valid {
		return kernel.Actor{}, jwt.ErrTokenInvalidClaims
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("invalid subject: %w", err)
	}
	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(id, role, claims.Staff)
}

// Middleware rejects requests without a valid bearer token and stores the
// caller in the echo context.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return unauthorized(ctx, errMissingToken)
			}

			actor, err := a.Parse(tokenString)
			if err != nil {
				return unauthorized(ctx, err)
			}
			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func unauthorized(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Invalid or missing token: " + err.Error(),
	})
}

// actorFrom returns the caller stored by Middleware.
func actorFrom(ctx echo.Context) (kernel.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	return actor, ok
}
