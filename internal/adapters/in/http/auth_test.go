package http_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	httpadapter "reco/internal/adapters/in/http"
	"reco/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticator_IssueAndParse(t *testing.T) {
	auth := httpadapter.NewAuthenticator("secret", time.Hour)
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleRecycler, true)
	require.NoError(t, err)

	token, err := auth.Issue(actor)
	require.NoError(t, err)
	parsed, err := auth.Parse(token)

	require.NoError(t, err)
	assert.True(t, parsed.Is(actor.ID()))
	assert.Equal(t, kernel.RoleRecycler, parsed.Role())
	assert.True(t, parsed.IsStaff())
}

func TestAuthenticator_RejectsForeignSecret(t *testing.T) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDonor, false)
	require.NoError(t, err)
	token, err := httpadapter.NewAuthenticator("other", time.Hour).Issue(actor)
	require.NoError(t, err)

	_, err = httpadapter.NewAuthenticator("secret", time.Hour).Parse(token)

	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestAuthenticator_RejectsExpiredToken(t *testing.T) {
	auth := httpadapter.NewAuthenticator("secret", -time.Minute)
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDonor, false)
	require.NoError(t, err)
	token, err := auth.Issue(actor)
	require.NoError(t, err)

	_, err = auth.Parse(token)

	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestAuthenticator_RejectsUnknownRole(t *testing.T) {
	claims := &httpadapter.Claims{
		Role: "pirate",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   kernel.NewUUID().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = httpadapter.NewAuthenticator("secret", time.Hour).Parse(token)

	require.Error(t, err)
}

type fakeFeed struct {
	profiles []string
}

func (f *fakeFeed) Serve(w http.ResponseWriter, _ *http.Request, profileID string) error {
	f.profiles = append(f.profiles, profileID)
	w.WriteHeader(http.StatusSwitchingProtocols)
	return nil
}

func TestRouter_LiveFeedAuthenticatesWithQueryToken(t *testing.T) {
	feed := &fakeFeed{}
	auth := httpadapter.NewAuthenticator(testSecret, time.Hour)
	e, err := httpadapter.NewRouter(httpadapter.RouterConfig{
		Server:        httpadapter.NewServer(httpadapter.Handlers{}),
		Authenticator: auth,
		Feed:          feed,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	rec := doJSON(e, http.MethodGet, "/ws", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, feed.profiles)

	actor, token := tokenFor(t, kernel.RoleBeneficiary, false)
	rec = doJSON(e, http.MethodGet, "/ws?token="+token, "", nil)
	assert.Equal(t, http.StatusSwitchingProtocols, rec.Code)
	assert.Equal(t, []string{actor.ID().String()}, feed.profiles)
}
