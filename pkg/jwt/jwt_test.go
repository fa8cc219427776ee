package jwt

import (
	"context"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/pkg/utils"
)

func TestMiddleware(t *testing.T) {
	mw, err := NewMiddleware(Config{Secret: "test-secret", Realm: "test"})
	require.NoError(t, err)

	h := server.New()
	h.GET("/me", mw.MiddlewareFunc(), func(ctx context.Context, c *app.RequestContext) {
		c.String(http.StatusOK, GetUserID(c))
	})

	user := utils.NewID()
	token, _, err := mw.TokenGenerator(user)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		w := ut.PerformRequest(h.Engine, http.MethodGet, "/me", nil,
			ut.Header{Key: "Authorization", Value: "Bearer " + token})
		resp := w.Result()
		assert.Equal(t, http.StatusOK, resp.StatusCode())
		assert.Equal(t, user, string(resp.Body()))
	})

	t.Run("missing token", func(t *testing.T) {
		w := ut.PerformRequest(h.Engine, http.MethodGet, "/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode())
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewMiddleware(Config{Secret: "other-secret"})
		require.NoError(t, err)
		forged, _, err := other.TokenGenerator(user)
		require.NoError(t, err)
		w := ut.PerformRequest(h.Engine, http.MethodGet, "/me", nil,
			ut.Header{Key: "Authorization", Value: "Bearer " + forged})
		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode())
	})

	t.Run("malformed identity", func(t *testing.T) {
		bad, _, err := mw.TokenGenerator("not-an-object-id")
		require.NoError(t, err)
		w := ut.PerformRequest(h.Engine, http.MethodGet, "/me", nil,
			ut.Header{Key: "Authorization", Value: "Bearer " + bad})
		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode())
	})
}

func TestNewMiddlewareRequiresSecret(t *testing.T) {
	_, err := NewMiddleware(Config{})
	assert.Error(t, err)
}
