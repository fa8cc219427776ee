package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/pkg/database/dbtest"
)

func decode(t *testing.T, body []byte) Status {
	t.Helper()
	var env struct {
		Data Status `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	return env.Data
}

func TestHealthCheck(t *testing.T) {
	h := server.New()
	h.GET("/healthcheck", HealthCheck)

	t.Run("all up", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer rdb.Close()
		Init(dbtest.Open(t), rdb)

		w := ut.PerformRequest(h.Engine, http.MethodGet, "/healthcheck", nil)
		require.Equal(t, http.StatusOK, w.Result().StatusCode())
		s := decode(t, w.Result().Body())
		assert.Equal(t, "ok", s.Status)
		assert.Equal(t, "up", s.DB)
		assert.Equal(t, "up", s.Redis)
	})

	t.Run("missing dependencies", func(t *testing.T) {
		Init(nil, nil)
		w := ut.PerformRequest(h.Engine, http.MethodGet, "/healthcheck", nil)
		require.Equal(t, http.StatusOK, w.Result().StatusCode())
		s := decode(t, w.Result().Body())
		assert.Equal(t, "degraded", s.Status)
		assert.Equal(t, "down", s.DB)
		assert.Equal(t, "disabled", s.Redis)
	})
}
