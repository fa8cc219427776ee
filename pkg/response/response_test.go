package response

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/pkg/errno"
)

func TestSendResponseEnvelopes(t *testing.T) {
	h := server.New()
	h.GET("/ok", func(ctx context.Context, c *app.RequestContext) {
		SendResponse(ctx, c, nil, map[string]string{"content": "nice video"}, "done")
	})
	h.GET("/missing", func(ctx context.Context, c *app.RequestContext) {
		SendResponse(ctx, c, errors.WithMessage(errno.NotFoundErr.WithMessage("Video not found"), "lookup"), nil, "")
	})
	h.GET("/boom", func(ctx context.Context, c *app.RequestContext) {
		SendError(ctx, c, errors.New("connection reset"))
	})
	h.GET("/db", func(ctx context.Context, c *app.RequestContext) {
		SendError(ctx, c, errno.Wrap(errno.MysqlErr, errors.New("no such table: videos")))
	})
	h.GET("/bind", func(ctx context.Context, c *app.RequestContext) {
		var req struct {
			Page int64 `query:"page"`
		}
		if err := Bind(c, &req); err != nil {
			SendError(ctx, c, err)
			return
		}
		SendResponse(ctx, c, nil, req.Page, "")
	})

	t.Run("success", func(t *testing.T) {
		w := ut.PerformRequest(h.Engine, http.MethodGet, "/ok", nil)
		resp := w.Result()
		require.Equal(t, http.StatusOK, resp.StatusCode())

		var body struct {
			StatusCode int               `json:"statusCode"`
			Data       map[string]string `json:"data"`
			Message    string            `json:"message"`
			Success    bool              `json:"success"`
		}
		require.NoError(t, json.Unmarshal(resp.Body(), &body))
		assert.Equal(t, 200, body.StatusCode)
		assert.True(t, body.Success)
		assert.Equal(t, "nice video", body.Data["content"])
		assert.Equal(t, "done", body.Message)
	})

	t.Run("typed error", func(t *testing.T) {
		w := ut.PerformRequest(h.Engine, http.MethodGet, "/missing", nil)
		resp := w.Result()
		require.Equal(t, http.StatusNotFound, resp.StatusCode())

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(resp.Body(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, http.StatusNotFound, body.StatusCode)
		assert.Equal(t, "Video not found", body.Message)
		assert.Empty(t, body.Errors)
	})

	t.Run("untyped error", func(t *testing.T) {
		w := ut.PerformRequest(h.Engine, http.MethodGet, "/boom", nil)
		resp := w.Result()
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode())

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(resp.Body(), &body))
		assert.Equal(t, "Internal server error", body.Message)
		assert.NotContains(t, string(resp.Body()), "connection reset")
		assert.Empty(t, body.Errors)
	})

	t.Run("wrapped db error", func(t *testing.T) {
		w := ut.PerformRequest(h.Engine, http.MethodGet, "/db", nil)
		resp := w.Result()
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode())
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(resp.Body(), &body))
		assert.Equal(t, errno.MysqlErr.ErrMsg, body.Message)
		assert.Empty(t, body.Errors)
		assert.NotContains(t, string(resp.Body()), "no such table")
		assert.NotContains(t, string(resp.Body()), "err_code")
	})

	t.Run("bind detail", func(t *testing.T) {
		w := ut.PerformRequest(h.Engine, http.MethodGet, "/bind?page=abc", nil)
		resp := w.Result()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode())
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(resp.Body(), &body))
		assert.Equal(t, "Invalid request parameters", body.Message)
		assert.Len(t, body.Errors, 1)
	})
}
