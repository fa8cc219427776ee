package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
)

func TestFlowControlRejects(t *testing.T) {
	// a zero threshold blocks every entry, which keeps the test independent of timing
	if err := InitFlow(0, "test-blocked"); err != nil {
		t.Skipf("sentinel unavailable in this environment: %v", err)
	}
	h := server.New()
	h.GET("/limited", FlowControl("test-blocked"), func(ctx context.Context, c *app.RequestContext) {
		c.String(http.StatusOK, "ok")
	})
	h.GET("/free", FlowControl("test-unruled"), func(ctx context.Context, c *app.RequestContext) {
		c.String(http.StatusOK, "ok")
	})

	if code := ut.PerformRequest(h.Engine, http.MethodGet, "/limited", nil).Result().StatusCode(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
	if code := ut.PerformRequest(h.Engine, http.MethodGet, "/free", nil).Result().StatusCode(); code != http.StatusOK {
		t.Fatalf("expected 200 for a resource without rules, got %d", code)
	}
}
