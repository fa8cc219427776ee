package middleware

import (
	"context"

	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"

	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/response"
)

// InitFlow starts sentinel and installs one inbound QPS rule per resource.
func InitFlow(qps float64, resources ...string) error {
	if err := sentinel.InitDefault(); err != nil {
		return errors.Wrap(err, "init sentinel")
	}
	rules := make([]*flow.Rule, 0, len(resources))
	for _, r := range resources {
		rules = append(rules, &flow.Rule{
			Resource:               r,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              qps,
			StatIntervalInMs:       1000,
		})
	}
	if _, err := flow.LoadRules(rules); err != nil {
		return errors.Wrap(err, "load flow rules")
	}
	hlog.Infof("sentinel flow rules loaded: %v at %.0f qps", resources, qps)
	return nil
}

// FlowControl rejects requests over the resource's QPS with 429.
func FlowControl(resource string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		entry, blocked := sentinel.Entry(resource, sentinel.WithTrafficType(base.Inbound))
		if blocked != nil {
			response.SendError(ctx, c, errno.Wrap(errno.TooManyRequestsErr, blocked))
			return
		}
		defer entry.Exit()
		c.Next(ctx)
	}
}
