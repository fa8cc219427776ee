package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/interaction/service"
	"vidtube.com/pkg/response"
)

func ListComment(ctx context.Context, c *app.RequestContext) {
	var req ListCommentParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewCommentService(ctx).ListComments(req.VideoId, req.Page, req.Limit)
	response.SendResponse(ctx, c, err, resp, "Comments fetched successfully")
}
