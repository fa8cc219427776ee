package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/interaction/service"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/response"
)

func CreateComment(ctx context.Context, c *app.RequestContext) {
	var req CreateCommentParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewCommentService(ctx).AddComment(req.VideoId, req.Content, jwt.GetUserID(c))
	response.SendResponse(ctx, c, err, resp, "Comment added successfully")
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var req UpdateCommentParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewCommentService(ctx).UpdateComment(req.CommentId, req.Content, jwt.GetUserID(c))
	response.SendResponse(ctx, c, err, resp, "Comment updated successfully")
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	var req DeleteCommentParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewCommentService(ctx).DeleteComment(req.CommentId, jwt.GetUserID(c))
	response.SendResponse(ctx, c, err, resp, "Comment deleted successfully")
}
