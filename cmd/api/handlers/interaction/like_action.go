package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/interaction/service"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/response"
)

func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, constants.LikeKindVideo, func(p *LikeParam) string { return p.VideoId })
}

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, constants.LikeKindComment, func(p *LikeParam) string { return p.CommentId })
}

func ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, constants.LikeKindTweet, func(p *LikeParam) string { return p.TweetId })
}

func toggleLike(ctx context.Context, c *app.RequestContext, kind string, target func(*LikeParam) string) {
	var req LikeParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewLikeService(ctx).ToggleLike(kind, target(&req), jwt.GetUserID(c))
	message := "Liked successfully"
	if err == nil && !resp.IsLiked {
		message = "Unliked successfully"
	}
	response.SendResponse(ctx, c, err, resp, message)
}

func LikedVideos(ctx context.Context, c *app.RequestContext) {
	resp, err := service.NewLikeService(ctx).ListLikedVideos(jwt.GetUserID(c))
	response.SendResponse(ctx, c, err, resp, "Liked videos fetched successfully")
}
