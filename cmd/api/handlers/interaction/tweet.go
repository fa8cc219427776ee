package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/interaction/service"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/response"
)

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	var req CreateTweetParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewTweetService(ctx).CreateTweet(req.Content, jwt.GetUserID(c))
	response.SendResponse(ctx, c, err, resp, "Tweet created successfully")
}

func UserTweets(ctx context.Context, c *app.RequestContext) {
	var req UserTweetsParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewTweetService(ctx).ListUserTweets(req.UserId)
	response.SendResponse(ctx, c, err, resp, "Tweets fetched successfully")
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	var req UpdateTweetParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewTweetService(ctx).UpdateTweet(req.TweetId, req.Content, jwt.GetUserID(c))
	response.SendResponse(ctx, c, err, resp, "Tweet updated successfully")
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	var req DeleteTweetParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewTweetService(ctx).DeleteTweet(req.TweetId, jwt.GetUserID(c))
	response.SendResponse(ctx, c, err, resp, "Tweet deleted successfully")
}
