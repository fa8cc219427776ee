package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/check"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (service *TweetService) CreateTweet(content, userId string) (*model.Tweet, error) {
	if err := check.User(userId); err != nil {
		return nil, err
	}
	if utils.IsBlank(content) {
		return nil, errno.ParamErr.WithMessage("Tweet content is required")
	}
	tweet := &model.Tweet{Content: content, OwnerID: userId}
	if err := db.CreateTweet(service.ctx, tweet); err != nil {
		hlog.CtxErrorf(service.ctx, "create tweet failed: %v", err)
		return nil, errno.ServiceErr.WithMessage("Failed to create tweet")
	}
	created, err := db.GetTweet(service.ctx, tweet.ID)
	if err != nil {
		return nil, check.DB(err, "Tweet not found")
	}
	return created, nil
}

func (service *TweetService) ListUserTweets(userId string) ([]*model.Tweet, error) {
	if err := check.ID(userId, "user"); err != nil {
		return nil, err
	}
	list, err := db.ListUserTweets(service.ctx, userId)
	if err != nil {
		return nil, check.DB(err, "Tweets not found")
	}
	return list, nil
}

func (service *TweetService) UpdateTweet(tweetId, content, userId string) (*model.Tweet, error) {
	if err := check.User(userId); err != nil {
		return nil, err
	}
	if err := check.ID(tweetId, "tweet"); err != nil {
		return nil, err
	}
	if utils.IsBlank(content) {
		return nil, errno.ParamErr.WithMessage("Tweet content is required")
	}

	tweet, err := db.GetTweet(service.ctx, tweetId)
	if err != nil {
		return nil, check.DB(err, "Tweet not found")
	}
	if err = check.Owner(tweet.OwnerID, userId, "update this tweet"); err != nil {
		return nil, err
	}
	if err = db.UpdateTweetContent(service.ctx, tweetId, content); err != nil {
		hlog.CtxErrorf(service.ctx, "update tweet %s failed: %v", tweetId, err)
		return nil, errno.ServiceErr.WithMessage("Failed to update tweet")
	}
	updated, err := db.GetTweet(service.ctx, tweetId)
	if err != nil {
		return nil, check.DB(err, "Tweet not found")
	}
	return updated, nil
}

func (service *TweetService) DeleteTweet(tweetId, userId string) (*model.Tweet, error) {
	if err := check.User(userId); err != nil {
		return nil, err
	}
	if err := check.ID(tweetId, "tweet"); err != nil {
		return nil, err
	}

	tweet, err := db.GetTweet(service.ctx, tweetId)
	if err != nil {
		return nil, check.DB(err, "Tweet not found")
	}
	if err = check.Owner(tweet.OwnerID, userId, "delete this tweet"); err != nil {
		return nil, err
	}
	n, err := db.DeleteTweet(service.ctx, tweetId)
	if err != nil || n == 0 {
		hlog.CtxErrorf(service.ctx, "delete tweet %s failed: rows=%d err=%v", tweetId, n, err)
		return nil, errno.ServiceErr.WithMessage("Failed to delete tweet")
	}
	return tweet, nil
}
