package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"vidtube.com/cmd/model"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := DB.WithContext(ctx).Omit(clause.Associations).Create(tweet).Error; err != nil {
		return errors.WithMessage(err, "create tweet")
	}
	return nil
}

func GetTweet(ctx context.Context, tweetId string) (*model.Tweet, error) {
	tweet := &model.Tweet{}
	if err := DB.WithContext(ctx).Preload("Owner", withOwner).Where("id = ?", tweetId).First(tweet).Error; err != nil {
		return nil, errors.WithMessagef(err, "get tweet %s", tweetId)
	}
	return tweet, nil
}

func ListUserTweets(ctx context.Context, ownerId string) ([]*model.Tweet, error) {
	list := make([]*model.Tweet, 0)
	if err := DB.WithContext(ctx).Preload("Owner", withOwner).
		Where("owner_id = ?", ownerId).
		Order("created_at desc").Order("id desc").
		Find(&list).Error; err != nil {
		return nil, errors.WithMessage(err, "list tweets")
	}
	return list, nil
}

func UpdateTweetContent(ctx context.Context, tweetId, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("id = ?", tweetId).Update("content", content).Error; err != nil {
		return errors.WithMessage(err, "update tweet")
	}
	return nil
}

func DeleteTweet(ctx context.Context, tweetId string) (int64, error) {
	res := DB.WithContext(ctx).Where("id = ?", tweetId).Delete(&model.Tweet{})
	if res.Error != nil {
		return 0, errors.WithMessage(res.Error, "delete tweet")
	}
	return res.RowsAffected, nil
}
