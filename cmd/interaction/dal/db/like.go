package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

// FindLike returns nil without error when the pair has no row.
func FindLike(ctx context.Context, likedBy, kind, targetId string) (*model.Like, error) {
	var likes []*model.Like
	if err := DB.WithContext(ctx).
		Where("liked_by = ? AND target_kind = ? AND target_id = ?", likedBy, kind, targetId).
		Limit(1).Find(&likes).Error; err != nil {
		return nil, errors.WithMessage(err, "find like")
	}
	if len(likes) == 0 {
		return nil, nil
	}
	return likes[0], nil
}

// InsertLike reports 0 rows when a concurrent writer already holds the pair.
func InsertLike(ctx context.Context, like *model.Like) (int64, error) {
	res := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if res.Error != nil {
		return 0, errors.WithMessage(res.Error, "insert like")
	}
	return res.RowsAffected, nil
}

func DeleteLike(ctx context.Context, likeId string) (int64, error) {
	res := DB.WithContext(ctx).Where("id = ?", likeId).Delete(&model.Like{})
	if res.Error != nil {
		return 0, errors.WithMessage(res.Error, "delete like")
	}
	return res.RowsAffected, nil
}

func CountLikes(ctx context.Context, likedBy, kind, targetId string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("liked_by = ? AND target_kind = ? AND target_id = ?", likedBy, kind, targetId).
		Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "count likes")
	}
	return count, nil
}

// 获取用户喜欢的视频列表
func ListVideoLikes(ctx context.Context, likedBy string) ([]*model.Like, error) {
	list := make([]*model.Like, 0)
	if err := DB.WithContext(ctx).
		Where("liked_by = ? AND target_kind = ?", likedBy, constants.LikeKindVideo).
		Order("created_at desc").Order("id desc").
		Find(&list).Error; err != nil {
		return nil, errors.WithMessage(err, "list video likes")
	}
	return list, nil
}

// GetVideoBriefs loads the liked-video projection keyed by id.
func GetVideoBriefs(ctx context.Context, videoIds []string) (map[string]*model.VideoBrief, error) {
	out := make(map[string]*model.VideoBrief, len(videoIds))
	if len(videoIds) == 0 {
		return out, nil
	}
	var briefs []*model.VideoBrief
	if err := DB.WithContext(ctx).Model(&model.VideoBrief{}).
		Select("id", "title", "description", "views", "owner_id").
		Where("id IN ?", videoIds).
		Find(&briefs).Error; err != nil {
		return nil, errors.WithMessage(err, "get liked videos")
	}
	for _, b := range briefs {
		out[b.ID] = b
	}
	return out, nil
}
