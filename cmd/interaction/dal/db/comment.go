package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"vidtube.com/cmd/model"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Omit(clause.Associations).Create(comment).Error; err != nil {
		return errors.WithMessage(err, "create comment")
	}
	return nil
}

// GetComment returns gorm.ErrRecordNotFound (wrapped) when the id is unknown.
func GetComment(ctx context.Context, commentId string) (*model.Comment, error) {
	comment := &model.Comment{}
	if err := DB.WithContext(ctx).Preload("Owner", withOwner).Where("id = ?", commentId).First(comment).Error; err != nil {
		return nil, errors.WithMessagef(err, "get comment %s", commentId)
	}
	return comment, nil
}

func UpdateCommentContent(ctx context.Context, commentId, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", commentId).Update("content", content).Error; err != nil {
		return errors.WithMessage(err, "update comment")
	}
	return nil
}

func DeleteComment(ctx context.Context, commentId string) (int64, error) {
	res := DB.WithContext(ctx).Where("id = ?", commentId).Delete(&model.Comment{})
	if res.Error != nil {
		return 0, errors.WithMessage(res.Error, "delete comment")
	}
	return res.RowsAffected, nil
}

// 获取视频的评论列表，最新的在前
func ListVideoComments(ctx context.Context, videoId string, offset, limit int) ([]*model.Comment, int64, error) {
	var total int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&total).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "count comments")
	}
	list := make([]*model.Comment, 0, limit)
	if total == 0 {
		return list, 0, nil
	}
	if err := DB.WithContext(ctx).Preload("Owner", withOwner).
		Where("video_id = ?", videoId).
		Order("created_at desc").Order("id desc").
		Offset(offset).Limit(limit).
		Find(&list).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "list comments")
	}
	return list, total, nil
}
