package db

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidtube.com/cmd/model"
)

// VideoFilter selects a page of published videos.
type VideoFilter struct {
	Query   string
	OwnerId string
	SortBy  string // column name
	Desc    bool
	Offset  int
	Limit   int
}

func CreateVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Omit(clause.Associations).Create(video).Error; err != nil {
		return errors.WithMessage(err, "create video")
	}
	return nil
}

func GetVideo(ctx context.Context, videoId string) (*model.Video, error) {
	video := &model.Video{}
	if err := DB.WithContext(ctx).Preload("Owner", withOwner).Where("id = ?", videoId).First(video).Error; err != nil {
		return nil, errors.WithMessagef(err, "get video %s", videoId)
	}
	return video, nil
}

func VideoExists(ctx context.Context, videoId string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("id = ?", videoId).Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "check video")
	}
	return count != 0, nil
}

func ListVideos(ctx context.Context, f VideoFilter) ([]*model.Video, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("is_published = ?", true)
		if f.OwnerId != "" {
			db = db.Where("owner_id = ?", f.OwnerId)
		}
		if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
			like := "%" + q + "%"
			db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
		}
		return db
	}

	var total int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "count videos")
	}
	list := make([]*model.Video, 0, f.Limit)
	if total == 0 {
		return list, 0, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Scopes(scope).
		Preload("Owner", withOwner).
		Order(clause.OrderByColumn{Column: clause.Column{Name: f.SortBy}, Desc: f.Desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: f.Desc}).
		Offset(f.Offset).Limit(f.Limit).
		Find(&list).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "list videos")
	}
	return list, total, nil
}

func UpdateVideo(ctx context.Context, videoId string, fields map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("id = ?", videoId).Updates(fields).Error; err != nil {
		return errors.WithMessage(err, "update video")
	}
	return nil
}

// ToggleVideoPublish flips the flag in one statement so concurrent flips never collapse.
func ToggleVideoPublish(ctx context.Context, videoId string) (int64, error) {
	res := DB.WithContext(ctx).Model(&model.Video{}).Where("id = ?", videoId).
		Update("is_published", gorm.Expr("NOT is_published"))
	if res.Error != nil {
		return 0, errors.WithMessage(res.Error, "toggle publish")
	}
	return res.RowsAffected, nil
}

func DeleteVideo(ctx context.Context, videoId string) (int64, error) {
	res := DB.WithContext(ctx).Where("id = ?", videoId).Delete(&model.Video{})
	if res.Error != nil {
		return 0, errors.WithMessage(res.Error, "delete video")
	}
	return res.RowsAffected, nil
}
