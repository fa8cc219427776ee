package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidtube.com/cmd/model"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.WithMessage(err, "create playlist")
	}
	if playlist.Videos == nil {
		playlist.Videos = []string{}
	}
	return nil
}

func GetPlaylist(ctx context.Context, playlistId string) (*model.Playlist, error) {
	playlist := &model.Playlist{}
	if err := DB.WithContext(ctx).Where("id = ?", playlistId).First(playlist).Error; err != nil {
		return nil, errors.WithMessagef(err, "get playlist %s", playlistId)
	}
	if err := fillVideos(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func ListUserPlaylists(ctx context.Context, ownerId string) ([]*model.Playlist, error) {
	list := make([]*model.Playlist, 0)
	if err := DB.WithContext(ctx).Where("owner_id = ?", ownerId).
		Order("created_at desc").Order("id desc").
		Find(&list).Error; err != nil {
		return nil, errors.WithMessage(err, "list playlists")
	}
	for _, p := range list {
		if err := fillVideos(ctx, p); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func UpdatePlaylist(ctx context.Context, playlistId string, fields map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("id = ?", playlistId).Updates(fields).Error; err != nil {
		return errors.WithMessage(err, "update playlist")
	}
	return nil
}

// AddPlaylistVideo is a set insert: an existing membership is left untouched.
func AddPlaylistVideo(ctx context.Context, playlistId, videoId string) error {
	if err := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.PlaylistVideo{PlaylistID: playlistId, VideoID: videoId}).Error; err != nil {
		return errors.WithMessage(err, "add playlist video")
	}
	return nil
}

func RemovePlaylistVideo(ctx context.Context, playlistId, videoId string) error {
	if err := DB.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.WithMessage(err, "remove playlist video")
	}
	return nil
}

// DeletePlaylist removes the playlist and its memberships together.
func DeletePlaylist(ctx context.Context, playlistId string) (int64, error) {
	var affected int64
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", playlistId).Delete(&model.Playlist{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, errors.WithMessage(err, "delete playlist")
	}
	return affected, nil
}

// 按加入顺序取出播放列表中的视频
func fillVideos(ctx context.Context, playlist *model.Playlist) error {
	ids := make([]string, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlist.ID).
		Order("created_at asc").Order("video_id asc").
		Pluck("video_id", &ids).Error; err != nil {
		return errors.WithMessage(err, "list playlist videos")
	}
	playlist.Videos = ids
	return nil
}
