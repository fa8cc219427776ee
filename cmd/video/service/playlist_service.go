package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/check"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

func (service *PlaylistService) CreatePlaylist(name, description, userId string) (*model.Playlist, error) {
	if err := check.User(userId); err != nil {
		return nil, err
	}
	if utils.IsBlank(name) || utils.IsBlank(description) {
		return nil, errno.ParamErr.WithMessage("Name and description are required")
	}
	playlist := &model.Playlist{Name: name, Description: description, OwnerID: userId}
	if err := db.CreatePlaylist(service.ctx, playlist); err != nil {
		hlog.CtxErrorf(service.ctx, "create playlist failed: %v", err)
		return nil, errno.ServiceErr.WithMessage("Failed to create playlist")
	}
	return playlist, nil
}

func (service *PlaylistService) ListUserPlaylists(userId string) ([]*model.Playlist, error) {
	if err := check.ID(userId, "user"); err != nil {
		return nil, err
	}
	list, err := db.ListUserPlaylists(service.ctx, userId)
	if err != nil {
		return nil, check.DB(err, "Playlists not found")
	}
	return list, nil
}

func (service *PlaylistService) GetPlaylist(playlistId string) (*model.Playlist, error) {
	if err := check.ID(playlistId, "playlist"); err != nil {
		return nil, err
	}
	playlist, err := db.GetPlaylist(service.ctx, playlistId)
	if err != nil {
		return nil, check.DB(err, "Playlist not found")
	}
	return playlist, nil
}

// AddVideo is idempotent: a video already in the playlist stays there once.
func (service *PlaylistService) AddVideo(playlistId, videoId, userId string) (*model.Playlist, error) {
	if err := check.User(userId); err != nil {
		return nil, err
	}
	if !utils.IsValidID(playlistId) || !utils.IsValidID(videoId) {
		return nil, errno.ParamErr.WithMessage("Invalid playlist or video id")
	}
	if _, err := service.owned(playlistId, userId, "modify this playlist"); err != nil {
		return nil, err
	}
	exists, err := db.VideoExists(service.ctx, videoId)
	if err != nil {
		return nil, check.DB(err, "Video not found")
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("Video not found")
	}
	if err = db.AddPlaylistVideo(service.ctx, playlistId, videoId); err != nil {
		hlog.CtxErrorf(service.ctx, "add video %s to playlist %s failed: %v", videoId, playlistId, err)
		return nil, errno.ServiceErr.WithMessage("Failed to add video to playlist")
	}
	return service.GetPlaylist(playlistId)
}

func (service *PlaylistService) RemoveVideo(playlistId, videoId, userId string) (*model.Playlist, error) {
	if err := check.User(userId); err != nil {
		return nil, err
	}
	if !utils.IsValidID(playlistId) || !utils.IsValidID(videoId) {
		return nil, errno.ParamErr.WithMessage("Invalid playlist or video id")
	}
	if _, err := service.owned(playlistId, userId, "modify this playlist"); err != nil {
		return nil, err
	}
	if err := db.RemovePlaylistVideo(service.ctx, playlistId, videoId); err != nil {
		hlog.CtxErrorf(service.ctx, "remove video %s from playlist %s failed: %v", videoId, playlistId, err)
		return nil, errno.ServiceErr.WithMessage("Failed to remove video from playlist")
	}
	return service.GetPlaylist(playlistId)
}

func (service *PlaylistService) DeletePlaylist(playlistId, userId string) (*model.Playlist, error) {
	if err := check.User(userId); err != nil {
		return nil, err
	}
	if err := check.ID(playlistId, "playlist"); err != nil {
		return nil, err
	}
	playlist, err := service.owned(playlistId, userId, "delete this playlist")
	if err != nil {
		return nil, err
	}
	n, err := db.DeletePlaylist(service.ctx, playlistId)
	if err != nil || n == 0 {
		hlog.CtxErrorf(service.ctx, "delete playlist %s failed: rows=%d err=%v", playlistId, n, err)
		return nil, errno.ServiceErr.WithMessage("Failed to delete playlist")
	}
	return playlist, nil
}

// UpdatePlaylist changes the non-blank fields; at least one is required.
func (service *PlaylistService) UpdatePlaylist(playlistId, name, description, userId string) (*model.Playlist, error) {
	if err := check.User(userId); err != nil {
		return nil, err
	}
	if utils.IsBlank(name) && utils.IsBlank(description) {
		return nil, errno.ParamErr.WithMessage("Name or description is required")
	}
	if err := check.ID(playlistId, "playlist"); err != nil {
		return nil, err
	}
	if _, err := service.owned(playlistId, userId, "update this playlist"); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if !utils.IsBlank(name) {
		fields["name"] = name
	}
	if !utils.IsBlank(description) {
		fields["description"] = description
	}
	if err := db.UpdatePlaylist(service.ctx, playlistId, fields); err != nil {
		hlog.CtxErrorf(service.ctx, "update playlist %s failed: %v", playlistId, err)
		return nil, errno.ServiceErr.WithMessage("Failed to update playlist")
	}
	return service.GetPlaylist(playlistId)
}

func (service *PlaylistService) owned(playlistId, userId, action string) (*model.Playlist, error) {
	playlist, err := db.GetPlaylist(service.ctx, playlistId)
	if err != nil {
		return nil, check.DB(err, "Playlist not found")
	}
	if err = check.Owner(playlist.OwnerID, userId, action); err != nil {
		return nil, err
	}
	return playlist, nil
}
