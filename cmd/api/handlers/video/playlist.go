package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/video/service"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/response"
)

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var req CreatePlaylistParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewPlaylistService(ctx).CreatePlaylist(req.Name, req.Description, jwt.GetUserID(c))
	response.SendResponse(ctx, c, err, resp, "Playlist created successfully")
}

func UserPlaylists(ctx context.Context, c *app.RequestContext) {
	var req UserPlaylistParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewPlaylistService(ctx).ListUserPlaylists(req.UserId)
	response.SendResponse(ctx, c, err, resp, "Playlists fetched successfully")
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	var req PlaylistIdParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewPlaylistService(ctx).GetPlaylist(req.PlaylistId)
	response.SendResponse(ctx, c, err, resp, "Playlist fetched successfully")
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	var req PlaylistVideoParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewPlaylistService(ctx).AddVideo(req.PlaylistId, req.VideoId, jwt.GetUserID(c))
	response.SendResponse(ctx, c, err, resp, "Video added to playlist")
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	var req PlaylistVideoParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewPlaylistService(ctx).RemoveVideo(req.PlaylistId, req.VideoId, jwt.GetUserID(c))
	response.SendResponse(ctx, c, err, resp, "Video removed from playlist")
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	var req UpdatePlaylistParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewPlaylistService(ctx).UpdatePlaylist(req.PlaylistId, req.Name, req.Description, jwt.GetUserID(c))
	response.SendResponse(ctx, c, err, resp, "Playlist updated successfully")
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	var req PlaylistIdParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewPlaylistService(ctx).DeletePlaylist(req.PlaylistId, jwt.GetUserID(c))
	response.SendResponse(ctx, c, err, resp, "Playlist deleted successfully")
}
