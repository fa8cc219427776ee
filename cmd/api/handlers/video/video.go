package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/video/service"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/response"
)

func ListVideos(ctx context.Context, c *app.RequestContext) {
	var req ListVideoParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewVideoService(ctx).ListVideos(&service.ListVideosRequest{
		Page:     req.Page,
		Limit:    req.Limit,
		Query:    req.Query,
		SortBy:   req.SortBy,
		SortType: req.SortType,
		UserId:   req.UserId,
	})
	response.SendResponse(ctx, c, err, resp, "Videos fetched successfully")
}

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	if userId == "" {
		response.SendError(ctx, c, errno.AuthorizationFailedErr.WithMessage("Unauthorized request"))
		return
	}
	videoPath, err := saveFormFile(c, constants.VideoFileField)
	defer func() { cleanup(videoPath) }()
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	thumbnailPath, err := saveFormFile(c, constants.ThumbnailFileField)
	defer func() { cleanup(thumbnailPath) }()
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}

	resp, err := service.NewVideoService(ctx).PublishVideo(&service.PublishVideoRequest{
		Title:         string(c.FormValue("title")),
		Description:   string(c.FormValue("description")),
		VideoFilePath: videoPath,
		ThumbnailPath: thumbnailPath,
		OwnerId:       userId,
	})
	response.SendResponse(ctx, c, err, resp, "Video published successfully")
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
	var req VideoIdParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewVideoService(ctx).GetVideo(req.VideoId)
	response.SendResponse(ctx, c, err, resp, "Video fetched successfully")
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	userId := jwt.GetUserID(c)
	if userId == "" {
		response.SendError(ctx, c, errno.AuthorizationFailedErr.WithMessage("Unauthorized request"))
		return
	}
	var req VideoIdParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	thumbnailPath, err := saveFormFile(c, constants.ThumbnailFileField)
	defer func() { cleanup(thumbnailPath) }()
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}

	resp, err := service.NewVideoService(ctx).UpdateVideo(&service.UpdateVideoRequest{
		VideoId:       req.VideoId,
		Title:         string(c.FormValue("title")),
		Description:   string(c.FormValue("description")),
		ThumbnailPath: thumbnailPath,
		UserId:        userId,
	})
	response.SendResponse(ctx, c, err, resp, "Video updated successfully")
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	var req VideoIdParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	err := service.NewVideoService(ctx).DeleteVideo(req.VideoId, jwt.GetUserID(c))
	response.SendResponse(ctx, c, err, map[string]interface{}{}, "Video deleted successfully")
}

func TogglePublish(ctx context.Context, c *app.RequestContext) {
	var req VideoIdParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	resp, err := service.NewVideoService(ctx).TogglePublish(req.VideoId, jwt.GetUserID(c))
	response.SendResponse(ctx, c, err, resp, "Publish status toggled successfully")
}
