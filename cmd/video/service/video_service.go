package service

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/cmd/video/infras/redis"
	"vidtube.com/pkg/check"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/utils"
)

type VideoService struct {
	ctx context.Context
}

func NewVideoService(ctx context.Context) *VideoService {
	return &VideoService{ctx: ctx}
}

type ListVideosRequest struct {
	Page     int64
	Limit    int64
	Query    string
	SortBy   string
	SortType string
	UserId   string
}

type PublishVideoRequest struct {
	Title         string
	Description   string
	VideoFilePath string
	ThumbnailPath string
	OwnerId       string
}

type UpdateVideoRequest struct {
	VideoId       string
	Title         string
	Description   string
	ThumbnailPath string
	UserId        string
}

// ListVideos pages through published videos.
func (service *VideoService) ListVideos(req *ListVideosRequest) (*model.Page[*model.Video], error) {
	f := db.VideoFilter{Query: req.Query, Desc: true, SortBy: "created_at"}
	if req.UserId != "" {
		if err := check.ID(req.UserId, "user"); err != nil {
			return nil, err
		}
		f.OwnerId = req.UserId
	}
	if req.SortBy != "" {
		col, ok := constants.VideoSortColumns[req.SortBy]
		if !ok {
			return nil, errno.ParamErr.WithMessage("Unsupported sortBy " + req.SortBy)
		}
		f.SortBy = col
	}
	switch strings.ToLower(req.SortType) {
	case "", "desc":
	case "asc":
		f.Desc = false
	default:
		return nil, errno.ParamErr.WithMessage("sortType must be asc or desc")
	}

	page, limit, offset, err := check.Page(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	f.Offset, f.Limit = offset, int(limit)
	list, total, err := db.ListVideos(service.ctx, f)
	if err != nil {
		return nil, check.DB(err, "Videos not found")
	}
	return model.NewPage(list, total, page, limit), nil
}

// PublishVideo uploads both files and stores the video. A thumbnail failure
// after a successful video upload leaves the video object in storage.
func (service *VideoService) PublishVideo(req *PublishVideoRequest) (*model.Video, error) {
	if err := check.User(req.OwnerId); err != nil {
		return nil, err
	}
	if utils.IsBlank(req.Title) || utils.IsBlank(req.Description) {
		return nil, errno.ParamErr.WithMessage("Title and description are required")
	}
	if req.VideoFilePath == "" {
		return nil, errno.ParamErr.WithMessage("Video file is required")
	}
	if req.ThumbnailPath == "" {
		return nil, errno.ParamErr.WithMessage("Thumbnail is required")
	}

	videoFile, err := upload(service.ctx, req.VideoFilePath)
	if err != nil {
		return nil, err
	}
	thumbnail, err := upload(service.ctx, req.ThumbnailPath)
	if err != nil {
		hlog.CtxWarnf(service.ctx, "thumbnail upload failed, video object %s left in storage", videoFile.URL)
		return nil, err
	}

	video := &model.Video{
		VideoFile:   videoFile.URL,
		Thumbnail:   thumbnail.URL,
		Title:       req.Title,
		Description: req.Description,
		Duration:    videoFile.Duration,
		IsPublished: true,
		OwnerID:     req.OwnerId,
	}
	if err = db.CreateVideo(service.ctx, video); err != nil {
		hlog.CtxErrorf(service.ctx, "create video failed: %v", err)
		return nil, errno.ServiceErr.WithMessage("Failed to publish video")
	}
	mq.Emit(service.ctx, mq.NewVideoEvent(mq.VideoPublished, video.ID, req.OwnerId))

	created, err := db.GetVideo(service.ctx, video.ID)
	if err != nil {
		return nil, check.DB(err, "Video not found")
	}
	return created, nil
}

// GetVideo reads through the detail cache.
func (service *VideoService) GetVideo(videoId string) (*model.Video, error) {
	if err := check.ID(videoId, "video"); err != nil {
		return nil, err
	}
	cached, err := redis.GetVideoInfo(service.ctx, videoId)
	if err != nil {
		hlog.CtxWarnf(service.ctx, "video cache read failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	video, err := db.GetVideo(service.ctx, videoId)
	if err != nil {
		return nil, check.DB(err, "Video not found")
	}
	if err = redis.PutVideoInfo(service.ctx, video); err != nil {
		hlog.CtxWarnf(service.ctx, "video cache write failed: %v", err)
	}
	return video, nil
}

func (service *VideoService) UpdateVideo(req *UpdateVideoRequest) (*model.Video, error) {
	if err := check.User(req.UserId); err != nil {
		return nil, err
	}
	if err := check.ID(req.VideoId, "video"); err != nil {
		return nil, err
	}
	if utils.IsBlank(req.Title) || utils.IsBlank(req.Description) {
		return nil, errno.ParamErr.WithMessage("Title and description are required")
	}
	if req.ThumbnailPath == "" {
		return nil, errno.ParamErr.WithMessage("Thumbnail is required")
	}

	video, err := service.owned(req.VideoId, req.UserId, "update this video")
	if err != nil {
		return nil, err
	}
	thumbnail, err := upload(service.ctx, req.ThumbnailPath)
	if err != nil {
		return nil, err
	}
	if err = db.UpdateVideo(service.ctx, video.ID, map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"thumbnail":   thumbnail.URL,
	}); err != nil {
		hlog.CtxErrorf(service.ctx, "update video %s failed: %v", video.ID, err)
		return nil, errno.ServiceErr.WithMessage("Failed to update video")
	}
	return service.reload(video.ID)
}

func (service *VideoService) DeleteVideo(videoId, userId string) error {
	if err := check.User(userId); err != nil {
		return err
	}
	if err := check.ID(videoId, "video"); err != nil {
		return err
	}
	if _, err := service.owned(videoId, userId, "delete this video"); err != nil {
		return err
	}
	n, err := db.DeleteVideo(service.ctx, videoId)
	if err != nil || n == 0 {
		hlog.CtxErrorf(service.ctx, "delete video %s failed: rows=%d err=%v", videoId, n, err)
		return errno.ServiceErr.WithMessage("Failed to delete video")
	}
	service.invalidate(videoId)
	mq.Emit(service.ctx, mq.NewVideoEvent(mq.VideoDeleted, videoId, userId))
	return nil
}

func (service *VideoService) TogglePublish(videoId, userId string) (*model.Video, error) {
	if err := check.User(userId); err != nil {
		return nil, err
	}
	if err := check.ID(videoId, "video"); err != nil {
		return nil, err
	}
	if _, err := service.owned(videoId, userId, "change this video"); err != nil {
		return nil, err
	}
	n, err := db.ToggleVideoPublish(service.ctx, videoId)
	if err != nil || n == 0 {
		hlog.CtxErrorf(service.ctx, "toggle publish %s failed: rows=%d err=%v", videoId, n, err)
		return nil, errno.ServiceErr.WithMessage("Failed to toggle publish status")
	}
	return service.reload(videoId)
}

// owned loads a video from the database and checks the requester owns it.
func (service *VideoService) owned(videoId, userId, action string) (*model.Video, error) {
	video, err := db.GetVideo(service.ctx, videoId)
	if err != nil {
		return nil, check.DB(err, "Video not found")
	}
	if err = check.Owner(video.OwnerID, userId, action); err != nil {
		return nil, err
	}
	return video, nil
}

func (service *VideoService) reload(videoId string) (*model.Video, error) {
	service.invalidate(videoId)
	video, err := db.GetVideo(service.ctx, videoId)
	if err != nil {
		return nil, check.DB(err, "Video not found")
	}
	return video, nil
}

func (service *VideoService) invalidate(videoId string) {
	if err := redis.DelVideoInfo(service.ctx, videoId); err != nil {
		hlog.CtxWarnf(service.ctx, "video cache invalidation failed: %v", err)
	}
}
