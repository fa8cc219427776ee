package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/check"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/utils"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// ListComments returns one page of a video's comments, newest first.
func (service *CommentService) ListComments(videoId string, page, limit int64) (*model.Page[*model.Comment], error) {
	if err := check.ID(videoId, "video"); err != nil {
		return nil, err
	}
	page, limit, offset, err := check.Page(page, limit)
	if err != nil {
		return nil, err
	}
	list, total, err := db.ListVideoComments(service.ctx, videoId, offset, int(limit))
	if err != nil {
		return nil, check.DB(err, "Video not found")
	}
	return model.NewPage(list, total, page, limit), nil
}

func (service *CommentService) AddComment(videoId, content, userId string) (*model.Comment, error) {
	if err := check.User(userId); err != nil {
		return nil, err
	}
	if err := check.ID(videoId, "video"); err != nil {
		return nil, err
	}
	if utils.IsBlank(content) {
		return nil, errno.ParamErr.WithMessage("Comment content is required")
	}

	comment := &model.Comment{
		Content: content,
		VideoID: videoId,
		OwnerID: userId,
	}
	if err := db.CreateComment(service.ctx, comment); err != nil {
		hlog.CtxErrorf(service.ctx, "create comment on video %s failed: %v", videoId, err)
		return nil, errno.ServiceErr.WithMessage("Failed to add comment")
	}
	mq.Emit(service.ctx, mq.NewCommentEvent(comment.ID, videoId, userId))

	created, err := db.GetComment(service.ctx, comment.ID)
	if err != nil {
		// the row exists; answer with what was written
		hlog.CtxWarnf(service.ctx, "reload comment %s failed: %v", comment.ID, err)
		return comment, nil
	}
	return created, nil
}

func (service *CommentService) UpdateComment(commentId, content, userId string) (*model.Comment, error) {
	if err := check.User(userId); err != nil {
		return nil, err
	}
	if err := check.ID(commentId, "comment"); err != nil {
		return nil, err
	}
	if utils.IsBlank(content) {
		return nil, errno.ParamErr.WithMessage("Comment content is required")
	}

	comment, err := db.GetComment(service.ctx, commentId)
	if err != nil {
		return nil, check.DB(err, "Comment not found")
	}
	if err = check.Owner(comment.OwnerID, userId, "update this comment"); err != nil {
		return nil, err
	}
	if err = db.UpdateCommentContent(service.ctx, commentId, content); err != nil {
		hlog.CtxErrorf(service.ctx, "update comment %s failed: %v", commentId, err)
		return nil, errno.ServiceErr.WithMessage("Failed to update comment")
	}
	updated, err := db.GetComment(service.ctx, commentId)
	if err != nil {
		return nil, check.DB(err, "Comment not found")
	}
	return updated, nil
}

// DeleteComment is owner-only and returns the removed row.
func (service *CommentService) DeleteComment(commentId, userId string) (*model.Comment, error) {
	if err := check.User(userId); err != nil {
		return nil, err
	}
	if err := check.ID(commentId, "comment"); err != nil {
		return nil, err
	}

	comment, err := db.GetComment(service.ctx, commentId)
	if err != nil {
		return nil, check.DB(err, "Comment not found")
	}
	if err = check.Owner(comment.OwnerID, userId, "delete this comment"); err != nil {
		return nil, err
	}
	n, err := db.DeleteComment(service.ctx, commentId)
	if err != nil || n == 0 {
		hlog.CtxErrorf(service.ctx, "delete comment %s failed: rows=%d err=%v", commentId, n, err)
		return nil, errno.ServiceErr.WithMessage("Failed to delete comment")
	}
	return comment, nil
}
