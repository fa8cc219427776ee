package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/interaction/infras/redis"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/check"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
)

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

type ToggleLikeResult struct {
	IsLiked bool        `json:"isLiked"`
	Like    *model.Like `json:"like"`
}

// ToggleLike flips the requester's like on one target.
func (service *LikeService) ToggleLike(kind, targetId, userId string) (*ToggleLikeResult, error) {
	if err := check.User(userId); err != nil {
		return nil, err
	}
	switch kind {
	case constants.LikeKindVideo, constants.LikeKindComment, constants.LikeKindTweet:
	default:
		return nil, errno.ParamErr.WithMessage("Unknown like target " + kind)
	}
	if err := check.ID(targetId, kind); err != nil {
		return nil, err
	}

	var result *ToggleLikeResult
	err := redis.WithLikeLock(service.ctx, userId, kind, targetId, func() error {
		var err error
		result, err = service.toggle(kind, targetId, userId)
		return err
	})
	if err != nil {
		return nil, err
	}
	mq.Emit(service.ctx, mq.NewLikeEvent(userId, kind, targetId, result.IsLiked))
	return result, nil
}

// toggle re-reads the pair whenever a concurrent writer got there first.
// The unique index on likes keeps at most one row per pair.
func (service *LikeService) toggle(kind, targetId, userId string) (*ToggleLikeResult, error) {
	for attempt := 0; attempt < constants.LikeToggleAttempts; attempt++ {
		existing, err := db.FindLike(service.ctx, userId, kind, targetId)
		if err != nil {
			return nil, check.DB(err, "Like not found")
		}
		if existing != nil {
			n, err := db.DeleteLike(service.ctx, existing.ID)
			if err != nil {
				return nil, check.DB(err, "Like not found")
			}
			if n > 0 {
				return &ToggleLikeResult{IsLiked: false, Like: existing}, nil
			}
			continue
		}

		like := &model.Like{LikedBy: userId, TargetKind: kind, TargetID: targetId}
		n, err := db.InsertLike(service.ctx, like)
		if err != nil {
			return nil, check.DB(err, "Like not found")
		}
		if n > 0 {
			return &ToggleLikeResult{IsLiked: true, Like: like}, nil
		}
		hlog.CtxInfof(service.ctx, "like %s/%s/%s raced, retrying", userId, kind, targetId)
	}
	return nil, errno.ServiceErr.WithMessage("Failed to toggle like, please retry")
}

// ListLikedVideos expands every video like of the requester, newest first.
func (service *LikeService) ListLikedVideos(userId string) ([]*model.LikedVideo, error) {
	if err := check.User(userId); err != nil {
		return nil, err
	}
	likes, err := db.ListVideoLikes(service.ctx, userId)
	if err != nil {
		return nil, check.DB(err, "Likes not found")
	}
	ids := make([]string, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.TargetID)
	}
	videos, err := db.GetVideoBriefs(service.ctx, ids)
	if err != nil {
		return nil, check.DB(err, "Videos not found")
	}
	out := make([]*model.LikedVideo, 0, len(likes))
	for _, l := range likes {
		out = append(out, &model.LikedVideo{
			ID:        l.ID,
			LikedBy:   l.LikedBy,
			CreatedAt: l.CreatedAt,
			Video:     videos[l.TargetID],
		})
	}
	return out, nil
}
