package mq

import (
	"time"

	"github.com/google/uuid"
)

const (
	// 交换机名称
	EventExchange = "vidtube_events"

	// 队列名称
	InteractionEventQueue = "interaction_event_queue"
	VideoEventQueue       = "video_event_queue"
)

// Routing keys.
const (
	CommentCreated = "comment.created"
	LikeToggled    = "like.toggled"
	VideoPublished = "video.published"
	VideoDeleted   = "video.deleted"
)

var queueBindings = map[string][]string{
	InteractionEventQueue: {"comment.*", "like.*"},
	VideoEventQueue:       {"video.*"},
}

// Event is anything that can be routed on the events exchange.
type Event interface {
	RoutingKey() string
}

// CommentEvent 评论事件
type CommentEvent struct {
	EventID   string `json:"event_id"`
	CommentID string `json:"comment_id"`
	VideoID   string `json:"video_id"`
	UserID    string `json:"user_id"`
	Timestamp int64  `json:"timestamp"`
}

func (CommentEvent) RoutingKey() string { return CommentCreated }

func NewCommentEvent(commentId, videoId, userId string) *CommentEvent {
	return &CommentEvent{
		EventID:   uuid.NewString(),
		CommentID: commentId,
		VideoID:   videoId,
		UserID:    userId,
		Timestamp: time.Now().Unix(),
	}
}

// LikeEvent 点赞事件
type LikeEvent struct {
	EventID    string `json:"event_id"`
	UserID     string `json:"user_id"`
	TargetKind string `json:"target_kind"`
	TargetID   string `json:"target_id"`
	ActionType string `json:"action_type"` // "like" or "unlike"
	Timestamp  int64  `json:"timestamp"`
}

func (LikeEvent) RoutingKey() string { return LikeToggled }

func NewLikeEvent(userId, kind, targetId string, liked bool) *LikeEvent {
	action := "unlike"
	if liked {
		action = "like"
	}
	return &LikeEvent{
		EventID:    uuid.NewString(),
		UserID:     userId,
		TargetKind: kind,
		TargetID:   targetId,
		ActionType: action,
		Timestamp:  time.Now().Unix(),
	}
}

// VideoEvent 视频事件
type VideoEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	VideoID   string `json:"video_id"`
	UserID    string `json:"user_id"`
	Timestamp int64  `json:"timestamp"`
}

func (e VideoEvent) RoutingKey() string { return e.Type }

func NewVideoEvent(typ, videoId, userId string) *VideoEvent {
	return &VideoEvent{
		EventID:   uuid.NewString(),
		Type:      typ,
		VideoID:   videoId,
		UserID:    userId,
		Timestamp: time.Now().Unix(),
	}
}
