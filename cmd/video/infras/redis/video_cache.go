package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"vidtube.com/cmd/model"
)

// 视频详情缓存键
const VideoDetailKey = "video:detail:%s"

var (
	redisDBVideoInfo *redis.Client
	videoInfoTTL     time.Duration
)

// Load wires the shared client; a nil client disables the cache.
func Load(client *redis.Client, ttl time.Duration) {
	redisDBVideoInfo = client
	videoInfoTTL = ttl
	if videoInfoTTL <= 0 {
		videoInfoTTL = 10 * time.Minute
	}
}

func Enabled() bool {
	return redisDBVideoInfo != nil
}

// GetVideoInfo returns nil on a miss.
func GetVideoInfo(ctx context.Context, videoId string) (*model.Video, error) {
	if !Enabled() {
		return nil, nil
	}
	data, err := redisDBVideoInfo.Get(ctx, fmt.Sprintf(VideoDetailKey, videoId)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get cached video")
	}
	video := &model.Video{}
	if err = json.Unmarshal(data, video); err != nil {
		// 缓存内容损坏时直接丢弃
		hlog.CtxWarnf(ctx, "drop corrupt video cache %s: %v", videoId, err)
		_ = DelVideoInfo(ctx, videoId)
		return nil, nil
	}
	return video, nil
}

func PutVideoInfo(ctx context.Context, video *model.Video) error {
	if !Enabled() || video == nil {
		return nil
	}
	data, err := json.Marshal(video)
	if err != nil {
		return errors.Wrap(err, "marshal video")
	}
	if err = redisDBVideoInfo.Set(ctx, fmt.Sprintf(VideoDetailKey, video.ID), data, videoInfoTTL).Err(); err != nil {
		return errors.Wrap(err, "cache video")
	}
	return nil
}

func DelVideoInfo(ctx context.Context, videoId string) error {
	if !Enabled() {
		return nil
	}
	if err := redisDBVideoInfo.Del(ctx, fmt.Sprintf(VideoDetailKey, videoId)).Err(); err != nil {
		return errors.Wrap(err, "invalidate video cache")
	}
	return nil
}
