package cache

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient returns nil when no address is configured; callers treat nil as "no cache".
func NewClient(ctx context.Context, opt Options) (*redis.Client, error) {
	if opt.Addr == "" {
		hlog.Warn("redis addr not configured, cache and like lock disabled")
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "ping redis %s", opt.Addr)
	}
	return client, nil
}

func Ping(ctx context.Context, client *redis.Client) error {
	if client == nil {
		return errors.New("redis not configured")
	}
	return client.Ping(ctx).Err()
}
