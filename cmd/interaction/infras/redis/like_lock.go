package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// 点赞互斥锁 Key：lock:like:{user}:{kind}:{target}
const LikeLockKey = "lock:like:%s:%s:%s"

const likeLockTries = 8

var (
	likeLock    *redsync.Redsync
	likeLockTTL time.Duration
)

// Load wires the shared client; a nil client disables the lock.
func Load(client *redis.Client, ttl time.Duration) {
	if client == nil {
		likeLock = nil
		return
	}
	likeLock = redsync.New(goredis.NewPool(client))
	likeLockTTL = ttl
	if likeLockTTL <= 0 {
		likeLockTTL = 5 * time.Second
	}
}

func Enabled() bool {
	return likeLock != nil
}

// WithLikeLock runs fn while holding the pair mutex. When the mutex can't be
// taken fn still runs: the unique index on likes keeps the row count correct.
func WithLikeLock(ctx context.Context, userId, kind, targetId string, fn func() error) error {
	if !Enabled() {
		return fn()
	}
	mutex := likeLock.NewMutex(fmt.Sprintf(LikeLockKey, userId, kind, targetId),
		redsync.WithExpiry(likeLockTTL),
		redsync.WithTries(likeLockTries),
	)
	if err := mutex.LockContext(ctx); err != nil {
		hlog.CtxWarnf(ctx, "like lock %s/%s/%s not acquired, continuing unlocked: %v", userId, kind, targetId, err)
		return fn()
	}
	defer func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			hlog.CtxWarnf(ctx, "Failed to unlock like mutex: %v", err)
		}
	}()
	return fn()
}
