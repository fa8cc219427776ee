package mq

import (
	"context"
	"sync"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Publisher 消息生产者接口
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event; it stands in when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }

var (
	_ Publisher = (*Producer)(nil)
	_ Publisher = NopPublisher{}
)

var (
	mu        sync.RWMutex
	publisher Publisher = NopPublisher{}
)

// Init installs the process publisher. nil restores the no-op one.
func Init(p Publisher) {
	mu.Lock()
	defer mu.Unlock()
	if p == nil {
		p = NopPublisher{}
	}
	publisher = p
}

// Emit publishes best-effort: a failure is logged and never returned.
func Emit(ctx context.Context, event Event) {
	mu.RLock()
	p := publisher
	mu.RUnlock()
	if err := p.Publish(ctx, event); err != nil {
		hlog.CtxWarnf(ctx, "publish %s event failed: %v", event.RoutingKey(), err)
	}
}
