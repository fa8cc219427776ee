package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type recorder struct {
	events []Event
	err    error
}

func (r *recorder) Publish(_ context.Context, e Event) error {
	r.events = append(r.events, e)
	return r.err
}

func (r *recorder) Close() error { return nil }

func TestEventRouting(t *testing.T) {
	cases := map[string]Event{
		CommentCreated: NewCommentEvent("c", "v", "u"),
		LikeToggled:    NewLikeEvent("u", "video", "v", true),
		VideoPublished: NewVideoEvent(VideoPublished, "v", "u"),
		VideoDeleted:   NewVideoEvent(VideoDeleted, "v", "u"),
	}
	for want, ev := range cases {
		if got := ev.RoutingKey(); got != want {
			t.Fatalf("routing key %q, want %q", got, want)
		}
	}
}

func TestLikeEventPayload(t *testing.T) {
	ev := NewLikeEvent("u1", "tweet", "t1", false)
	if ev.EventID == "" || ev.Timestamp == 0 {
		t.Fatalf("event id/timestamp not set: %+v", ev)
	}
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]interface{}
	if err = json.Unmarshal(body, &got); err != nil {
		t.Fatal(err)
	}
	if got["action_type"] != "unlike" || got["target_kind"] != "tweet" {
		t.Fatalf("unexpected payload %s", body)
	}
	if NewLikeEvent("u1", "tweet", "t1", false).EventID == ev.EventID {
		t.Fatalf("event ids must be unique")
	}
}

func TestEmitIsBestEffort(t *testing.T) {
	rec := &recorder{err: errors.New("broker down")}
	Init(rec)
	defer Init(nil)

	Emit(context.Background(), NewCommentEvent("c", "v", "u"))
	if len(rec.events) != 1 {
		t.Fatalf("expected one publish attempt, got %d", len(rec.events))
	}

	Init(nil)
	Emit(context.Background(), NewVideoEvent(VideoDeleted, "v", "u"))
	if len(rec.events) != 1 {
		t.Fatalf("nop publisher should not reach the recorder")
	}
}
