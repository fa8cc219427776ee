package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/database/dbtest"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/utils"
)

type recorder struct {
	mu     sync.Mutex
	events []mq.Event
}

func (r *recorder) Publish(_ context.Context, e mq.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) Close() error { return nil }

func (r *recorder) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.RoutingKey() == key {
			n++
		}
	}
	return n
}

func setup(t *testing.T) *recorder {
	t.Helper()
	db.Init(dbtest.Open(t))
	rec := &recorder{}
	mq.Init(rec)
	t.Cleanup(func() { mq.Init(nil) })
	return rec
}

func seedUser(t *testing.T, name string) string {
	t.Helper()
	u := &model.User{Username: name, FullName: name}
	if err := db.DB.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}

func countRows(t *testing.T, m interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.DB.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func assertErrNo(t *testing.T, err error, want errno.ErrNo) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("expected %s, got %v", want.ErrMsg, err)
	}
}

func TestAddComment(t *testing.T) {
	rec := setup(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	video := utils.NewID()

	t.Run("created with owner", func(t *testing.T) {
		c, err := NewCommentService(ctx).AddComment(video, "nice video", alice)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if c.Content != "nice video" || c.VideoID != video {
			t.Fatalf("unexpected comment %+v", c)
		}
		if c.Owner == nil || c.Owner.Username != "alice" {
			t.Fatalf("owner projection missing: %+v", c.Owner)
		}
		if rec.count(mq.CommentCreated) != 1 {
			t.Fatalf("comment.created not emitted")
		}
	})

	t.Run("blank content", func(t *testing.T) {
		before := countRows(t, &model.Comment{})
		for _, content := range []string{"", "   "} {
			_, err := NewCommentService(ctx).AddComment(video, content, alice)
			assertErrNo(t, err, errno.ParamErr)
		}
		if countRows(t, &model.Comment{}) != before {
			t.Fatalf("rejected comment was stored")
		}
	})

	t.Run("malformed video id", func(t *testing.T) {
		_, err := NewCommentService(ctx).AddComment("not-an-id", "hi", alice)
		assertErrNo(t, err, errno.ParamErr)
	})

	t.Run("no identity", func(t *testing.T) {
		_, err := NewCommentService(ctx).AddComment("not-an-id", "", "")
		assertErrNo(t, err, errno.AuthorizationFailedErr)
	})
}

func TestCommentOwnership(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice, bob := seedUser(t, "alice"), seedUser(t, "bob")
	c, err := NewCommentService(ctx).AddComment(utils.NewID(), "first", alice)
	if err != nil {
		t.Fatal(err)
	}

	_, err = NewCommentService(ctx).UpdateComment(c.ID, "hijacked", bob)
	assertErrNo(t, err, errno.ForbiddenErr)
	_, err = NewCommentService(ctx).DeleteComment(c.ID, bob)
	assertErrNo(t, err, errno.ForbiddenErr)

	stored, err := db.GetComment(ctx, c.ID)
	if err != nil || stored.Content != "first" {
		t.Fatalf("comment changed by non-owner: %+v %v", stored, err)
	}

	updated, err := NewCommentService(ctx).UpdateComment(c.ID, "edited", alice)
	if err != nil || updated.Content != "edited" {
		t.Fatalf("owner update failed: %+v %v", updated, err)
	}
	_, err = NewCommentService(ctx).UpdateComment(c.ID, " ", alice)
	assertErrNo(t, err, errno.ParamErr)

	deleted, err := NewCommentService(ctx).DeleteComment(c.ID, alice)
	if err != nil || deleted.ID != c.ID {
		t.Fatalf("owner delete failed: %+v %v", deleted, err)
	}
	_, err = NewCommentService(ctx).DeleteComment(c.ID, alice)
	assertErrNo(t, err, errno.NotFoundErr)
	_, err = NewCommentService(ctx).UpdateComment(utils.NewID(), "x", alice)
	assertErrNo(t, err, errno.NotFoundErr)
}

func TestListComments(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	video, other := utils.NewID(), utils.NewID()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		c := &model.Comment{Content: "c", VideoID: video, OwnerID: alice, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := db.DB.Create(c).Error; err != nil {
			t.Fatal(err)
		}
	}
	if err := db.DB.Create(&model.Comment{Content: "elsewhere", VideoID: other, OwnerID: alice}).Error; err != nil {
		t.Fatal(err)
	}

	first, err := NewCommentService(ctx).ListComments(video, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if first.Page != 1 || first.Limit != 10 || len(first.Docs) != 10 {
		t.Fatalf("defaults not applied: page=%d limit=%d docs=%d", first.Page, first.Limit, len(first.Docs))
	}
	if first.TotalDocs != 15 || first.TotalPages != 2 || !first.HasNextPage || first.HasPrevPage {
		t.Fatalf("unexpected metadata %+v", first)
	}
	for i := 1; i < len(first.Docs); i++ {
		if first.Docs[i].CreatedAt.After(first.Docs[i-1].CreatedAt) {
			t.Fatalf("comments not newest first")
		}
	}
	if first.Docs[0].Owner == nil || first.Docs[0].Owner.Username != "alice" {
		t.Fatalf("owner projection missing")
	}

	second, err := NewCommentService(ctx).ListComments(video, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(second.Docs) != 5 || second.HasNextPage || !second.HasPrevPage {
		t.Fatalf("unexpected second page %+v", second)
	}

	capped, err := NewCommentService(ctx).ListComments(video, 1, 1000)
	if err != nil || capped.Limit != constants.MaxLimit {
		t.Fatalf("limit not capped: %+v %v", capped, err)
	}

	empty, err := NewCommentService(ctx).ListComments(utils.NewID(), 1, 10)
	if err != nil || len(empty.Docs) != 0 || empty.TotalPages != 0 {
		t.Fatalf("unexpected empty page %+v %v", empty, err)
	}

	_, err = NewCommentService(ctx).ListComments("bad", 1, 10)
	assertErrNo(t, err, errno.ParamErr)
}

func TestToggleLike(t *testing.T) {
	rec := setup(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	video := utils.NewID()
	svc := NewLikeService(ctx)

	res, err := svc.ToggleLike(constants.LikeKindVideo, video, alice)
	if err != nil || !res.IsLiked || res.Like == nil || res.Like.TargetID != video {
		t.Fatalf("first toggle: %+v %v", res, err)
	}
	res, err = svc.ToggleLike(constants.LikeKindVideo, video, alice)
	if err != nil || res.IsLiked {
		t.Fatalf("second toggle: %+v %v", res, err)
	}
	if n, _ := db.CountLikes(ctx, alice, constants.LikeKindVideo, video); n != 0 {
		t.Fatalf("expected no like row, got %d", n)
	}
	res, err = svc.ToggleLike(constants.LikeKindVideo, video, alice)
	if err != nil || !res.IsLiked {
		t.Fatalf("third toggle: %+v %v", res, err)
	}
	if rec.count(mq.LikeToggled) != 3 {
		t.Fatalf("expected 3 like events, got %d", rec.count(mq.LikeToggled))
	}

	// same target id under another kind is a separate like
	res, err = svc.ToggleLike(constants.LikeKindComment, video, alice)
	if err != nil || !res.IsLiked {
		t.Fatalf("comment like: %+v %v", res, err)
	}

	_, err = svc.ToggleLike(constants.LikeKindTweet, "xyz", alice)
	assertErrNo(t, err, errno.ParamErr)
	_, err = svc.ToggleLike("story", video, alice)
	assertErrNo(t, err, errno.ParamErr)
	_, err = svc.ToggleLike(constants.LikeKindTweet, video, "")
	assertErrNo(t, err, errno.AuthorizationFailedErr)
}

func TestToggleLikeConcurrent(t *testing.T) {
	setup(t)
	alice := seedUser(t, "alice")
	tweet := utils.NewID()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = NewLikeService(context.Background()).ToggleLike(constants.LikeKindTweet, tweet, alice)
		}()
	}
	wg.Wait()

	n, err := db.CountLikes(context.Background(), alice, constants.LikeKindTweet, tweet)
	if err != nil {
		t.Fatal(err)
	}
	if n > 1 {
		t.Fatalf("expected at most one like row, got %d", n)
	}
}

func TestListLikedVideos(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice, bob := seedUser(t, "alice"), seedUser(t, "bob")
	video := &model.Video{Title: "cats", Description: "cute", VideoFile: "v", Thumbnail: "t", Views: 7, IsPublished: true, OwnerID: bob}
	if err := db.DB.Create(video).Error; err != nil {
		t.Fatal(err)
	}
	gone := utils.NewID()

	svc := NewLikeService(ctx)
	if _, err := svc.ToggleLike(constants.LikeKindVideo, gone, alice); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleLike(constants.LikeKindVideo, video.ID, alice); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleLike(constants.LikeKindTweet, utils.NewID(), alice); err != nil {
		t.Fatal(err)
	}

	list, err := svc.ListLikedVideos(alice)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 video likes, got %d", len(list))
	}
	var found, missing bool
	for _, l := range list {
		switch {
		case l.Video == nil:
			missing = true
		case l.Video.ID == video.ID:
			found = l.Video.Title == "cats" && l.Video.Views == 7 && l.Video.OwnerID == bob
		}
	}
	if !found || !missing {
		t.Fatalf("unexpected expansion %+v", list)
	}

	empty, err := svc.ListLikedVideos(bob)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty list, got %v %v", empty, err)
	}
}

func TestTweets(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice, bob := seedUser(t, "alice"), seedUser(t, "bob")
	svc := NewTweetService(ctx)

	tw, err := svc.CreateTweet("hello", alice)
	if err != nil || tw.Owner == nil || tw.Owner.Username != "alice" {
		t.Fatalf("create: %+v %v", tw, err)
	}
	_, err = svc.CreateTweet("  ", alice)
	assertErrNo(t, err, errno.ParamErr)
	if _, err = svc.CreateTweet("second", alice); err != nil {
		t.Fatal(err)
	}

	list, err := svc.ListUserTweets(alice)
	if err != nil || len(list) != 2 || list[0].Content != "second" {
		t.Fatalf("list: %+v %v", list, err)
	}
	_, err = svc.ListUserTweets("nope")
	assertErrNo(t, err, errno.ParamErr)

	_, err = svc.UpdateTweet(tw.ID, "mine now", bob)
	assertErrNo(t, err, errno.ForbiddenErr)
	_, err = svc.DeleteTweet(tw.ID, bob)
	assertErrNo(t, err, errno.ForbiddenErr)
	if stored, _ := db.GetTweet(ctx, tw.ID); stored == nil || stored.Content != "hello" {
		t.Fatalf("tweet changed by non-owner")
	}

	updated, err := svc.UpdateTweet(tw.ID, "hello again", alice)
	if err != nil || updated.Content != "hello again" || updated.Owner == nil {
		t.Fatalf("update: %+v %v", updated, err)
	}
	deleted, err := svc.DeleteTweet(tw.ID, alice)
	if err != nil || deleted.ID != tw.ID {
		t.Fatalf("delete: %+v %v", deleted, err)
	}
	_, err = svc.UpdateTweet(tw.ID, "ghost", alice)
	assertErrNo(t, err, errno.NotFoundErr)
}
