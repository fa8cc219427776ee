package database_test

import (
	"context"
	"testing"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/database"
	"vidtube.com/pkg/database/dbtest"
	"vidtube.com/pkg/utils"
)

func TestSetupMigratesEveryTable(t *testing.T) {
	db := dbtest.Open(t)
	for _, m := range model.All() {
		if !db.Migrator().HasTable(m) {
			t.Fatalf("table for %T not migrated", m)
		}
	}
	if err := database.Ping(db); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestLikeUniqueIndex(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	user, target := utils.NewID(), utils.NewID()

	first := &model.Like{LikedBy: user, TargetKind: "video", TargetID: target}
	if err := db.WithContext(ctx).Create(first).Error; err != nil {
		t.Fatalf("first like: %v", err)
	}
	dup := &model.Like{LikedBy: user, TargetKind: "video", TargetID: target}
	if err := db.WithContext(ctx).Create(dup).Error; err == nil {
		t.Fatalf("duplicate like accepted")
	}
}

func TestPingNil(t *testing.T) {
	if err := database.Ping(nil); err == nil {
		t.Fatalf("expected error for nil handle")
	}
}
