package model

import "time"

type Comment struct {
	ID        string     `gorm:"primaryKey;type:char(24)" json:"_id"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	VideoID   string     `gorm:"type:char(24);not null;index:idx_comments_video_created,priority:1" json:"video"`
	OwnerID   string     `gorm:"type:char(24);not null;index" json:"ownerId"`
	Owner     *UserBrief `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt time.Time  `gorm:"index:idx_comments_video_created,priority:2" json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Like is the junction row between a user and one liked target.
// At most one row exists per (LikedBy, TargetKind, TargetID).
type Like struct {
	ID         string    `gorm:"primaryKey;type:char(24)" json:"_id"`
	LikedBy    string    `gorm:"type:char(24);not null;uniqueIndex:uq_likes_target,priority:1" json:"likedBy"`
	TargetKind string    `gorm:"type:varchar(16);not null;uniqueIndex:uq_likes_target,priority:2" json:"targetKind"`
	TargetID   string    `gorm:"type:char(24);not null;uniqueIndex:uq_likes_target,priority:3;index" json:"targetId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LikedVideo is a video like expanded with its target video.
type LikedVideo struct {
	ID        string      `json:"_id"`
	LikedBy   string      `json:"likedBy"`
	CreatedAt time.Time   `json:"createdAt"`
	Video     *VideoBrief `json:"video"`
}

type Tweet struct {
	ID        string     `gorm:"primaryKey;type:char(24)" json:"_id"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	OwnerID   string     `gorm:"type:char(24);not null;index" json:"ownerId"`
	Owner     *UserBrief `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
