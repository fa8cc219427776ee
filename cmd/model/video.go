package model

import "time"

type Video struct {
	ID          string     `gorm:"primaryKey;type:char(24)" json:"_id"`
	VideoFile   string     `gorm:"type:varchar(512);not null" json:"videoFile"`
	Thumbnail   string     `gorm:"type:varchar(512);not null" json:"thumbnail"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Duration    float64    `gorm:"not null" json:"duration"`
	Views       int64      `gorm:"not null" json:"views"`
	IsPublished bool       `gorm:"not null;index" json:"isPublished"`
	OwnerID     string     `gorm:"type:char(24);not null;index" json:"ownerId"`
	Owner       *UserBrief `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt   time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// VideoBrief is the projection attached to liked-video listings.
type VideoBrief struct {
	ID          string `gorm:"primaryKey" json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Views       int64  `json:"views"`
	OwnerID     string `json:"owner"`
}

func (VideoBrief) TableName() string {
	return "videos"
}

type Playlist struct {
	ID          string    `gorm:"primaryKey;type:char(24)" json:"_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	OwnerID     string    `gorm:"type:char(24);not null;index" json:"owner"`
	Videos      []string  `gorm:"-" json:"videos"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistVideo is one playlist membership; the composite key makes adds idempotent.
type PlaylistVideo struct {
	PlaylistID string    `gorm:"primaryKey;type:char(24)"`
	VideoID    string    `gorm:"primaryKey;type:char(24)"`
	CreatedAt  time.Time `gorm:"index"`
}
