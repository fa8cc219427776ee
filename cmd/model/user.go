package model

import "time"

// User rows belong to the external account service; this backend only reads them.
type User struct {
	ID        string    `gorm:"primaryKey;type:char(24)" json:"_id"`
	Username  string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"username"`
	FullName  string    `gorm:"type:varchar(128)" json:"fullName"`
	Avatar    string    `gorm:"type:varchar(512)" json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserBrief is the owner projection attached to comments, tweets and videos.
type UserBrief struct {
	ID       string `gorm:"primaryKey;type:char(24)" json:"_id"`
	Username string `json:"username"`
}

func (UserBrief) TableName() string {
	return "users"
}

// SelectOwner limits an owner preload to the projected columns.
var SelectOwner = []string{"id", "username"}
