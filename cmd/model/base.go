package model

import (
	"gorm.io/gorm"

	"vidtube.com/pkg/utils"
)

func assignID(id *string) {
	if *id == "" {
		*id = utils.NewID()
	}
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	assignID(&u.ID)
	return nil
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	assignID(&l.ID)
	return nil
}

func (p *Playlist) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

func (t *Tweet) BeforeCreate(tx *gorm.DB) error {
	assignID(&t.ID)
	return nil
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	assignID(&v.ID)
	return nil
}

// All lists every table the service migrates.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Comment{},
		&Like{},
		&Playlist{},
		&PlaylistVideo{},
		&Tweet{},
		&Video{},
	}
}
