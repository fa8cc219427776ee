package db

import "gorm.io/gorm"

var DB *gorm.DB

// Init binds the shared pool opened by main.
func Init(gdb *gorm.DB) {
	DB = gdb
}

func withOwner(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username")
}
