package model

import (
	"gorm.io/gorm"
)

// AutoMigrate 按模型名执行自动迁移
func AutoMigrate(db *gorm.DB, key string) error {
	switch key {
	case "Note":
		return db.AutoMigrate(Note{})
	}
	return nil
}

// AutoMigrateAll 迁移全部模型
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(Note{})
}
