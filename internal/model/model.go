package model

import (
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "User":
		return db.AutoMigrate(User{})

	case "Folder":
		return db.AutoMigrate(Folder{})

	case "Tag":
		return db.AutoMigrate(Tag{})

	case "Note":
		return db.AutoMigrate(Note{})

	case "NoteTag":
		return db.AutoMigrate(NoteTag{})
	}
	return nil
}

// AutoMigrateAll migrates every table in dependency order.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		User{},
		Folder{},
		Tag{},
		Note{},
		NoteTag{},
	)
}
