package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"keepnote/internal/category"
	"keepnote/internal/note"
	"keepnote/internal/reminder"
)

// Connect opens Postgres with error translation on, so duplicate-key
// violations surface as gorm.ErrDuplicatedKey to the stores.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Each service migrates only its own table; they are independently
// deployable and may point at separate databases.

func MigrateNotes(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&note.Note{}); err != nil {
		return err
	}
	return execAll(gdb,
		`create index if not exists idx_notes_tags on notes using gin (tags);`,
	)
}

func MigrateCategories(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&category.Category{}); err != nil {
		return err
	}
	return execAll(gdb,
		`create index if not exists idx_categories_created_by on categories(created_by);`,
	)
}

func MigrateReminders(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&reminder.Reminder{})
}

func execAll(gdb *gorm.DB, stmts ...string) error {
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}
	return nil
}
