package database

import (
	"github.com/kiselev-pavel-dev/menu-cafe/models"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the catalogue tables. Parents are migrated
// before children so the foreign keys can be declared.
func Migrate(db *gorm.DB) error {
	if err := EnableForeignKeys(db); err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&models.Menu{},
		&models.SubMenu{},
		&models.Dish{},
	); err != nil {
		return err
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	for _, table := range []string{"menus", "submenus", "dishes"} {
		if !db.Migrator().HasTable(table) {
			utils.ErrorLogger.Warnf("table %s missing after migration", table)
		}
	}
	return nil
}

// EnableForeignKeys switches on FK enforcement for SQLite, which ships with
// it off. Other dialects enforce foreign keys already.
func EnableForeignKeys(db *gorm.DB) error {
	if db.Dialector.Name() != "sqlite" {
		return nil
	}
	return db.Exec("PRAGMA foreign_keys = ON").Error
}
