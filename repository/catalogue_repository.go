package repository

import (
	"context"

	"github.com/kiselev-pavel-dev/menu-cafe/models"
	"gorm.io/gorm"
)

type CatalogueRepository struct {
	DB *gorm.DB
}

func NewCatalogueRepository(db *gorm.DB) *CatalogueRepository {
	return &CatalogueRepository{DB: db}
}

// Snapshot reads the three tables inside one transaction so the export
// sees a consistent catalogue.
func (r *CatalogueRepository) Snapshot(ctx context.Context) (models.CatalogueSnapshot, error) {
	var snap models.CatalogueSnapshot
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id").Find(&snap.Menus).Error; err != nil {
			return err
		}
		if err := tx.Order("id").Find(&snap.SubMenus).Error; err != nil {
			return err
		}
		return tx.Order("id").Find(&snap.Dishes).Error
	})
	return snap, err
}
