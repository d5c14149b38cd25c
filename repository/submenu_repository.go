package repository

import (
	"context"
	"errors"

	"github.com/kiselev-pavel-dev/menu-cafe/models"
	"gorm.io/gorm"
)

type SubMenuRepository struct {
	DB *gorm.DB
}

func NewSubMenuRepository(db *gorm.DB) *SubMenuRepository {
	return &SubMenuRepository{DB: db}
}

// Get returns nil when no submenu with this id belongs to the menu.
func (r *SubMenuRepository) Get(ctx context.Context, menuID, id uint) (*models.SubMenu, error) {
	var submenu models.SubMenu
	err := r.DB.WithContext(ctx).
		Where("id = ? AND menu_id = ?", id, menuID).
		First(&submenu).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submenu, nil
}

func (r *SubMenuRepository) List(ctx context.Context, menuID uint) ([]models.SubMenu, error) {
	var submenus []models.SubMenu
	err := r.DB.WithContext(ctx).Where("menu_id = ?", menuID).Order("id").Find(&submenus).Error
	return submenus, err
}

func (r *SubMenuRepository) Exists(ctx context.Context, menuID, id uint) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.SubMenu{}).
		Where("id = ? AND menu_id = ?", id, menuID).
		Count(&n).Error
	return n > 0, err
}

func (r *SubMenuRepository) Create(ctx context.Context, submenu *models.SubMenu) error {
	return r.DB.WithContext(ctx).Create(submenu).Error
}

func (r *SubMenuRepository) Update(ctx context.Context, id uint, title, description string) error {
	return r.DB.WithContext(ctx).Model(&models.SubMenu{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
		}).Error
}

// Delete removes the submenu and its dishes.
func (r *SubMenuRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("submenu_id = ?", id).Delete(&models.Dish{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SubMenu{}, id).Error
	})
}

func (r *SubMenuRepository) CountDishes(ctx context.Context, submenuID uint) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Dish{}).Where("submenu_id = ?", submenuID).Count(&n).Error
	return n, err
}
