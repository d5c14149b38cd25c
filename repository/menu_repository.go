package repository

import (
	"context"
	"errors"

	"github.com/kiselev-pavel-dev/menu-cafe/models"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// Get returns nil when the menu does not exist.
func (r *MenuRepository) Get(ctx context.Context, id uint) (*models.Menu, error) {
	var menu models.Menu
	err := r.DB.WithContext(ctx).First(&menu, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) List(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu
	err := r.DB.WithContext(ctx).Order("id").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Menu{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *MenuRepository) Create(ctx context.Context, menu *models.Menu) error {
	return r.DB.WithContext(ctx).Create(menu).Error
}

func (r *MenuRepository) Update(ctx context.Context, id uint, title, description string) error {
	return r.DB.WithContext(ctx).Model(&models.Menu{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
		}).Error
}

// Delete removes the menu together with its submenus and their dishes.
func (r *MenuRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		submenuIDs := tx.Model(&models.SubMenu{}).Select("id").Where("menu_id = ?", id)
		if err := tx.Where("submenu_id IN (?)", submenuIDs).Delete(&models.Dish{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", id).Delete(&models.SubMenu{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Menu{}, id).Error
	})
}

func (r *MenuRepository) CountSubMenus(ctx context.Context, menuID uint) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.SubMenu{}).Where("menu_id = ?", menuID).Count(&n).Error
	return n, err
}

// CountDishes counts dishes across every submenu of the menu.
func (r *MenuRepository) CountDishes(ctx context.Context, menuID uint) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Dish{}).
		Joins("JOIN submenus ON submenus.id = dishes.submenu_id").
		Where("submenus.menu_id = ?", menuID).
		Count(&n).Error
	return n, err
}
