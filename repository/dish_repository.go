package repository

import (
	"context"
	"errors"

	"github.com/kiselev-pavel-dev/menu-cafe/models"
	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

// scoped restricts a dish query to one submenu of one menu.
func (r *DishRepository) scoped(ctx context.Context, menuID, submenuID uint) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&models.Dish{}).
		Joins("JOIN submenus ON submenus.id = dishes.submenu_id").
		Where("dishes.submenu_id = ? AND submenus.menu_id = ?", submenuID, menuID)
}

// Get returns nil when the dish is not under the given menu and submenu.
func (r *DishRepository) Get(ctx context.Context, menuID, submenuID, id uint) (*models.Dish, error) {
	var dish models.Dish
	err := r.scoped(ctx, menuID, submenuID).Where("dishes.id = ?", id).First(&dish).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepository) List(ctx context.Context, menuID, submenuID uint) ([]models.Dish, error) {
	var dishes []models.Dish
	err := r.scoped(ctx, menuID, submenuID).Order("dishes.id").Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) Exists(ctx context.Context, menuID, submenuID, id uint) (bool, error) {
	var n int64
	err := r.scoped(ctx, menuID, submenuID).Where("dishes.id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *DishRepository) Create(ctx context.Context, dish *models.Dish) error {
	return r.DB.WithContext(ctx).Create(dish).Error
}

func (r *DishRepository) Update(ctx context.Context, id uint, title, description, price string) error {
	return r.DB.WithContext(ctx).Model(&models.Dish{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
			"price":       price,
		}).Error
}

func (r *DishRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Dish{}, id).Error
}
