package services

import (
	"context"
	"fmt"

	"github.com/kiselev-pavel-dev/menu-cafe/cache"
	"github.com/kiselev-pavel-dev/menu-cafe/models"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
	"github.com/sirupsen/logrus"
)

type DishRepository interface {
	Get(ctx context.Context, menuID, submenuID, id uint) (*models.Dish, error)
	List(ctx context.Context, menuID, submenuID uint) ([]models.Dish, error)
	Exists(ctx context.Context, menuID, submenuID, id uint) (bool, error)
	Create(ctx context.Context, dish *models.Dish) error
	Update(ctx context.Context, id uint, title, description, price string) error
	Delete(ctx context.Context, id uint) error
}

// SubMenuChecker reports whether a submenu exists under a menu.
type SubMenuChecker interface {
	Exists(ctx context.Context, menuID, id uint) (bool, error)
}

// DishService keeps dish entries and every ancestor count in step with the
// database. A dish write touches the parent submenu, its list, the menu and
// the menu list, since all four carry a dish count.
type DishService struct {
	repo     DishRepository
	submenus SubMenuChecker
	cache    cache.Store
}

func NewDishService(repo DishRepository, submenus SubMenuChecker, store cache.Store) *DishService {
	return &DishService{repo: repo, submenus: submenus, cache: store}
}

func (s *DishService) List(ctx context.Context, menuID, submenuID uint) ([]models.DishResponse, error) {
	return readThrough(ctx, s.cache, cache.DishListKey(menuID, submenuID), func(ctx context.Context) ([]models.DishResponse, error) {
		dishes, err := s.repo.List(ctx, menuID, submenuID)
		if err != nil {
			return nil, err
		}
		responses := make([]models.DishResponse, 0, len(dishes))
		for i := range dishes {
			responses = append(responses, models.NewDishResponse(&dishes[i]))
		}
		return responses, nil
	})
}

func (s *DishService) Get(ctx context.Context, menuID, submenuID, id uint) (models.DishResponse, error) {
	return readThrough(ctx, s.cache, cache.DishKey(menuID, submenuID, id), func(ctx context.Context) (models.DishResponse, error) {
		dish, err := s.repo.Get(ctx, menuID, submenuID, id)
		if err != nil {
			return models.DishResponse{}, err
		}
		if dish == nil {
			return models.DishResponse{}, notFound(KindDish, id)
		}
		return models.NewDishResponse(dish), nil
	})
}

func (s *DishService) Create(ctx context.Context, menuID, submenuID uint, in models.DishInput) (models.DishResponse, error) {
	ok, err := s.submenus.Exists(ctx, menuID, submenuID)
	if err != nil {
		return models.DishResponse{}, fmt.Errorf("check submenu %d: %w", submenuID, err)
	}
	if !ok {
		return models.DishResponse{}, notFound(KindSubMenu, submenuID)
	}
	keys := append(submenuAggregateKeys(menuID, submenuID), cache.DishListKey(menuID, submenuID))
	if err := invalidate(ctx, s.cache, keys...); err != nil {
		return models.DishResponse{}, err
	}

	dish := models.Dish{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		SubMenuID:   submenuID,
	}
	if err := s.repo.Create(ctx, &dish); err != nil {
		return models.DishResponse{}, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"menu_id":    menuID,
		"submenu_id": submenuID,
		"dish_id":    dish.ID,
	}).Info("dish created")
	return models.NewDishResponse(&dish), nil
}

func (s *DishService) Update(ctx context.Context, menuID, submenuID, id uint, in models.DishInput) (models.DishResponse, error) {
	if err := s.require(ctx, menuID, submenuID, id); err != nil {
		return models.DishResponse{}, err
	}
	if err := invalidate(ctx, s.cache, dishKeys(menuID, submenuID, id)...); err != nil {
		return models.DishResponse{}, err
	}
	if err := s.repo.Update(ctx, id, in.Title, in.Description, in.Price); err != nil {
		return models.DishResponse{}, err
	}

	utils.InfoLogger.WithField("dish_id", id).Info("dish updated")
	return s.Get(ctx, menuID, submenuID, id)
}

func (s *DishService) Delete(ctx context.Context, menuID, submenuID, id uint) error {
	if err := s.require(ctx, menuID, submenuID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := invalidate(ctx, s.cache, dishKeys(menuID, submenuID, id)...); err != nil {
		return err
	}

	utils.InfoLogger.WithField("dish_id", id).Info("dish deleted")
	return nil
}

func (s *DishService) require(ctx context.Context, menuID, submenuID, id uint) error {
	ok, err := s.repo.Exists(ctx, menuID, submenuID, id)
	if err != nil {
		return fmt.Errorf("check dish %d: %w", id, err)
	}
	if !ok {
		return notFound(KindDish, id)
	}
	return nil
}

func dishKeys(menuID, submenuID, id uint) []string {
	return append(submenuAggregateKeys(menuID, submenuID),
		cache.DishKey(menuID, submenuID, id),
		cache.DishListKey(menuID, submenuID),
	)
}
