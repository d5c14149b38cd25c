package services

import (
	"context"
	"fmt"

	"github.com/kiselev-pavel-dev/menu-cafe/cache"
	"github.com/kiselev-pavel-dev/menu-cafe/models"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
	"github.com/sirupsen/logrus"
)

type MenuRepository interface {
	Get(ctx context.Context, id uint) (*models.Menu, error)
	List(ctx context.Context) ([]models.Menu, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, menu *models.Menu) error
	Update(ctx context.Context, id uint, title, description string) error
	Delete(ctx context.Context, id uint) error
	CountSubMenus(ctx context.Context, menuID uint) (int64, error)
	CountDishes(ctx context.Context, menuID uint) (int64, error)
}

// MenuService serves menus through the cache. Reads populate menu:{id} and
// menu:list, writes invalidate them along with everything nested under a
// deleted menu.
type MenuService struct {
	repo  MenuRepository
	cache cache.Store
}

func NewMenuService(repo MenuRepository, store cache.Store) *MenuService {
	return &MenuService{repo: repo, cache: store}
}

func (s *MenuService) List(ctx context.Context) ([]models.MenuResponse, error) {
	return readThrough(ctx, s.cache, cache.MenuListKey(), func(ctx context.Context) ([]models.MenuResponse, error) {
		menus, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		responses := make([]models.MenuResponse, 0, len(menus))
		for i := range menus {
			resp, err := s.enrich(ctx, &menus[i])
			if err != nil {
				return nil, err
			}
			responses = append(responses, resp)
		}
		return responses, nil
	})
}

func (s *MenuService) Get(ctx context.Context, id uint) (models.MenuResponse, error) {
	return readThrough(ctx, s.cache, cache.MenuKey(id), func(ctx context.Context) (models.MenuResponse, error) {
		menu, err := s.repo.Get(ctx, id)
		if err != nil {
			return models.MenuResponse{}, err
		}
		if menu == nil {
			return models.MenuResponse{}, notFound(KindMenu, id)
		}
		return s.enrich(ctx, menu)
	})
}

// Exists asks the database directly and never touches the cache.
func (s *MenuService) Exists(ctx context.Context, id uint) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *MenuService) Create(ctx context.Context, in models.MenuInput) (models.MenuResponse, error) {
	if err := invalidate(ctx, s.cache, cache.MenuListKey()); err != nil {
		return models.MenuResponse{}, err
	}

	menu := models.Menu{Title: in.Title, Description: in.Description}
	if err := s.repo.Create(ctx, &menu); err != nil {
		return models.MenuResponse{}, err
	}

	utils.InfoLogger.WithField("menu_id", menu.ID).Info("menu created")
	return models.NewMenuResponse(&menu, 0, 0), nil
}

func (s *MenuService) Update(ctx context.Context, id uint, in models.MenuInput) (models.MenuResponse, error) {
	if err := s.require(ctx, id); err != nil {
		return models.MenuResponse{}, err
	}
	if err := invalidate(ctx, s.cache, cache.MenuKey(id), cache.MenuListKey()); err != nil {
		return models.MenuResponse{}, err
	}
	if err := s.repo.Update(ctx, id, in.Title, in.Description); err != nil {
		return models.MenuResponse{}, err
	}

	utils.InfoLogger.WithField("menu_id", id).Info("menu updated")
	return s.Get(ctx, id)
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	if err := s.require(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := invalidate(ctx, s.cache, cache.MenuKey(id), cache.MenuListKey()); err != nil {
		return err
	}
	if err := invalidatePrefix(ctx, s.cache, cache.SubMenuPrefix(id), cache.DishMenuPrefix(id)); err != nil {
		return err
	}

	utils.InfoLogger.WithField("menu_id", id).Info("menu deleted")
	return nil
}

func (s *MenuService) require(ctx context.Context, id uint) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check menu %d: %w", id, err)
	}
	if !ok {
		return notFound(KindMenu, id)
	}
	return nil
}

func (s *MenuService) enrich(ctx context.Context, menu *models.Menu) (models.MenuResponse, error) {
	submenus, err := s.repo.CountSubMenus(ctx, menu.ID)
	if err != nil {
		return models.MenuResponse{}, err
	}
	dishes, err := s.repo.CountDishes(ctx, menu.ID)
	if err != nil {
		return models.MenuResponse{}, err
	}
	utils.InfoLogger.WithFields(logrus.Fields{
		"menu_id":  menu.ID,
		"submenus": submenus,
		"dishes":   dishes,
	}).Debug("menu counts loaded")
	return models.NewMenuResponse(menu, submenus, dishes), nil
}
