package services

import (
	"context"
	"fmt"

	"github.com/kiselev-pavel-dev/menu-cafe/cache"
	"github.com/kiselev-pavel-dev/menu-cafe/models"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
	"github.com/sirupsen/logrus"
)

type SubMenuRepository interface {
	Get(ctx context.Context, menuID, id uint) (*models.SubMenu, error)
	List(ctx context.Context, menuID uint) ([]models.SubMenu, error)
	Exists(ctx context.Context, menuID, id uint) (bool, error)
	Create(ctx context.Context, submenu *models.SubMenu) error
	Update(ctx context.Context, id uint, title, description string) error
	Delete(ctx context.Context, id uint) error
	CountDishes(ctx context.Context, submenuID uint) (int64, error)
}

// MenuChecker reports whether a menu exists without going through the cache.
type MenuChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type SubMenuService struct {
	repo  SubMenuRepository
	menus MenuChecker
	cache cache.Store
}

func NewSubMenuService(repo SubMenuRepository, menus MenuChecker, store cache.Store) *SubMenuService {
	return &SubMenuService{repo: repo, menus: menus, cache: store}
}

// List returns an empty list for a menu that does not exist.
func (s *SubMenuService) List(ctx context.Context, menuID uint) ([]models.SubMenuResponse, error) {
	return readThrough(ctx, s.cache, cache.SubMenuListKey(menuID), func(ctx context.Context) ([]models.SubMenuResponse, error) {
		submenus, err := s.repo.List(ctx, menuID)
		if err != nil {
			return nil, err
		}
		responses := make([]models.SubMenuResponse, 0, len(submenus))
		for i := range submenus {
			resp, err := s.enrich(ctx, &submenus[i])
			if err != nil {
				return nil, err
			}
			responses = append(responses, resp)
		}
		return responses, nil
	})
}

func (s *SubMenuService) Get(ctx context.Context, menuID, id uint) (models.SubMenuResponse, error) {
	return readThrough(ctx, s.cache, cache.SubMenuKey(menuID, id), func(ctx context.Context) (models.SubMenuResponse, error) {
		submenu, err := s.repo.Get(ctx, menuID, id)
		if err != nil {
			return models.SubMenuResponse{}, err
		}
		if submenu == nil {
			return models.SubMenuResponse{}, notFound(KindSubMenu, id)
		}
		return s.enrich(ctx, submenu)
	})
}

func (s *SubMenuService) Exists(ctx context.Context, menuID, id uint) (bool, error) {
	return s.repo.Exists(ctx, menuID, id)
}

func (s *SubMenuService) Create(ctx context.Context, menuID uint, in models.SubMenuInput) (models.SubMenuResponse, error) {
	ok, err := s.menus.Exists(ctx, menuID)
	if err != nil {
		return models.SubMenuResponse{}, fmt.Errorf("check menu %d: %w", menuID, err)
	}
	if !ok {
		return models.SubMenuResponse{}, notFound(KindMenu, menuID)
	}
	if err := invalidate(ctx, s.cache, menuAggregateKeys(menuID)...); err != nil {
		return models.SubMenuResponse{}, err
	}

	submenu := models.SubMenu{Title: in.Title, Description: in.Description, MenuID: menuID}
	if err := s.repo.Create(ctx, &submenu); err != nil {
		return models.SubMenuResponse{}, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"menu_id":    menuID,
		"submenu_id": submenu.ID,
	}).Info("submenu created")
	return models.NewSubMenuResponse(&submenu, 0), nil
}

func (s *SubMenuService) Update(ctx context.Context, menuID, id uint, in models.SubMenuInput) (models.SubMenuResponse, error) {
	if err := s.require(ctx, menuID, id); err != nil {
		return models.SubMenuResponse{}, err
	}
	if err := invalidate(ctx, s.cache, submenuAggregateKeys(menuID, id)...); err != nil {
		return models.SubMenuResponse{}, err
	}
	if err := s.repo.Update(ctx, id, in.Title, in.Description); err != nil {
		return models.SubMenuResponse{}, err
	}

	utils.InfoLogger.WithField("submenu_id", id).Info("submenu updated")
	return s.Get(ctx, menuID, id)
}

func (s *SubMenuService) Delete(ctx context.Context, menuID, id uint) error {
	if err := s.require(ctx, menuID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := invalidate(ctx, s.cache, submenuAggregateKeys(menuID, id)...); err != nil {
		return err
	}
	if err := invalidatePrefix(ctx, s.cache, cache.DishSubMenuPrefix(menuID, id)); err != nil {
		return err
	}

	utils.InfoLogger.WithField("submenu_id", id).Info("submenu deleted")
	return nil
}

func (s *SubMenuService) require(ctx context.Context, menuID, id uint) error {
	ok, err := s.repo.Exists(ctx, menuID, id)
	if err != nil {
		return fmt.Errorf("check submenu %d: %w", id, err)
	}
	if !ok {
		return notFound(KindSubMenu, id)
	}
	return nil
}

func (s *SubMenuService) enrich(ctx context.Context, submenu *models.SubMenu) (models.SubMenuResponse, error) {
	dishes, err := s.repo.CountDishes(ctx, submenu.ID)
	if err != nil {
		return models.SubMenuResponse{}, err
	}
	return models.NewSubMenuResponse(submenu, dishes), nil
}
