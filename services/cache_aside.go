package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kiselev-pavel-dev/menu-cafe/cache"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
	"github.com/sirupsen/logrus"
)

// readThrough serves key from the cache, or calls load, stores the result
// under key and returns it. Errors from load are never cached.
func readThrough[T any](ctx context.Context, store cache.Store, key string, load func(context.Context) (T, error)) (T, error) {
	value, found, err := cache.GetJSON[T](ctx, store, key)
	switch {
	case err != nil:
		var decodeErr *cache.DecodeError
		if !errors.As(err, &decodeErr) {
			return value, fmt.Errorf("cache get %s: %w", key, err)
		}
		utils.ErrorLogger.WithError(err).WithField("key", key).Warn("dropping undecodable cache entry")
		if err := store.Delete(ctx, key); err != nil {
			return value, fmt.Errorf("cache delete %s: %w", key, err)
		}
	case found:
		return value, nil
	}

	value, err = load(ctx)
	if err != nil {
		return value, err
	}

	if err := cache.SetJSON(ctx, store, key, value); err != nil {
		return value, fmt.Errorf("cache set %s: %w", key, err)
	}
	utils.InfoLogger.WithField("key", key).Debug("cache populated")
	return value, nil
}

func invalidate(ctx context.Context, store cache.Store, keys ...string) error {
	if err := store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	utils.InfoLogger.WithField("keys", keys).Debug("cache invalidated")
	return nil
}

func invalidatePrefix(ctx context.Context, store cache.Store, prefixes ...string) error {
	for _, prefix := range prefixes {
		if err := store.DeletePrefix(ctx, prefix); err != nil {
			return fmt.Errorf("cache invalidate prefix %s: %w", prefix, err)
		}
	}
	utils.InfoLogger.WithFields(logrus.Fields{"prefixes": prefixes}).Debug("cache prefixes invalidated")
	return nil
}

// menuAggregateKeys are the entries holding counts of a menu's children.
func menuAggregateKeys(menuID uint) []string {
	return []string{
		cache.MenuKey(menuID),
		cache.MenuListKey(),
		cache.SubMenuListKey(menuID),
	}
}

// submenuAggregateKeys adds the submenu itself, which carries a dish count.
func submenuAggregateKeys(menuID, submenuID uint) []string {
	return append(menuAggregateKeys(menuID), cache.SubMenuKey(menuID, submenuID))
}
