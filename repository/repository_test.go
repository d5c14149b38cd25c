package repository

import (
	"context"
	"testing"

	"github.com/kiselev-pavel-dev/menu-cafe/models"
	"github.com/kiselev-pavel-dev/menu-cafe/testsupport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	menus     *MenuRepository
	submenus  *SubMenuRepository
	dishes    *DishRepository
	catalogue *CatalogueRepository
}

func newFixture(db *gorm.DB) fixture {
	return fixture{
		menus:     NewMenuRepository(db),
		submenus:  NewSubMenuRepository(db),
		dishes:    NewDishRepository(db),
		catalogue: NewCatalogueRepository(db),
	}
}

// seed creates one menu with two submenus; the first holds two dishes.
func seed(t *testing.T, f fixture) (models.Menu, []models.SubMenu, []models.Dish) {
	t.Helper()
	ctx := context.Background()

	menu := models.Menu{Title: "Lunch", Description: "Served 12-16"}
	require.NoError(t, f.menus.Create(ctx, &menu))

	subs := []models.SubMenu{
		{Title: "Soups", Description: "Hot", MenuID: menu.ID},
		{Title: "Drinks", Description: "Cold", MenuID: menu.ID},
	}
	for i := range subs {
		require.NoError(t, f.submenus.Create(ctx, &subs[i]))
	}

	dishes := []models.Dish{
		{Title: "Borscht", Description: "Beetroot", Price: "12.50", SubMenuID: subs[0].ID},
		{Title: "Solyanka", Description: "Meat", Price: "14.00", SubMenuID: subs[0].ID},
	}
	for i := range dishes {
		require.NoError(t, f.dishes.Create(ctx, &dishes[i]))
	}
	return menu, subs, dishes
}

func TestMenuRepositoryCounts(t *testing.T) {
	f := newFixture(testsupport.NewTestDB(t))
	ctx := context.Background()
	menu, subs, _ := seed(t, f)

	n, err := f.menus.CountSubMenus(ctx, menu.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = f.menus.CountDishes(ctx, menu.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = f.submenus.CountDishes(ctx, subs[1].ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMenuRepositoryGetMissing(t *testing.T) {
	f := newFixture(testsupport.NewTestDB(t))

	menu, err := f.menus.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, menu)

	ok, err := f.menus.Exists(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMenuRepositoryUpdate(t *testing.T) {
	f := newFixture(testsupport.NewTestDB(t))
	ctx := context.Background()
	menu, _, _ := seed(t, f)

	require.NoError(t, f.menus.Update(ctx, menu.ID, "Dinner", "Served 18-23"))

	got, err := f.menus.Get(ctx, menu.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Dinner", got.Title)
	assert.Equal(t, "Served 18-23", got.Description)
}

func TestMenuRepositoryDeleteCascades(t *testing.T) {
	db := testsupport.NewTestDB(t)
	f := newFixture(db)
	ctx := context.Background()
	menu, subs, dishes := seed(t, f)

	other := models.Menu{Title: "Breakfast", Description: "Morning"}
	require.NoError(t, f.menus.Create(ctx, &other))
	otherSub := models.SubMenu{Title: "Eggs", Description: "Any style", MenuID: other.ID}
	require.NoError(t, f.submenus.Create(ctx, &otherSub))

	require.NoError(t, f.menus.Delete(ctx, menu.ID))

	ok, err := f.menus.Exists(ctx, menu.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	for _, s := range subs {
		ok, err := f.submenus.Exists(ctx, menu.ID, s.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	var remainingDishes int64
	require.NoError(t, db.Model(&models.Dish{}).Where("id IN ?", []uint{dishes[0].ID, dishes[1].ID}).Count(&remainingDishes).Error)
	assert.Zero(t, remainingDishes)

	ok, err = f.submenus.Exists(ctx, other.ID, otherSub.ID)
	require.NoError(t, err)
	assert.True(t, ok, "unrelated menu must survive")
}

func TestSubMenuRepositoryScopesByMenu(t *testing.T) {
	f := newFixture(testsupport.NewTestDB(t))
	ctx := context.Background()
	menu, subs, _ := seed(t, f)

	got, err := f.submenus.Get(ctx, menu.ID, subs[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Soups", got.Title)

	got, err = f.submenus.Get(ctx, menu.ID+1, subs[0].ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	list, err := f.submenus.List(ctx, menu.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestSubMenuRepositoryDeleteCascades(t *testing.T) {
	f := newFixture(testsupport.NewTestDB(t))
	ctx := context.Background()
	menu, subs, _ := seed(t, f)

	require.NoError(t, f.submenus.Delete(ctx, subs[0].ID))

	list, err := f.dishes.List(ctx, menu.ID, subs[0].ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	n, err := f.menus.CountDishes(ctx, menu.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDishRepositoryKeepsPriceVerbatim(t *testing.T) {
	f := newFixture(testsupport.NewTestDB(t))
	ctx := context.Background()
	menu, subs, dishes := seed(t, f)

	require.NoError(t, f.dishes.Update(ctx, dishes[0].ID, "Borscht", "With sour cream", "13.10"))

	got, err := f.dishes.Get(ctx, menu.ID, subs[0].ID, dishes[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "13.10", got.Price)
	assert.Equal(t, "With sour cream", got.Description)
}

func TestDishRepositoryScopesByParents(t *testing.T) {
	f := newFixture(testsupport.NewTestDB(t))
	ctx := context.Background()
	menu, subs, dishes := seed(t, f)

	got, err := f.dishes.Get(ctx, menu.ID, subs[1].ID, dishes[0].ID)
	require.NoError(t, err)
	assert.Nil(t, got, "dish looked up under the wrong submenu")

	ok, err := f.dishes.Exists(ctx, menu.ID+1, subs[0].ID, dishes[0].ID)
	require.NoError(t, err)
	assert.False(t, ok, "dish looked up under the wrong menu")

	list, err := f.dishes.List(ctx, menu.ID, subs[0].ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Borscht", list[0].Title)
}

func TestCatalogueSnapshot(t *testing.T) {
	f := newFixture(testsupport.NewTestDB(t))
	seed(t, f)

	snap, err := f.catalogue.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Menus, 1)
	assert.Len(t, snap.SubMenus, 2)
	assert.Len(t, snap.Dishes, 2)
	assert.Equal(t, "12.50", snap.Dishes[0].Price)
}
