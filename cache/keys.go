package cache

import "strconv"

const (
	menuNamespace    = "menu"
	submenuNamespace = "submenu"
	dishNamespace    = "dish"

	sep      = ":"
	listPart = "list"
)

func id(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

// MenuKey is menu:{id}.
func MenuKey(menuID uint) string {
	return menuNamespace + sep + id(menuID)
}

// MenuListKey is menu:list.
func MenuListKey() string {
	return menuNamespace + sep + listPart
}

// SubMenuKey is submenu:{menu_id}:{id}.
func SubMenuKey(menuID, submenuID uint) string {
	return SubMenuPrefix(menuID) + id(submenuID)
}

// SubMenuListKey is submenu:{menu_id}:list.
func SubMenuListKey(menuID uint) string {
	return SubMenuPrefix(menuID) + listPart
}

// SubMenuPrefix matches every submenu entry of one menu.
func SubMenuPrefix(menuID uint) string {
	return submenuNamespace + sep + id(menuID) + sep
}

// DishKey is dish:{menu_id}:{submenu_id}:{id}.
func DishKey(menuID, submenuID, dishID uint) string {
	return DishSubMenuPrefix(menuID, submenuID) + id(dishID)
}

// DishListKey is dish:{menu_id}:{submenu_id}:list.
func DishListKey(menuID, submenuID uint) string {
	return DishSubMenuPrefix(menuID, submenuID) + listPart
}

// DishMenuPrefix matches every dish entry under one menu.
func DishMenuPrefix(menuID uint) string {
	return dishNamespace + sep + id(menuID) + sep
}

// DishSubMenuPrefix matches every dish entry under one submenu.
func DishSubMenuPrefix(menuID, submenuID uint) string {
	return DishMenuPrefix(menuID) + id(submenuID) + sep
}
