package models

// CatalogueSnapshot is a flattened copy of all three tables, taken at one
// point in time for the spreadsheet export.
type CatalogueSnapshot struct {
	Menus    []Menu    `json:"menus"`
	SubMenus []SubMenu `json:"submenus"`
	Dishes   []Dish    `json:"dishes"`
}
