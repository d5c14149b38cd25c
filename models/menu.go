package models

import "strconv"

type Menu struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	SubMenus    []SubMenu `gorm:"foreignKey:MenuID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Menu) TableName() string {
	return "menus"
}

// MenuInput is the body accepted by create and update. Both fields are required.
type MenuInput struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
}

type MenuResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	SubmenusCount int64  `json:"submenus_count"`
	DishesCount   int64  `json:"dishes_count"`
}

func NewMenuResponse(m *Menu, submenus, dishes int64) MenuResponse {
	return MenuResponse{
		ID:            FormatID(m.ID),
		Title:         m.Title,
		Description:   m.Description,
		SubmenusCount: submenus,
		DishesCount:   dishes,
	}
}

// FormatID renders a primary key the way the API exposes it.
func FormatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
