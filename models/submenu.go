package models

type SubMenu struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	MenuID      uint   `gorm:"not null;index"`
	Dishes      []Dish `gorm:"foreignKey:SubMenuID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (SubMenu) TableName() string {
	return "submenus"
}

type SubMenuInput struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
}

type SubMenuResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DishesCount int64  `json:"dishes_count"`
}

func NewSubMenuResponse(s *SubMenu, dishes int64) SubMenuResponse {
	return SubMenuResponse{
		ID:          FormatID(s.ID),
		Title:       s.Title,
		Description: s.Description,
		DishesCount: dishes,
	}
}
