package models

// Dish keeps Price as the decimal string it was created with so no
// rounding happens between the API and the store.
type Dish struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	Price       string `gorm:"type:varchar(32);not null"`
	SubMenuID   uint   `gorm:"column:submenu_id;not null;index"`
}

func (Dish) TableName() string {
	return "dishes"
}

type DishInput struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	Price       string `json:"price" binding:"required,decimal"`
}

type DishResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

func NewDishResponse(d *Dish) DishResponse {
	return DishResponse{
		ID:          FormatID(d.ID),
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
	}
}
