package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiselev-pavel-dev/menu-cafe/models"
	"github.com/kiselev-pavel-dev/menu-cafe/services"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
)

type DishController struct {
	Service *services.DishService
}

func NewDishController(service *services.DishService) *DishController {
	return &DishController{Service: service}
}

func (dc *DishController) GetAllDishes(c *gin.Context) {
	ids, ok := pathIDs(c, paramMenuID, paramSubMenuID)
	if !ok {
		return
	}
	dishes, err := dc.Service.List(c.Request.Context(), ids[0], ids[1])
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, dishes)
}

func (dc *DishController) GetDishByID(c *gin.Context) {
	ids, ok := pathIDs(c, paramMenuID, paramSubMenuID, paramDishID)
	if !ok {
		return
	}
	dish, err := dc.Service.Get(c.Request.Context(), ids[0], ids[1], ids[2])
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, dish)
}

func (dc *DishController) CreateDish(c *gin.Context) {
	ids, ok := pathIDs(c, paramMenuID, paramSubMenuID)
	if !ok {
		return
	}
	var input models.DishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	dish, err := dc.Service.Create(c.Request.Context(), ids[0], ids[1], input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, dish)
}

func (dc *DishController) UpdateDish(c *gin.Context) {
	ids, ok := pathIDs(c, paramMenuID, paramSubMenuID, paramDishID)
	if !ok {
		return
	}
	var input models.DishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	dish, err := dc.Service.Update(c.Request.Context(), ids[0], ids[1], ids[2], input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, dish)
}

func (dc *DishController) DeleteDish(c *gin.Context) {
	ids, ok := pathIDs(c, paramMenuID, paramSubMenuID, paramDishID)
	if !ok {
		return
	}
	if err := dc.Service.Delete(c.Request.Context(), ids[0], ids[1], ids[2]); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondStatus(c, "The dish has been deleted")
}
