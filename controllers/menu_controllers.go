package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiselev-pavel-dev/menu-cafe/models"
	"github.com/kiselev-pavel-dev/menu-cafe/services"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// GetAllMenus
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	menus, err := mc.Service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, menus)
}

// GetMenuByID
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, ok := pathID(c, paramMenuID)
	if !ok {
		return
	}
	menu, err := mc.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, menu)
}

// CreateMenu
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var input models.MenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	menu, err := mc.Service.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, menu)
}

// UpdateMenu
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id, ok := pathID(c, paramMenuID)
	if !ok {
		return
	}
	var input models.MenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	menu, err := mc.Service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, menu)
}

// DeleteMenu
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id, ok := pathID(c, paramMenuID)
	if !ok {
		return
	}
	if err := mc.Service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondStatus(c, "The menu has been deleted")
}
