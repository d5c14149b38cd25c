package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiselev-pavel-dev/menu-cafe/models"
	"github.com/kiselev-pavel-dev/menu-cafe/services"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
)

type SubMenuController struct {
	Service *services.SubMenuService
}

func NewSubMenuController(service *services.SubMenuService) *SubMenuController {
	return &SubMenuController{Service: service}
}

func (sc *SubMenuController) GetAllSubMenus(c *gin.Context) {
	menuID, ok := pathID(c, paramMenuID)
	if !ok {
		return
	}
	submenus, err := sc.Service.List(c.Request.Context(), menuID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, submenus)
}

func (sc *SubMenuController) GetSubMenuByID(c *gin.Context) {
	ids, ok := pathIDs(c, paramMenuID, paramSubMenuID)
	if !ok {
		return
	}
	submenu, err := sc.Service.Get(c.Request.Context(), ids[0], ids[1])
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, submenu)
}

func (sc *SubMenuController) CreateSubMenu(c *gin.Context) {
	menuID, ok := pathID(c, paramMenuID)
	if !ok {
		return
	}
	var input models.SubMenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	submenu, err := sc.Service.Create(c.Request.Context(), menuID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, submenu)
}

func (sc *SubMenuController) UpdateSubMenu(c *gin.Context) {
	ids, ok := pathIDs(c, paramMenuID, paramSubMenuID)
	if !ok {
		return
	}
	var input models.SubMenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondValidationError(c, err)
		return
	}
	submenu, err := sc.Service.Update(c.Request.Context(), ids[0], ids[1], input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, submenu)
}

func (sc *SubMenuController) DeleteSubMenu(c *gin.Context) {
	ids, ok := pathIDs(c, paramMenuID, paramSubMenuID)
	if !ok {
		return
	}
	if err := sc.Service.Delete(c.Request.Context(), ids[0], ids[1]); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondStatus(c, "The submenu has been deleted")
}
