package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kiselev-pavel-dev/menu-cafe/services"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
)

const (
	paramMenuID    = "menu_id"
	paramSubMenuID = "submenu_id"
	paramDishID    = "dish_id"
)

// pathID parses a numeric path parameter and answers 422 when it is not one.
// Ids must fit a signed 64-bit column.
func pathID(c *gin.Context, param string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || v > math.MaxInt64 {
		utils.RespondPathError(c, param)
		return 0, false
	}
	return uint(v), true
}

func pathIDs(c *gin.Context, params ...string) ([]uint, bool) {
	ids := make([]uint, 0, len(params))
	for _, p := range params {
		id, ok := pathID(c, p)
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func respondServiceError(c *gin.Context, err error) {
	var nf *services.NotFoundError
	switch {
	case errors.As(err, &nf):
		utils.InfoLogger.WithField("path", c.Request.URL.Path).Debug(nf.Describe())
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrQueueFull), errors.Is(err, services.ErrExportStopped):
		utils.ErrorLogger.WithError(err).Warn("export rejected")
		utils.RespondError(c, http.StatusServiceUnavailable, err)
	case errors.Is(err, services.ErrJobNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	default:
		utils.ErrorLogger.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
	}
}
