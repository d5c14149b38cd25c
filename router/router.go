package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiselev-pavel-dev/menu-cafe/controllers"
	"github.com/kiselev-pavel-dev/menu-cafe/middlewares"
	"github.com/kiselev-pavel-dev/menu-cafe/services"
)

// Dependencies are the pieces the HTTP layer is built from.
type Dependencies struct {
	Menus    *services.MenuService
	SubMenus *services.SubMenuService
	Dishes   *services.DishService
	Export   *services.ExportService

	APIPrefix   string
	CORSOrigin  string
	RateLimiter *middlewares.RateLimiter
}

func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(deps.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.RateLimit())
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	menuCtrl := controllers.NewMenuController(deps.Menus)
	submenuCtrl := controllers.NewSubMenuController(deps.SubMenus)
	dishCtrl := controllers.NewDishController(deps.Dishes)
	exportCtrl := controllers.NewExportController(deps.Export)

	api := r.Group(deps.APIPrefix)

	api.GET("/menus", menuCtrl.GetAllMenus)
	api.POST("/menus", menuCtrl.CreateMenu)
	api.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	api.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
	api.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

	api.GET("/menus/:menu_id/submenus", submenuCtrl.GetAllSubMenus)
	api.POST("/menus/:menu_id/submenus", submenuCtrl.CreateSubMenu)
	api.GET("/menus/:menu_id/submenus/:submenu_id", submenuCtrl.GetSubMenuByID)
	api.PATCH("/menus/:menu_id/submenus/:submenu_id", submenuCtrl.UpdateSubMenu)
	api.DELETE("/menus/:menu_id/submenus/:submenu_id", submenuCtrl.DeleteSubMenu)

	dishes := api.Group("/menus/:menu_id/submenus/:submenu_id/dishes")
	{
		dishes.GET("", dishCtrl.GetAllDishes)
		dishes.POST("", dishCtrl.CreateDish)
		dishes.GET("/:dish_id", dishCtrl.GetDishByID)
		dishes.PATCH("/:dish_id", dishCtrl.UpdateDish)
		dishes.DELETE("/:dish_id", dishCtrl.DeleteDish)
	}

	api.GET("/create_menu_file", exportCtrl.CreateMenuFile)
	api.GET("/get_menu_file/:job_id", exportCtrl.GetMenuFile)

	return r
}
