package routes

import (
	"github.com/labstack/echo/v4"

	"ops-dashboard/internal/authz"
	"ops-dashboard/internal/controllers"
	"ops-dashboard/pkg/middleware"
)

func runOrderRouter(secure *echo.Group, orderCtrl *controllers.OrderController, authMW *middleware.AuthMiddleware) {
	staffOnly := authMW.RequireRoles(authz.RoleAdmin, authz.RoleManager)
	withClient := authMW.RequireRoles(authz.RoleAdmin, authz.RoleManager, authz.RoleClient)
	{
		secure.GET("/queue/", orderCtrl.List, staffOnly)
		secure.GET("/queue/new/", orderCtrl.NewForm, withClient)
		secure.POST("/queue/new/", orderCtrl.Create, withClient)
		secure.GET("/queue/:id/", orderCtrl.Detail, withClient)
		secure.GET("/queue/:id/edit/", orderCtrl.EditForm, staffOnly)
		secure.POST("/queue/:id/edit/", orderCtrl.Update, staffOnly)
		secure.GET("/api/queue/", orderCtrl.API, staffOnly)
	}
}
