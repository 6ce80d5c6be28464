package routes

import (
	"github.com/labstack/echo/v4"

	"ops-dashboard/internal/authz"
	"ops-dashboard/internal/controllers"
	"ops-dashboard/pkg/middleware"
)

func runDocumentRouter(secure *echo.Group, documentCtrl *controllers.DocumentController, authMW *middleware.AuthMiddleware) {
	staffOnly := authMW.RequireRoles(authz.RoleAdmin, authz.RoleManager)
	{
		secure.GET("/docs/", documentCtrl.List, staffOnly)
		secure.POST("/docs/", documentCtrl.Upload, staffOnly)
	}
}
