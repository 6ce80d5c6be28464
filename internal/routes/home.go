package routes

import (
	"github.com/labstack/echo/v4"

	"ops-dashboard/internal/authz"
	"ops-dashboard/internal/controllers"
	"ops-dashboard/pkg/middleware"
)

func runHomeRouter(secure *echo.Group, homeCtrl *controllers.HomeController, authMW *middleware.AuthMiddleware) {
	anyAuthenticated := authMW.RequireRoles(authz.RoleAdmin, authz.RoleManager, authz.RoleClient)
	{
		secure.GET("/", homeCtrl.Home, anyAuthenticated)
		secure.GET("/client/", homeCtrl.ClientHome, anyAuthenticated)
	}
}
