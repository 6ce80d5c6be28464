package routes

import (
	"github.com/labstack/echo/v4"

	"ops-dashboard/internal/controllers"
)

func runAuthRouter(e *echo.Echo, authCtrl *controllers.AuthController) {
	auth := e.Group("/auth")
	{
		auth.POST("/login", authCtrl.Login)
		auth.POST("/refresh", authCtrl.Refresh)
	}
}
