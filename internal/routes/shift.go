package routes

import (
	"github.com/labstack/echo/v4"

	"ops-dashboard/internal/authz"
	"ops-dashboard/internal/controllers"
	"ops-dashboard/pkg/middleware"
)

func runShiftRouter(secure *echo.Group, shiftCtrl *controllers.ShiftController, authMW *middleware.AuthMiddleware) {
	staffOnly := authMW.RequireRoles(authz.RoleAdmin, authz.RoleManager)
	{
		secure.GET("/shifts/", shiftCtrl.List, staffOnly)
	}
}
