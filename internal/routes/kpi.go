package routes

import (
	"github.com/labstack/echo/v4"

	"ops-dashboard/internal/authz"
	"ops-dashboard/internal/controllers"
	"ops-dashboard/pkg/middleware"
)

func runKPIRouter(secure *echo.Group, kpiCtrl *controllers.KPIController, authMW *middleware.AuthMiddleware) {
	staffOnly := authMW.RequireRoles(authz.RoleAdmin, authz.RoleManager)
	{
		secure.GET("/kpi/", kpiCtrl.Dashboard, staffOnly)
		secure.GET("/api/kpi/", kpiCtrl.API, staffOnly)
	}
}
