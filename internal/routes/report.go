package routes

import (
	"github.com/labstack/echo/v4"

	"ops-dashboard/internal/authz"
	"ops-dashboard/internal/controllers"
	"ops-dashboard/pkg/middleware"
)

func runReportRouter(secure *echo.Group, reportCtrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	staffOnly := authMW.RequireRoles(authz.RoleAdmin, authz.RoleManager)
	{
		secure.GET("/reports/", reportCtrl.List, staffOnly)
		secure.POST("/reports/", reportCtrl.Create, staffOnly)
		secure.GET("/reports/:id/download/", reportCtrl.Download, staffOnly)
	}
}
