package routes

import (
	"github.com/labstack/echo/v4"

	"ops-dashboard/internal/authz"
	"ops-dashboard/internal/controllers"
	"ops-dashboard/pkg/middleware"
)

func runIncidentRouter(secure *echo.Group, incidentCtrl *controllers.IncidentController, authMW *middleware.AuthMiddleware) {
	staffOnly := authMW.RequireRoles(authz.RoleAdmin, authz.RoleManager)
	{
		secure.GET("/incidents/", incidentCtrl.List, staffOnly)
	}
}
