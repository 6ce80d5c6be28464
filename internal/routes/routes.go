package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ops-dashboard/internal/controllers"
	"ops-dashboard/internal/docgen"
	"ops-dashboard/internal/repositories"
	"ops-dashboard/internal/services"
	"ops-dashboard/pkg/config"
	"ops-dashboard/pkg/filestorage"
	"ops-dashboard/pkg/middleware"
	"ops-dashboard/pkg/observability"
	"ops-dashboard/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
	metrics *observability.Metrics,
) {
	logger.Info("InitRouter: начало создания маршрутов")

	// --- ОБЩИЕ КОМПОНЕНТЫ ---
	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Media.Root)
	if err != nil {
		logger.Fatal("не удалось создать файловое хранилище", zap.Error(err))
	}
	generator := docgen.NewGenerator(cfg.Media.Root, logger)

	// --- РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn)
	orderRepo := repositories.NewOrderRepository(dbConn)
	kpiRepo := repositories.NewKPIRepository(dbConn)
	incidentRepo := repositories.NewIncidentRepository(dbConn)
	shiftRepo := repositories.NewShiftRepository(dbConn)
	documentRepo := repositories.NewDocumentRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- СЕРВИСЫ ---
	roleResolver := services.NewRoleResolverService(userRepo, cacheRepo, logger, cfg.Auth.RoleCacheTTL)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	dashboardService := services.NewDashboardService(orderRepo, incidentRepo, kpiRepo, logger)
	orderService := services.NewOrderService(orderRepo, userRepo, logger)
	kpiService := services.NewKPIService(kpiRepo, logger)
	incidentService := services.NewIncidentService(incidentRepo, logger)
	shiftService := services.NewShiftService(shiftRepo, logger)
	reportService := services.NewReportService(reportRepo, generator, logger)
	documentService := services.NewDocumentService(documentRepo, fileStorage, logger)
	seederService := services.NewSeederService(
		userRepo, orderRepo, kpiRepo, incidentRepo, shiftRepo, documentRepo, generator, logger,
	)

	// --- КОНТРОЛЛЕРЫ ---
	authCtrl := controllers.NewAuthController(authService, logger)
	homeCtrl := controllers.NewHomeController(dashboardService, orderService, logger)
	orderCtrl := controllers.NewOrderController(orderService, logger)
	kpiCtrl := controllers.NewKPIController(kpiService, logger)
	incidentCtrl := controllers.NewIncidentController(incidentService, logger)
	shiftCtrl := controllers.NewShiftController(shiftService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)
	documentCtrl := controllers.NewDocumentController(documentService, logger)

	// --- МАРШРУТЫ ---
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	runAuthRouter(e, authCtrl)

	authMW := middleware.NewAuthMiddleware(jwtSvc, roleResolver, logger)
	secure := e.Group("", authMW.Auth, seedMiddleware(seederService, logger))

	runHomeRouter(secure, homeCtrl, authMW)
	runOrderRouter(secure, orderCtrl, authMW)
	runKPIRouter(secure, kpiCtrl, authMW)
	runIncidentRouter(secure, incidentCtrl, authMW)
	runShiftRouter(secure, shiftCtrl, authMW)
	runReportRouter(secure, reportCtrl, authMW)
	runDocumentRouter(secure, documentCtrl, authMW)

	logger.Info("InitRouter: маршруты созданы")
}

// seedMiddleware наполняет пустые таблицы демо-данными перед обработкой
// запроса. Сбой заполнения не блокирует запрос.
func seedMiddleware(seeder services.SeederServiceInterface, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := seeder.EnsureSampleData(c.Request().Context()); err != nil {
				logger.Warn("демо-данные не заполнены", zap.Error(err))
			}
			return next(c)
		}
	}
}
