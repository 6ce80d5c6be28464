package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/services"
	apperrors "ops-dashboard/pkg/errors"
	"ops-dashboard/pkg/utils"
)

type OrderController struct {
	orderService services.OrderServiceInterface
	logger       *zap.Logger
}

func NewOrderController(orderService services.OrderServiceInterface, logger *zap.Logger) *OrderController {
	return &OrderController{orderService: orderService, logger: logger}
}

func (ctrl *OrderController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func parseID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.ErrBadRequest
	}
	return id, nil
}

func (ctrl *OrderController) List(c echo.Context) error {
	filter := dto.OrderFilter{
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
		Page:     utils.ParsePage(c.QueryParams()),
	}

	orders, pagination, err := ctrl.orderService.List(c.Request().Context(), filter)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	body := echo.Map{"orders": orders, "pagination": pagination}
	return utils.SuccessResponse(c, body, "Очередь заявок", http.StatusOK, pagination.TotalCount)
}

// NewForm отдаёт наборы значений для формы создания заявки.
func (ctrl *OrderController) NewForm(c echo.Context) error {
	choices, err := ctrl.orderService.Choices(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, choices, "Форма создания заявки", http.StatusOK)
}

func (ctrl *OrderController) Create(c echo.Context) error {
	var payload dto.CreateOrderDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Create: ошибка привязки данных заявки", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.ErrBadRequest)
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	order, err := ctrl.orderService.Create(c.Request().Context(), userID, payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, order, "Заявка создана", http.StatusCreated)
}

func (ctrl *OrderController) Detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	ctx := c.Request().Context()
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	role, err := utils.GetRoleFromCtx(ctx)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	order, err := ctrl.orderService.Find(ctx, id, userID, role)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, order, "Заявка", http.StatusOK)
}

// EditForm отдаёт текущее состояние заявки вместе с наборами значений формы.
func (ctrl *OrderController) EditForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	ctx := c.Request().Context()
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	role, err := utils.GetRoleFromCtx(ctx)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	order, err := ctrl.orderService.Find(ctx, id, userID, role)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	choices, err := ctrl.orderService.Choices(ctx)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	body := echo.Map{"order": order, "choices": choices}
	return utils.SuccessResponse(c, body, "Форма редактирования заявки", http.StatusOK)
}

func (ctrl *OrderController) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	var payload dto.UpdateOrderDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Update: ошибка привязки данных заявки", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.ErrBadRequest)
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	order, err := ctrl.orderService.Update(c.Request().Context(), id, payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, order, "Заявка обновлена", http.StatusOK)
}

// API — плоская выдача очереди для интеграций.
func (ctrl *OrderController) API(c echo.Context) error {
	items, err := ctrl.orderService.ListAPI(c.Request().Context(),
		c.QueryParam("status"), c.QueryParam("priority"))
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"results": items})
}
