package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/services"
	apperrors "ops-dashboard/pkg/errors"
	"ops-dashboard/pkg/utils"
)

type DocumentController struct {
	documentService services.DocumentServiceInterface
	logger          *zap.Logger
}

func NewDocumentController(documentService services.DocumentServiceInterface, logger *zap.Logger) *DocumentController {
	return &DocumentController{documentService: documentService, logger: logger}
}

func (ctrl *DocumentController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *DocumentController) List(c echo.Context) error {
	docs, err := ctrl.documentService.List(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, docs, "Список документов", http.StatusOK, uint64(len(docs)))
}

// Upload принимает метаданные и файл одной multipart-формой.
func (ctrl *DocumentController) Upload(c echo.Context) error {
	payload := dto.CreateDocumentDTO{
		Title:       c.FormValue("title"),
		Slug:        c.FormValue("slug"),
		Description: c.FormValue("description"),
		Access:      c.FormValue("access"),
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		ctrl.logger.Error("Upload: файл не передан", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.ErrBadRequest)
	}
	src, err := fileHeader.Open()
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	defer src.Close()

	err = ctrl.documentService.Upload(c.Request().Context(), payload, src, fileHeader.Filename)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, nil, "Документ загружен", http.StatusCreated)
}
