package services

import (
	"context"
	"io"

	"go.uber.org/zap"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/entities"
	"ops-dashboard/internal/repositories"
	"ops-dashboard/pkg/filestorage"
)

type DocumentServiceInterface interface {
	List(ctx context.Context) ([]dto.DocumentDTO, error)
	Upload(ctx context.Context, data dto.CreateDocumentDTO, file io.Reader, fileName string) error
}

type DocumentService struct {
	documentRepo repositories.DocumentRepositoryInterface
	fileStorage  filestorage.FileStorageInterface
	logger       *zap.Logger
}

func NewDocumentService(
	documentRepo repositories.DocumentRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) DocumentServiceInterface {
	return &DocumentService{
		documentRepo: documentRepo,
		fileStorage:  fileStorage,
		logger:       logger,
	}
}

func (s *DocumentService) List(ctx context.Context) ([]dto.DocumentDTO, error) {
	return s.documentRepo.List(ctx)
}

func (s *DocumentService) Upload(ctx context.Context, data dto.CreateDocumentDTO, file io.Reader, fileName string) error {
	ref, err := s.fileStorage.Save(file, fileName, "docs")
	if err != nil {
		s.logger.Error("ошибка сохранения файла документа", zap.Error(err))
		return err
	}

	return s.documentRepo.Create(ctx, entities.Document{
		Title:       data.Title,
		Slug:        data.Slug,
		Description: data.Description,
		Access:      data.Access,
		File:        ref,
	})
}
