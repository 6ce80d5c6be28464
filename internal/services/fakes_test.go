package services

import (
	"context"
	"time"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/entities"
	apperrors "ops-dashboard/pkg/errors"
)

// Заглушки репозиториев для тестов сервисного слоя.

type fakeUserRepo struct {
	byLogin map[string]*entities.User
	byID    map[uint64]*entities.User
	short   []dto.ShortUserDTO
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byLogin: make(map[string]*entities.User),
		byID:    make(map[uint64]*entities.User),
	}
}

func (f *fakeUserRepo) add(user *entities.User) {
	f.byLogin[user.Login] = user
	f.byID[user.ID] = user
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) FindByLogin(ctx context.Context, login string) (*entities.User, error) {
	if u, ok := f.byLogin[login]; ok {
		return u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) ListShort(ctx context.Context) ([]dto.ShortUserDTO, error) {
	return f.short, nil
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user entities.User, role string) (*entities.Profile, error) {
	return &entities.Profile{UserID: user.ID, Role: role}, nil
}

type fakeOrderRepo struct {
	created    []entities.Order
	findResult *dto.OrderDTO
	total      uint64
	lastLimit  uint64
	lastOffset uint64
}

func (f *fakeOrderRepo) Count(ctx context.Context, status, priority string) (uint64, error) {
	return f.total, nil
}

func (f *fakeOrderRepo) CountOpen(ctx context.Context) (uint64, error) {
	return f.total, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, status, priority string, limit, offset uint64) ([]dto.OrderDTO, error) {
	f.lastLimit = limit
	f.lastOffset = offset
	return []dto.OrderDTO{}, nil
}

func (f *fakeOrderRepo) ListByInitiator(ctx context.Context, initiatorID uint64) ([]dto.OrderDTO, error) {
	return []dto.OrderDTO{}, nil
}

func (f *fakeOrderRepo) ListAPI(ctx context.Context, status, priority string, limit uint64) ([]dto.OrderAPIItemDTO, error) {
	f.lastLimit = limit
	return []dto.OrderAPIItemDTO{}, nil
}

func (f *fakeOrderRepo) Find(ctx context.Context, id uint64) (*dto.OrderDTO, error) {
	if f.findResult == nil {
		return nil, apperrors.ErrNotFound
	}
	return f.findResult, nil
}

func (f *fakeOrderRepo) FirstID(ctx context.Context) (uint64, bool, error) {
	if len(f.created) == 0 {
		return 0, false, nil
	}
	return 1, true, nil
}

func (f *fakeOrderRepo) Create(ctx context.Context, order entities.Order) (uint64, error) {
	f.created = append(f.created, order)
	if f.findResult == nil {
		f.findResult = &dto.OrderDTO{ID: uint64(len(f.created)), Title: order.Title}
	}
	return uint64(len(f.created)), nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, id uint64, data dto.UpdateOrderDTO) error {
	if f.findResult == nil {
		return apperrors.ErrNotFound
	}
	return nil
}

type fakeKPIRepo struct {
	created []entities.KPIRecord
}

func (f *fakeKPIRepo) Count(ctx context.Context) (uint64, error) {
	return uint64(len(f.created)), nil
}

func (f *fakeKPIRepo) ListSince(ctx context.Context, since time.Time) ([]entities.KPIRecord, error) {
	result := make([]entities.KPIRecord, 0)
	for _, rec := range f.created {
		if !rec.Timestamp.Before(since) {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (f *fakeKPIRepo) ListAPI(ctx context.Context, metric string, limit uint64) ([]entities.KPIRecord, error) {
	return f.created, nil
}

func (f *fakeKPIRepo) Create(ctx context.Context, record entities.KPIRecord) error {
	f.created = append(f.created, record)
	return nil
}

type fakeIncidentRepo struct {
	created []entities.Incident
}

func (f *fakeIncidentRepo) Count(ctx context.Context) (uint64, error) {
	return uint64(len(f.created)), nil
}

func (f *fakeIncidentRepo) CountOpen(ctx context.Context) (uint64, error) {
	var open uint64
	for _, inc := range f.created {
		if inc.Status != "Закрыт" {
			open++
		}
	}
	return open, nil
}

func (f *fakeIncidentRepo) List(ctx context.Context, limit, offset uint64) ([]dto.IncidentDTO, error) {
	return []dto.IncidentDTO{}, nil
}

func (f *fakeIncidentRepo) Create(ctx context.Context, incident entities.Incident) error {
	f.created = append(f.created, incident)
	return nil
}

type fakeShiftRepo struct {
	created []entities.Shift
}

func (f *fakeShiftRepo) Count(ctx context.Context) (uint64, error) {
	return uint64(len(f.created)), nil
}

func (f *fakeShiftRepo) List(ctx context.Context) ([]dto.ShiftDTO, error) {
	return []dto.ShiftDTO{}, nil
}

func (f *fakeShiftRepo) Create(ctx context.Context, shift entities.Shift) error {
	f.created = append(f.created, shift)
	return nil
}

type fakeDocumentRepo struct {
	created []entities.Document
}

func (f *fakeDocumentRepo) Count(ctx context.Context) (uint64, error) {
	return uint64(len(f.created)), nil
}

func (f *fakeDocumentRepo) List(ctx context.Context) ([]dto.DocumentDTO, error) {
	return []dto.DocumentDTO{}, nil
}

func (f *fakeDocumentRepo) Create(ctx context.Context, doc entities.Document) error {
	f.created = append(f.created, doc)
	return nil
}

func (f *fakeDocumentRepo) CreateIfAbsent(ctx context.Context, doc entities.Document) error {
	for _, existing := range f.created {
		if existing.Slug == doc.Slug {
			return nil
		}
	}
	f.created = append(f.created, doc)
	return nil
}

type fakeReportRepo struct {
	created []entities.Report
}

func (f *fakeReportRepo) List(ctx context.Context) ([]dto.ReportDTO, error) {
	return []dto.ReportDTO{}, nil
}

func (f *fakeReportRepo) Find(ctx context.Context, id uint64) (*entities.Report, error) {
	if id == 0 || id > uint64(len(f.created)) {
		return nil, apperrors.ErrNotFound
	}
	rep := f.created[id-1]
	rep.ID = id
	return &rep, nil
}

func (f *fakeReportRepo) Create(ctx context.Context, report entities.Report) (uint64, error) {
	f.created = append(f.created, report)
	return uint64(len(f.created)), nil
}
