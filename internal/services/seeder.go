package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"ops-dashboard/internal/docgen"
	"ops-dashboard/internal/entities"
	"ops-dashboard/internal/repositories"
	apperrors "ops-dashboard/pkg/errors"
)

type SeederServiceInterface interface {
	EnsureSampleData(ctx context.Context) error
}

// SeederService наполняет пустые таблицы демонстрационными данными.
// Полный прогон выполняется не чаще одного раза на процесс; внутри прогона
// каждая сущность засевается только при нулевом счётчике, так что частично
// заполненная база не получает дублей.
type SeederService struct {
	userRepo     repositories.UserRepositoryInterface
	orderRepo    repositories.OrderRepositoryInterface
	kpiRepo      repositories.KPIRepositoryInterface
	incidentRepo repositories.IncidentRepositoryInterface
	shiftRepo    repositories.ShiftRepositoryInterface
	documentRepo repositories.DocumentRepositoryInterface
	generator    *docgen.Generator
	logger       *zap.Logger

	once sync.Once
}

func NewSeederService(
	userRepo repositories.UserRepositoryInterface,
	orderRepo repositories.OrderRepositoryInterface,
	kpiRepo repositories.KPIRepositoryInterface,
	incidentRepo repositories.IncidentRepositoryInterface,
	shiftRepo repositories.ShiftRepositoryInterface,
	documentRepo repositories.DocumentRepositoryInterface,
	generator *docgen.Generator,
	logger *zap.Logger,
) SeederServiceInterface {
	return &SeederService{
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		kpiRepo:      kpiRepo,
		incidentRepo: incidentRepo,
		shiftRepo:    shiftRepo,
		documentRepo: documentRepo,
		generator:    generator,
		logger:       logger,
	}
}

func (s *SeederService) EnsureSampleData(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		err = s.seed(ctx)
	})
	if err != nil {
		s.logger.Error("ошибка заполнения демо-данных", zap.Error(err))
	}
	return err
}

// findUser возвращает nil без ошибки, если пользователь не заведён:
// отсутствие принципала лишь пропускает зависящие от него наборы.
func (s *SeederService) findUser(ctx context.Context, login string) (*entities.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *SeederService) seed(ctx context.Context) error {
	admin, err := s.findUser(ctx, "admin")
	if err != nil {
		return err
	}
	manager, err := s.findUser(ctx, "manager")
	if err != nil {
		return err
	}
	client, err := s.findUser(ctx, "client")
	if err != nil {
		return err
	}

	if err := s.seedOrders(ctx, client, manager, admin); err != nil {
		return err
	}
	if err := s.seedKPI(ctx); err != nil {
		return err
	}
	if err := s.seedIncidents(ctx); err != nil {
		return err
	}
	if err := s.seedShifts(ctx, manager, admin); err != nil {
		return err
	}
	return s.seedDocuments(ctx)
}

func (s *SeederService) seedOrders(ctx context.Context, client, manager, admin *entities.User) error {
	count, err := s.orderRepo.Count(ctx, "", "")
	if err != nil {
		return err
	}
	if count > 0 || client == nil {
		return nil
	}

	executor := manager
	if executor == nil {
		executor = admin
	}
	var executorID null.Uint64
	if executor != nil {
		executorID = null.Uint64From(executor.ID)
	}

	now := time.Now()
	orders := []entities.Order{
		{
			Title:       "Недоступен портал клиентов",
			Description: "Пользователи сообщают о недоступности портала авторизации.",
			InitiatorID: client.ID,
			ExecutorID:  executorID,
			Status:      entities.OrderStatusInProgress,
			Priority:    entities.OrderPriorityHigh,
			SLADeadline: null.TimeFrom(now.Add(4 * time.Hour)),
		},
		{
			Title:       "Ошибка при формировании отчёта",
			Description: "При генерации отчёта за месяц появляется сообщение об ошибке.",
			InitiatorID: client.ID,
			ExecutorID:  executorID,
			Status:      entities.OrderStatusNew,
			Priority:    entities.OrderPriorityMedium,
			SLADeadline: null.TimeFrom(now.Add(8 * time.Hour)),
		},
		{
			Title:       "Уточнение прав доступа",
			Description: "Необходимо выдать права на просмотр отчётов для нового сотрудника.",
			InitiatorID: client.ID,
			ExecutorID:  executorID,
			Status:      entities.OrderStatusDone,
			Priority:    entities.OrderPriorityLow,
			SLADeadline: null.TimeFrom(now.Add(-1 * time.Hour)),
		},
	}
	for _, order := range orders {
		if _, err := s.orderRepo.Create(ctx, order); err != nil {
			return err
		}
	}
	return nil
}

func (s *SeederService) seedKPI(ctx context.Context) error {
	count, err := s.kpiRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	base := time.Now()
	for i := 0; i < 7; i++ {
		day := base.AddDate(0, 0, -i)
		if err := s.kpiRepo.Create(ctx, entities.KPIRecord{
			Metric:      "Среднее время решения",
			Value:       4.0 - float64(i)*0.2,
			Timestamp:   day,
			ServiceName: "Портал клиентов",
		}); err != nil {
			return err
		}
		if err := s.kpiRepo.Create(ctx, entities.KPIRecord{
			Metric:      "Доступность сервиса",
			Value:       99.0 + float64(i)*0.1,
			Timestamp:   day,
			ServiceName: "Система биллинга",
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *SeederService) seedIncidents(ctx context.Context) error {
	count, err := s.incidentRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var relatedOrder null.Uint64
	firstOrderID, found, err := s.orderRepo.FirstID(ctx)
	if err != nil {
		return err
	}
	if found {
		relatedOrder = null.Uint64From(firstOrderID)
	}

	now := time.Now()
	incidents := []entities.Incident{
		{
			Title:       "Снижение скорости обработки запросов",
			Description: "Зафиксировано увеличение времени отклика портала клиентов.",
			Status:      "В работе",
			Criticality: entities.IncidentCriticalityMedium,
			DetectedAt:  now.Add(-3 * time.Hour),
			OrderID:     relatedOrder,
		},
		{
			Title:       "Кратковременная недоступность биллинга",
			Description: "Пользователи не могли формировать счета в течение 10 минут.",
			Status:      "Закрыт",
			Criticality: entities.IncidentCriticalityHigh,
			DetectedAt:  now.Add(-26 * time.Hour),
			ClosedAt:    null.TimeFrom(now.Add(-24 * time.Hour)),
		},
	}
	for _, incident := range incidents {
		if err := s.incidentRepo.Create(ctx, incident); err != nil {
			return err
		}
	}
	return nil
}

func (s *SeederService) seedShifts(ctx context.Context, manager, admin *entities.User) error {
	count, err := s.shiftRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 || (manager == nil && admin == nil) {
		return nil
	}

	dayEmployee := manager
	if dayEmployee == nil {
		dayEmployee = admin
	}
	nightEmployee := admin
	if nightEmployee == nil {
		nightEmployee = manager
	}

	baseDate := time.Now().Truncate(24 * time.Hour)
	for i := 0; i < 5; i++ {
		err := s.shiftRepo.Create(ctx, entities.Shift{
			EmployeeID: dayEmployee.ID,
			Date:       baseDate.AddDate(0, 0, i),
			Shift:      entities.ShiftDay,
			Comment:    "Плановая дневная смена",
			Phone:      "+7 (900) 000-00-01",
		})
		if err != nil {
			return err
		}
	}
	return s.shiftRepo.Create(ctx, entities.Shift{
		EmployeeID: nightEmployee.ID,
		Date:       baseDate,
		Shift:      entities.ShiftNight,
		Comment:    "Ночная смена дежурного инженера",
		Phone:      "+7 (900) 000-00-02",
	})
}

func (s *SeederService) seedDocuments(ctx context.Context) error {
	count, err := s.documentRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := []struct {
		slug        string
		title       string
		body        string
		description string
	}{
		{
			slug:        "reglament_incidents",
			title:       "Регламент обработки инцидентов",
			body:        "Документ описывает порядок регистрации, классификации и эскалации инцидентов.",
			description: "Порядок регистрации и сопровождения инцидентов.",
		},
		{
			slug:        "reglament_shifts",
			title:       "Регламент организации смен",
			body:        "Документ фиксирует правила формирования графика смен и обязанности дежурного персонала.",
			description: "Описание процедуры планирования смен и ответственности.",
		},
		{
			slug:        "instruction_portal",
			title:       "Инструкция пользователя портала",
			body:        "Инструкция по работе с порталом и отслеживанию статусов обращений.",
			description: "Руководство по работе с порталом для клиентов.",
		},
	}

	for _, doc := range docs {
		ref, err := s.generator.Generate("docs", doc.slug, docgen.Content{
			Heading:    doc.title,
			Paragraphs: []string{doc.body},
		})
		if err != nil {
			s.logger.Warn("не удалось сгенерировать демо-документ",
				zap.String("slug", doc.slug), zap.Error(err))
			continue
		}
		// Запись без существующего файла не заводится.
		if !s.generator.Exists(ref) {
			continue
		}
		err = s.documentRepo.CreateIfAbsent(ctx, entities.Document{
			Title:       doc.title,
			Slug:        doc.slug,
			Description: doc.description,
			Access:      entities.DocumentAccessPublic,
			File:        ref,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
