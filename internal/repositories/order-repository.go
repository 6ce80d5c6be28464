package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/entities"
	apperrors "ops-dashboard/pkg/errors"
)

type OrderRepositoryInterface interface {
	Count(ctx context.Context, status, priority string) (uint64, error)
	CountOpen(ctx context.Context) (uint64, error)
	List(ctx context.Context, status, priority string, limit, offset uint64) ([]dto.OrderDTO, error)
	ListByInitiator(ctx context.Context, initiatorID uint64) ([]dto.OrderDTO, error)
	ListAPI(ctx context.Context, status, priority string, limit uint64) ([]dto.OrderAPIItemDTO, error)
	Find(ctx context.Context, id uint64) (*dto.OrderDTO, error)
	FirstID(ctx context.Context) (uint64, bool, error)
	Create(ctx context.Context, order entities.Order) (uint64, error)
	Update(ctx context.Context, id uint64, data dto.UpdateOrderDTO) error
}

type OrderRepository struct {
	storage *pgxpool.Pool
}

func NewOrderRepository(storage *pgxpool.Pool) OrderRepositoryInterface {
	return &OrderRepository{storage: storage}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// withFilters добавляет точные фильтры статуса и приоритета. Нераспознанные
// значения просто ничего не находят — валидации фильтров нет намеренно.
func withFilters(b sq.SelectBuilder, status, priority string) sq.SelectBuilder {
	if status != "" {
		b = b.Where(sq.Eq{"o.status": status})
	}
	if priority != "" {
		b = b.Where(sq.Eq{"o.priority": priority})
	}
	return b
}

func (r *OrderRepository) Count(ctx context.Context, status, priority string) (uint64, error) {
	query, args, err := withFilters(psql.Select("COUNT(*)").From("orders o"), status, priority).ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки COUNT-запроса: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта заявок: %w", err)
	}
	return total, nil
}

func (r *OrderRepository) CountOpen(ctx context.Context) (uint64, error) {
	var total uint64
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE status IN ($1, $2)`,
		entities.OrderStatusNew, entities.OrderStatusInProgress,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта открытых заявок: %w", err)
	}
	return total, nil
}

func orderSelect() sq.SelectBuilder {
	return psql.Select(
		"o.id", "o.title", "o.description", "o.status", "o.priority", "o.sla_deadline", "o.created_at",
		"initiator.id", "initiator.fio", "executor.id", "executor.fio",
	).From("orders o").
		Join("users initiator ON o.initiator_id = initiator.id").
		LeftJoin("users executor ON o.executor_id = executor.id")
}

func scanOrder(rows pgx.Row) (*dto.OrderDTO, error) {
	var order dto.OrderDTO
	var executorID sql.NullInt64
	var executorFio sql.NullString
	var slaDeadline sql.NullTime
	var createdAt time.Time

	err := rows.Scan(
		&order.ID, &order.Title, &order.Description, &order.Status, &order.Priority,
		&slaDeadline, &createdAt,
		&order.Initiator.ID, &order.Initiator.Fio,
		&executorID, &executorFio,
	)
	if err != nil {
		return nil, err
	}

	if executorID.Valid {
		order.Executor = &dto.ShortUserDTO{ID: uint64(executorID.Int64), Fio: executorFio.String}
	}
	if slaDeadline.Valid {
		order.SLADeadline = slaDeadline.Time.Format(time.RFC3339)
	}
	order.CreatedAt = createdAt.Format(time.RFC3339)
	return &order, nil
}

func (r *OrderRepository) queryOrders(ctx context.Context, b sq.SelectBuilder) ([]dto.OrderDTO, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка заявок: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка заявок: %w", err)
	}
	defer rows.Close()

	orders := make([]dto.OrderDTO, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования заявки в списке: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) List(ctx context.Context, status, priority string, limit, offset uint64) ([]dto.OrderDTO, error) {
	b := withFilters(orderSelect(), status, priority).
		OrderBy("o.created_at DESC").
		Limit(limit).Offset(offset)
	return r.queryOrders(ctx, b)
}

func (r *OrderRepository) ListByInitiator(ctx context.Context, initiatorID uint64) ([]dto.OrderDTO, error) {
	b := orderSelect().
		Where(sq.Eq{"o.initiator_id": initiatorID}).
		OrderBy("o.created_at DESC")
	return r.queryOrders(ctx, b)
}

func (r *OrderRepository) ListAPI(ctx context.Context, status, priority string, limit uint64) ([]dto.OrderAPIItemDTO, error) {
	b := withFilters(
		psql.Select("o.id", "o.title", "o.status", "o.priority", "o.created_at").From("orders o"),
		status, priority,
	).OrderBy("o.created_at DESC").Limit(limit)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки API-запроса заявок: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения заявок для API: %w", err)
	}
	defer rows.Close()

	items := make([]dto.OrderAPIItemDTO, 0)
	for rows.Next() {
		var item dto.OrderAPIItemDTO
		var createdAt time.Time
		if err := rows.Scan(&item.ID, &item.Title, &item.Status, &item.Priority, &createdAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования заявки для API: %w", err)
		}
		item.CreatedAt = createdAt.Format(time.RFC3339)
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *OrderRepository) Find(ctx context.Context, id uint64) (*dto.OrderDTO, error) {
	query, args, err := orderSelect().Where(sq.Eq{"o.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса заявки: %w", err)
	}
	order, err := scanOrder(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования заявки: %w", err)
	}
	return order, nil
}

func (r *OrderRepository) FirstID(ctx context.Context) (uint64, bool, error) {
	var id uint64
	err := r.storage.QueryRow(ctx, `SELECT id FROM orders ORDER BY id LIMIT 1`).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("ошибка поиска первой заявки: %w", err)
	}
	return id, true, nil
}

func (r *OrderRepository) Create(ctx context.Context, order entities.Order) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO orders (title, description, initiator_id, executor_id, status, priority, sla_deadline)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		order.Title, order.Description, order.InitiatorID, order.ExecutorID,
		order.Status, order.Priority, order.SLADeadline,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания заявки: %w", err)
	}
	return id, nil
}

// Update заменяет редактируемые поля целиком; initiator_id и created_at
// не затрагиваются.
func (r *OrderRepository) Update(ctx context.Context, id uint64, data dto.UpdateOrderDTO) error {
	var executorID interface{}
	if data.ExecutorID != 0 {
		executorID = data.ExecutorID
	}
	tag, err := r.storage.Exec(ctx,
		`UPDATE orders
		 SET title = $1, description = $2, priority = $3, status = $4, executor_id = $5
		 WHERE id = $6`,
		data.Title, data.Description, data.Priority, data.Status, executorID, id,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления заявки: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
