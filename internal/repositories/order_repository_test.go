package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/entities"
	apperrors "ops-dashboard/pkg/errors"
)

// Интеграционные тесты идут против живой БД с применёнными миграциями.
// Без TEST_DATABASE_URL набор пропускается.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL не задан, интеграционные тесты пропущены")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`TRUNCATE TABLE reports, documents, shifts, incidents, kpi_records, orders, profiles, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "не удалось очистить таблицы")
}

func seedUsers(t *testing.T, pool *pgxpool.Pool) (initiatorID, executorID uint64) {
	t.Helper()
	ctx := context.Background()

	err := pool.QueryRow(ctx,
		`INSERT INTO users (login, password, fio) VALUES ('client', 'x', 'Клиент портала') RETURNING id`,
	).Scan(&initiatorID)
	require.NoError(t, err)

	err = pool.QueryRow(ctx,
		`INSERT INTO users (login, password, fio) VALUES ('manager', 'x', 'Дежурный менеджер') RETURNING id`,
	).Scan(&executorID)
	require.NoError(t, err)
	return initiatorID, executorID
}

func TestOrderRepositoryCreateAndFind(t *testing.T) {
	pool := newTestPool(t)
	cleanupTables(t, pool)
	initiatorID, executorID := seedUsers(t, pool)

	repo := NewOrderRepository(pool)
	ctx := context.Background()

	id, err := repo.Create(ctx, entities.Order{
		Title:       "Недоступен портал клиентов",
		Description: "Пользователи сообщают о недоступности портала авторизации.",
		InitiatorID: initiatorID,
		ExecutorID:  null.Uint64From(executorID),
		Status:      entities.OrderStatusInProgress,
		Priority:    entities.OrderPriorityHigh,
		SLADeadline: null.TimeFrom(time.Now().Add(4 * time.Hour)),
	})
	require.NoError(t, err)

	order, err := repo.Find(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Недоступен портал клиентов", order.Title)
	assert.Equal(t, initiatorID, order.Initiator.ID)
	require.NotNil(t, order.Executor)
	assert.Equal(t, executorID, order.Executor.ID)
	assert.NotEmpty(t, order.SLADeadline)
}

func TestOrderRepositoryFindMissing(t *testing.T) {
	pool := newTestPool(t)
	cleanupTables(t, pool)

	repo := NewOrderRepository(pool)

	_, err := repo.Find(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderRepositoryFilters(t *testing.T) {
	pool := newTestPool(t)
	cleanupTables(t, pool)
	initiatorID, _ := seedUsers(t, pool)

	repo := NewOrderRepository(pool)
	ctx := context.Background()

	orders := []entities.Order{
		{Title: "А", InitiatorID: initiatorID, Status: "new", Priority: "high"},
		{Title: "Б", InitiatorID: initiatorID, Status: "in_progress", Priority: "medium"},
		{Title: "В", InitiatorID: initiatorID, Status: "done", Priority: "high"},
	}
	for _, o := range orders {
		_, err := repo.Create(ctx, o)
		require.NoError(t, err)
	}

	total, err := repo.Count(ctx, "", "high")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)

	list, err := repo.List(ctx, "new", "", 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "А", list[0].Title)

	// Нераспознанное значение фильтра просто ничего не находит.
	empty, err := repo.List(ctx, "garbage", "", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	open, err := repo.CountOpen(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), open)
}

func TestOrderRepositoryUpdate(t *testing.T) {
	pool := newTestPool(t)
	cleanupTables(t, pool)
	initiatorID, executorID := seedUsers(t, pool)

	repo := NewOrderRepository(pool)
	ctx := context.Background()

	id, err := repo.Create(ctx, entities.Order{
		Title:       "Ошибка при формировании отчёта",
		InitiatorID: initiatorID,
		Status:      "new",
		Priority:    "medium",
	})
	require.NoError(t, err)

	err = repo.Update(ctx, id, dto.UpdateOrderDTO{
		Title:      "Ошибка при формировании отчёта",
		Priority:   "high",
		Status:     "in_progress",
		ExecutorID: executorID,
	})
	require.NoError(t, err)

	order, err := repo.Find(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", order.Status)
	assert.Equal(t, "high", order.Priority)
	require.NotNil(t, order.Executor)
	// Инициатор правками не затрагивается.
	assert.Equal(t, initiatorID, order.Initiator.ID)

	err = repo.Update(ctx, 999, dto.UpdateOrderDTO{Title: "x", Priority: "low", Status: "new"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
