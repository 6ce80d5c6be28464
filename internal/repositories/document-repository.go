package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ops-dashboard/internal/dto"
	"ops-dashboard/internal/entities"
)

type DocumentRepositoryInterface interface {
	Count(ctx context.Context) (uint64, error)
	List(ctx context.Context) ([]dto.DocumentDTO, error)
	Create(ctx context.Context, doc entities.Document) error
	// CreateIfAbsent вставляет документ, молча пропуская занятый slug.
	CreateIfAbsent(ctx context.Context, doc entities.Document) error
}

type DocumentRepository struct {
	storage *pgxpool.Pool
}

func NewDocumentRepository(storage *pgxpool.Pool) DocumentRepositoryInterface {
	return &DocumentRepository{storage: storage}
}

func (r *DocumentRepository) Count(ctx context.Context) (uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM documents`).Scan(&total); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта документов: %w", err)
	}
	return total, nil
}

func (r *DocumentRepository) List(ctx context.Context) ([]dto.DocumentDTO, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, title, slug, description, access, file FROM documents ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка документов: %w", err)
	}
	defer rows.Close()

	docs := make([]dto.DocumentDTO, 0)
	for rows.Next() {
		var d dto.DocumentDTO
		if err := rows.Scan(&d.ID, &d.Title, &d.Slug, &d.Description, &d.Access, &d.File); err != nil {
			return nil, fmt.Errorf("ошибка сканирования документа: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *DocumentRepository) Create(ctx context.Context, doc entities.Document) error {
	_, err := r.storage.Exec(ctx,
		`INSERT INTO documents (title, slug, description, access, file) VALUES ($1, $2, $3, $4, $5)`,
		doc.Title, doc.Slug, doc.Description, doc.Access, doc.File,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания документа: %w", err)
	}
	return nil
}

func (r *DocumentRepository) CreateIfAbsent(ctx context.Context, doc entities.Document) error {
	_, err := r.storage.Exec(ctx,
		`INSERT INTO documents (title, slug, description, access, file)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (slug) DO NOTHING`,
		doc.Title, doc.Slug, doc.Description, doc.Access, doc.File,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания документа: %w", err)
	}
	return nil
}
