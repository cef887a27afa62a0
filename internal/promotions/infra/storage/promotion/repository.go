package promotion

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/promotions/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с акциями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория акций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую акцию, ID назначается базой
func (r *Repository) Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error) {
	query, args, err := psqlbuilder.Insert("promotions").
		Columns(
			"name",
			"description",
			"discount_percent",
			"valid_from",
			"valid_to",
			"min_hours",
		).
		Values(
			promotion.Name,
			promotion.Description,
			promotion.DiscountPercent,
			promotion.ValidFrom,
			promotion.ValidTo,
			promotion.MinHours,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&promotion.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	promotion.CreatedAt = createdAt.Time
	promotion.UpdatedAt = updatedAt.Time

	return promotion, nil
}

// GetByID получает акцию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByName получает акцию по коду (уникальное имя)
// Основной путь поиска: ReservationService резолвит акции по коду
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Promotion, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name}, "GetByName")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, method string) (*domain.Promotion, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"discount_percent",
		"valid_from",
		"valid_to",
		"min_hours",
		"created_at",
		"updated_at",
	).
		From("promotions").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var promotion domain.Promotion
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&promotion.ID,
		&promotion.Name,
		&promotion.Description,
		&promotion.DiscountPercent,
		&promotion.ValidFrom,
		&promotion.ValidTo,
		&promotion.MinHours,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPromotionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan promotion: %v", ErrScanRow, method, err)
	}

	promotion.CreatedAt = createdAt.Time
	promotion.UpdatedAt = updatedAt.Time

	return &promotion, nil
}

// List получает все акции
func (r *Repository) List(ctx context.Context) ([]*domain.Promotion, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"discount_percent",
		"valid_from",
		"valid_to",
		"min_hours",
		"created_at",
		"updated_at",
	).
		From("promotions").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	promotions := make([]*domain.Promotion, 0)
	for rows.Next() {
		var promotion domain.Promotion
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&promotion.ID,
			&promotion.Name,
			&promotion.Description,
			&promotion.DiscountPercent,
			&promotion.ValidFrom,
			&promotion.ValidTo,
			&promotion.MinHours,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		promotion.CreatedAt = createdAt.Time
		promotion.UpdatedAt = updatedAt.Time

		promotions = append(promotions, &promotion)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return promotions, nil
}

// Update перезаписывает изменяемые поля акции
func (r *Repository) Update(ctx context.Context, promotion *domain.Promotion) error {
	query, args, err := psqlbuilder.Update("promotions").
		Set("name", promotion.Name).
		Set("description", promotion.Description).
		Set("discount_percent", promotion.DiscountPercent).
		Set("valid_from", promotion.ValidFrom).
		Set("valid_to", promotion.ValidTo).
		Set("min_hours", promotion.MinHours).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": promotion.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPromotionNotFound
	}

	return nil
}

// Delete удаляет акцию
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("promotions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPromotionNotFound
	}

	return nil
}
