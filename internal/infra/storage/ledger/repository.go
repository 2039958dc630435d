package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
	"github.com/m04kA/SMC-CourseBoxService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourseBoxService/pkg/psqlbuilder"
)

// Repository журнал продаж: строки завершённых заказов
// Только чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала продаж
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListCompletedLines возвращает строки заказов со статусом completed для товара
// Фильтр по статусу выполняется здесь, потребители журнала статус не проверяют
func (r *Repository) ListCompletedLines(ctx context.Context, productID int64) ([]domain.CompletedOrderLine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"ol.order_id",
		"ol.product_id",
		"ol.quantity",
		"ol.start_date",
		"o.completed_at",
	).
		From("order_lines ol").
		Join("orders o ON o.id = ol.order_id").
		Where(squirrel.Eq{"ol.product_id": productID}).
		Where(squirrel.Eq{"o.status": domain.OrderStatusCompleted}).
		OrderBy("ol.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCompletedLines - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCompletedLines - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lines := make([]domain.CompletedOrderLine, 0)
	for rows.Next() {
		var (
			line        domain.CompletedOrderLine
			startDate   sql.NullString
			completedAt sql.NullTime
		)
		if err := rows.Scan(&line.OrderID, &line.ProductID, &line.Quantity, &startDate, &completedAt); err != nil {
			return nil, fmt.Errorf("%w: ListCompletedLines - scan row: %v", ErrScanRow, err)
		}
		if startDate.Valid {
			line.SelectedDateLabel = &startDate.String
		}
		line.CompletedAt = completedAt.Time
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCompletedLines - rows error: %v", ErrScanRow, err)
	}

	return lines, nil
}
