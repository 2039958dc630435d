package availability

import (
	"context"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
)

// LedgerRepository журнал завершённых продаж
type LedgerRepository interface {
	ListCompletedLines(ctx context.Context, productID int64) ([]domain.CompletedOrderLine, error)
}

// Metrics счётчик откатов на полную вместимость
type Metrics interface {
	IncLedgerFallback(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
