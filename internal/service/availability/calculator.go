package availability

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
)

const (
	fallbackReasonTimeout = "timeout"
	fallbackReasonError   = "error"
)

// Calculator считает проданные и свободные места по журналу продаж
type Calculator struct {
	ledger  LedgerRepository
	timeout time.Duration
	metrics Metrics
	logger  Logger
}

// NewCalculator создает калькулятор
// timeout ограничивает чтение журнала, при timeout <= 0 используется значение по умолчанию
func NewCalculator(ledger LedgerRepository, timeout time.Duration, metrics Metrics, logger Logger) *Calculator {
	if timeout <= 0 {
		timeout = domain.DefaultLedgerTimeout
	}
	return &Calculator{
		ledger:  ledger,
		timeout: timeout,
		metrics: metrics,
		logger:  logger,
	}
}

// LoadSales читает журнал продаж товара один раз и сворачивает его
// productID <= 0: курс без товара, журнал не читается, продано 0.
// Ошибка или таймаут журнала не возвращаются: продажи считаются нулевыми, Sales.Pending = true.
func (c *Calculator) LoadSales(ctx context.Context, productID int64) *Sales {
	sales := emptySales(productID)
	if productID <= 0 {
		return sales
	}

	ledgerCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	lines, err := c.ledger.ListCompletedLines(ledgerCtx, productID)
	if err != nil {
		reason := fallbackReasonError
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ledgerCtx.Err(), context.DeadlineExceeded) {
			reason = fallbackReasonTimeout
		}
		c.logger.Warn("LoadSales: ledger unavailable for product_id=%d (%s), assuming 0 sold: %v", productID, reason, err)
		if c.metrics != nil {
			c.metrics.IncLedgerFallback(reason)
		}
		sales.Pending = true
		return sales
	}

	skipped := 0
	for _, line := range lines {
		if line.ProductID != productID {
			continue
		}
		if line.Quantity <= 0 {
			skipped++
			continue
		}
		sales.add(line)
	}
	if skipped > 0 {
		c.logger.Warn("LoadSales: skipped %d ledger lines with non-positive quantity for product_id=%d", skipped, productID)
	}

	return sales
}

// Sold возвращает количество проданных мест товара, опционально только на дату label
func (c *Calculator) Sold(ctx context.Context, productID int64, label *string) int {
	return c.LoadSales(ctx, productID).Sold(label)
}

// Available возвращает свободные места: max(0, capacity - sold)
func (c *Calculator) Available(ctx context.Context, productID int64, capacity int, label *string) int {
	return Available(capacity, c.Sold(ctx, productID, label))
}
