package offering

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
	"github.com/m04kA/SMC-CourseBoxService/internal/service/availability"
)

// ProductCatalog клиент каталога товаров
type ProductCatalog interface {
	GetProductWithGracefulDegradation(ctx context.Context, productID int64) (*domain.Product, error)
}

// SalesCalculator читает журнал продаж товара
type SalesCalculator interface {
	LoadSales(ctx context.Context, productID int64) *availability.Sales
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
