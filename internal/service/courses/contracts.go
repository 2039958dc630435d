package courses

import (
	"context"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
)

// CourseRepository интерфейс репозитория курсов
type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Course, error)
	UpdateState(ctx context.Context, id int64, state domain.ManualState) error
	ReplaceSchedule(ctx context.Context, courseID int64, slots []domain.DateSlot) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
