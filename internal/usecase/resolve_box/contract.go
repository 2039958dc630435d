package resolve_box

import (
	"context"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
)

// CourseRepository интерфейс репозитория курсов
type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
}

// SnapshotBuilder собирает снимок курса на текущий момент
type SnapshotBuilder interface {
	Build(ctx context.Context, course *domain.Course) (*domain.OfferingSnapshot, error)
}

// Metrics счётчик выбранных боксов
type Metrics interface {
	IncBoxResolved(state string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
