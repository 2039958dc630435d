package resolve_group

import (
	"context"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
	"github.com/m04kA/SMC-CourseBoxService/internal/usecase/resolve_box"
)

// CourseRepository интерфейс репозитория курсов
type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	ListByGroup(ctx context.Context, groupID int64) ([]*domain.Course, error)
}

// BoxResolver выбирает бокс для загруженного курса
type BoxResolver interface {
	ResolveCourse(ctx context.Context, course *domain.Course) (*resolve_box.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
