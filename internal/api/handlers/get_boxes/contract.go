package get_boxes

import (
	"context"

	"github.com/m04kA/SMC-CourseBoxService/internal/usecase/resolve_group"
)

type GroupUseCase interface {
	Execute(ctx context.Context, req *resolve_group.Request) (*resolve_group.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
