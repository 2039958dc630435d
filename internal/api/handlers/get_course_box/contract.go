package get_course_box

import (
	"context"

	"github.com/m04kA/SMC-CourseBoxService/internal/usecase/resolve_box"
)

type BoxUseCase interface {
	Execute(ctx context.Context, req *resolve_box.Request) (*resolve_box.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
