package get_seat_summary

import (
	"context"

	"github.com/m04kA/SMC-CourseBoxService/internal/usecase/seat_summary"
)

type SeatsUseCase interface {
	Execute(ctx context.Context, req *seat_summary.Request) (*seat_summary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
