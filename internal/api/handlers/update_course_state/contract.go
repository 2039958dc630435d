package update_course_state

import (
	"context"

	"github.com/m04kA/SMC-CourseBoxService/internal/service/courses/models"
)

type CourseService interface {
	UpdateState(ctx context.Context, req *models.UpdateStateRequest) (*models.CourseStateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
