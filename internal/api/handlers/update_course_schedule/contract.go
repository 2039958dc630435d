package update_course_schedule

import (
	"context"

	"github.com/m04kA/SMC-CourseBoxService/internal/service/courses/models"
)

type CourseService interface {
	UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.CourseStateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
