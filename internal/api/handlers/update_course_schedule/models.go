package update_course_schedule

import (
	"github.com/m04kA/SMC-CourseBoxService/internal/service/courses/models"
)

// UpdateCourseScheduleRequest HTTP request model
// Пустой список slots удаляет все даты курса
type UpdateCourseScheduleRequest struct {
	Slots []models.ScheduleSlot `json:"slots"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateCourseScheduleRequest) ToServiceRequest(userID, courseID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:   userID,
		CourseID: courseID,
		Slots:    r.Slots,
	}
}
