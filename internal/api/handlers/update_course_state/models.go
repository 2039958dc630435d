package update_course_state

import (
	"github.com/m04kA/SMC-CourseBoxService/internal/service/courses/models"
)

// UpdateCourseStateRequest HTTP request model
type UpdateCourseStateRequest struct {
	State string `json:"state"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateCourseStateRequest) ToServiceRequest(userID, courseID int64) *models.UpdateStateRequest {
	return &models.UpdateStateRequest{
		UserID:   userID,
		CourseID: courseID,
		State:    r.State,
	}
}
