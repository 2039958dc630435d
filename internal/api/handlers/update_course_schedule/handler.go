package update_course_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourseBoxService/internal/api/handlers"
	"github.com/m04kA/SMC-CourseBoxService/internal/api/middleware"
	"github.com/m04kA/SMC-CourseBoxService/internal/service/courses"
)

const (
	msgInvalidCourseID    = "некорректный ID курса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCourseNotFound     = "курс не найден"
	msgInvalidData        = "некорректное расписание курса"
)

type Handler struct {
	service CourseService
	logger  Logger
}

func NewHandler(service CourseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/courses/{courseId}/schedule
// Требует X-User-ID (middleware.Auth)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /courses/{id}/schedule - Missing user ID in context")
		handlers.RespondUnauthorized(w)
		return
	}

	vars := mux.Vars(r)
	courseID, err := strconv.ParseInt(vars["courseId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /courses/{id}/schedule - Invalid course ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	var req UpdateCourseScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /courses/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSchedule(r.Context(), req.ToServiceRequest(userID, courseID))
	if err != nil {
		switch {
		case errors.Is(err, courses.ErrCourseNotFound):
			h.logger.Warn("PUT /courses/{id}/schedule - Course not found: course_id=%d", courseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, courses.ErrInvalidState), errors.Is(err, courses.ErrInvalidInput):
			h.logger.Warn("PUT /courses/{id}/schedule - Invalid data: course_id=%d, error=%v", courseID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /courses/{id}/schedule - Failed to update course: course_id=%d, error=%v", courseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /courses/{id}/schedule - Course updated: course_id=%d, user_id=%d, applied=%q, corrected=%t",
		courseID, userID, result.AppliedState, result.Corrected)
	handlers.RespondJSON(w, http.StatusOK, result)
}
