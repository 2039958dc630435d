package get_course_box

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourseBoxService/internal/api/handlers"
	"github.com/m04kA/SMC-CourseBoxService/internal/api/handlers/boxview"
	"github.com/m04kA/SMC-CourseBoxService/internal/usecase/resolve_box"
)

const (
	msgInvalidCourseID = "некорректный ID курса"
	msgCourseNotFound  = "курс не найден"
)

type Handler struct {
	useCase BoxUseCase
	logger  Logger
}

func NewHandler(useCase BoxUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courses/{courseId}/box
// Публичный endpoint, 204 если для курса нет подходящего бокса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courseID, err := strconv.ParseInt(vars["courseId"], 10, 64)
	if err != nil || courseID <= 0 {
		h.logger.Warn("GET /courses/{id}/box - Invalid course ID: %q", vars["courseId"])
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolve_box.Request{CourseID: courseID})
	if err != nil {
		switch {
		case errors.Is(err, resolve_box.ErrCourseNotFound):
			h.logger.Warn("GET /courses/{id}/box - Course not found: course_id=%d", courseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, resolve_box.ErrInvalidInput):
			h.logger.Warn("GET /courses/{id}/box - Invalid input: course_id=%d, error=%v", courseID, err)
			handlers.RespondBadRequest(w, msgInvalidCourseID)

		default:
			h.logger.Error("GET /courses/{id}/box - Failed to resolve box: course_id=%d, error=%v", courseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !result.HasBox() {
		h.logger.Info("GET /courses/{id}/box - No box for course: course_id=%d", courseID)
		handlers.RespondNoContent(w)
		return
	}

	h.logger.Info("GET /courses/{id}/box - Box resolved: course_id=%d, kind=%s", courseID, result.Box.Kind())
	handlers.RespondJSON(w, http.StatusOK, boxview.NewBoxResponse(result.Box))
}
