package get_seat_summary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourseBoxService/internal/api/handlers"
	"github.com/m04kA/SMC-CourseBoxService/internal/usecase/seat_summary"
)

const (
	msgInvalidCourseID = "некорректный ID курса"
	msgCourseNotFound  = "курс не найден"
	msgUnknownDate     = "у курса нет такой даты"
	msgInvalidParams   = "некорректные параметры запроса"
)

type Handler struct {
	useCase SeatsUseCase
	logger  Logger
}

func NewHandler(useCase SeatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courses/{courseId}/seats
// Query params: date (опционально, метка даты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courseID, err := strconv.ParseInt(vars["courseId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courses/{id}/seats - Invalid course ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	req := ToUseCaseRequest(courseID, r.URL.Query().Get("date"))

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, seat_summary.ErrCourseNotFound):
			h.logger.Warn("GET /courses/{id}/seats - Course not found: course_id=%d", courseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, seat_summary.ErrUnknownDateLabel):
			h.logger.Warn("GET /courses/{id}/seats - Unknown date: course_id=%d, date=%q", courseID, r.URL.Query().Get("date"))
			handlers.RespondBadRequest(w, msgUnknownDate)

		case errors.Is(err, seat_summary.ErrInvalidInput):
			h.logger.Warn("GET /courses/{id}/seats - Invalid input: course_id=%d, error=%v", courseID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /courses/{id}/seats - Failed to get seats: course_id=%d, error=%v", courseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courses/{id}/seats - Seats retrieved: course_id=%d, available=%d, pending=%t",
		courseID, result.TotalAvailable, result.SeatsPending)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
