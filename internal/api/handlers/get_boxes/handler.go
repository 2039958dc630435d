package get_boxes

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourseBoxService/internal/api/handlers"
	"github.com/m04kA/SMC-CourseBoxService/internal/api/handlers/boxview"
	"github.com/m04kA/SMC-CourseBoxService/internal/usecase/resolve_group"
)

const (
	msgInvalidCourseIDs = "некорректный список ID курсов"
)

type Handler struct {
	useCase GroupUseCase
	logger  Logger
}

func NewHandler(useCase GroupUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/boxes?courseIds=1,2,3
// Публичный endpoint, боксы возвращаются в порядке courseIds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r.URL.Query().Get("courseIds"))
	if err != nil {
		h.logger.Warn("GET /boxes - Invalid courseIds: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourseIDs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, resolve_group.ErrInvalidInput) {
			h.logger.Warn("GET /boxes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCourseIDs)
			return
		}

		h.logger.Error("GET /boxes - Failed to resolve boxes: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /boxes - Boxes resolved: requested=%d, items=%d, skipped=%d",
		len(req.CourseIDs), len(result.Items), len(result.Skipped))
	handlers.RespondJSON(w, http.StatusOK, boxview.NewBoxListResponse(result))
}
