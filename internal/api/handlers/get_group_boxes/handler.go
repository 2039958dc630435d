package get_group_boxes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourseBoxService/internal/api/handlers"
	"github.com/m04kA/SMC-CourseBoxService/internal/api/handlers/boxview"
	"github.com/m04kA/SMC-CourseBoxService/internal/usecase/resolve_group"
)

const (
	msgInvalidGroupID = "некорректный ID группы курсов"
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

// Handle GET /api/v1/groups/{groupId}/boxes
// Пустая группа возвращает пустой список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID, err := strconv.ParseInt(vars["groupId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /groups/{id}/boxes - Invalid group ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroupID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolve_group.Request{GroupID: &groupID})
	if err != nil {
		if errors.Is(err, resolve_group.ErrInvalidInput) {
			h.logger.Warn("GET /groups/{id}/boxes - Invalid input: group_id=%d, error=%v", groupID, err)
			handlers.RespondBadRequest(w, msgInvalidGroupID)
			return
		}

		h.logger.Error("GET /groups/{id}/boxes - Failed to resolve boxes: group_id=%d, error=%v", groupID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /groups/{id}/boxes - Boxes resolved: group_id=%d, items=%d, skipped=%d, no_box=%d",
		groupID, len(result.Items), len(result.Skipped), len(result.NoBox))
	handlers.RespondJSON(w, http.StatusOK, boxview.NewBoxListResponse(result))
}
