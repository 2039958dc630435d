package update_course_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CourseBoxService/internal/api/middleware"
	"github.com/m04kA/SMC-CourseBoxService/internal/service/courses"
	"github.com/m04kA/SMC-CourseBoxService/internal/service/courses/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.CourseStateResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.CourseStateResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc CourseService, userID int64, path, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/courses/{courseId}/schedule", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, userID))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	svc := &mockService{}
	svc.On("UpdateSchedule", mock.Anything, mock.MatchedBy(func(req *models.UpdateScheduleRequest) bool {
		return req.UserID == 3 && req.CourseID == 11 && len(req.Slots) == 2 &&
			req.Slots[0].Label == "Jan 10" && req.Slots[0].Capacity != nil && *req.Slots[0].Capacity == 12
	})).Return(&models.CourseStateResponse{CourseID: 11, AppliedState: "enroll", SlotsCount: 2}, nil)

	rec := serve(svc, 3, "/api/v1/courses/11/schedule",
		`{"slots":[{"label":"Jan 10","capacity":12},{"label":"Feb 14","buttonText":"Join"}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slotsCount":2`)
	svc.AssertExpectations(t)
}

func TestHandler_NoUser(t *testing.T) {
	rec := serve(&mockService{}, 0, "/api/v1/courses/11/schedule", `{"slots":[]}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_InvalidSchedule(t *testing.T) {
	svc := &mockService{}
	svc.On("UpdateSchedule", mock.Anything, mock.Anything).Return(nil, courses.ErrInvalidInput)

	rec := serve(svc, 3, "/api/v1/courses/11/schedule", `{"slots":[{"label":""}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UnknownField(t *testing.T) {
	rec := serve(&mockService{}, 3, "/api/v1/courses/11/schedule", `{"dates":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
