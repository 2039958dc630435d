package courses

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
	courseRepo "github.com/m04kA/SMC-CourseBoxService/internal/infra/storage/course"
	"github.com/m04kA/SMC-CourseBoxService/internal/service/courses/models"
	"github.com/m04kA/SMC-CourseBoxService/pkg/ptr"
)

type mockCourseRepo struct {
	mock.Mock
}

func (m *mockCourseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	args := m.Called(ctx, id)
	course, _ := args.Get(0).(*domain.Course)
	return course, args.Error(1)
}

func (m *mockCourseRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Course, error) {
	args := m.Called(ctx, id)
	course, _ := args.Get(0).(*domain.Course)
	return course, args.Error(1)
}

func (m *mockCourseRepo) UpdateState(ctx context.Context, id int64, state domain.ManualState) error {
	return m.Called(ctx, id, state).Error(0)
}

func (m *mockCourseRepo) ReplaceSchedule(ctx context.Context, courseID int64, slots []domain.DateSlot) error {
	return m.Called(ctx, courseID, slots).Error(0)
}

type inlineTx struct{ calls int }

func (tx *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func withDates(state domain.ManualState, labels ...string) *domain.Course {
	c := &domain.Course{ID: 1, ManualState: state, RawState: string(state)}
	for _, l := range labels {
		c.Schedule = append(c.Schedule, domain.DateSlot{Label: l})
	}
	return c
}

func TestService_UpdateState(t *testing.T) {
	tests := []struct {
		name      string
		course    *domain.Course
		requested string
		applied   domain.ManualState
		corrected bool
	}{
		{"enroll without dates becomes waitlist", withDates(domain.StateBuy), "enroll", domain.StateWaitlist, true},
		{"default without dates becomes waitlist", withDates(domain.StateBuy), "", domain.StateWaitlist, true},
		{"enroll with dates kept", withDates(domain.StateWaitlist, "June"), "enroll", domain.StateEnroll, false},
		{"explicit waitlist with dates kept", withDates(domain.StateEnroll, "June"), "waitlist", domain.StateWaitlist, false},
		{"legacy spelling accepted", withDates(domain.StateEnroll), "Sold-Out", domain.StateSoldOut, false},
		{"countdown kept", withDates(domain.StateEnroll), "countdown", domain.StateCountdown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCourseRepo{}
			tx := &inlineTx{}
			repo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(tt.course, nil)
			repo.On("UpdateState", mock.Anything, int64(1), tt.applied).Return(nil)

			svc := NewService(repo, tx, nopLogger{})
			resp, err := svc.UpdateState(context.Background(), &models.UpdateStateRequest{UserID: 7, CourseID: 1, State: tt.requested})
			require.NoError(t, err)

			assert.Equal(t, string(tt.applied), resp.AppliedState)
			assert.Equal(t, tt.corrected, resp.Corrected)
			assert.Equal(t, 1, tx.calls)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_UpdateState_Errors(t *testing.T) {
	t.Run("unknown state", func(t *testing.T) {
		repo := &mockCourseRepo{}
		svc := NewService(repo, &inlineTx{}, nopLogger{})

		_, err := svc.UpdateState(context.Background(), &models.UpdateStateRequest{CourseID: 1, State: "draft"})
		assert.ErrorIs(t, err, ErrInvalidState)
		repo.AssertNotCalled(t, "GetByIDForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := NewService(&mockCourseRepo{}, &inlineTx{}, nopLogger{})
		_, err := svc.UpdateState(context.Background(), &models.UpdateStateRequest{CourseID: 0, State: "buy"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockCourseRepo{}
		repo.On("GetByIDForUpdate", mock.Anything, int64(5)).Return(nil, courseRepo.ErrCourseNotFound)

		svc := NewService(repo, &inlineTx{}, nopLogger{})
		_, err := svc.UpdateState(context.Background(), &models.UpdateStateRequest{CourseID: 5, State: "buy"})
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &mockCourseRepo{}
		repo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(withDates(domain.StateEnroll, "June"), nil)
		repo.On("UpdateState", mock.Anything, int64(1), domain.StateBuy).Return(errors.New("connection reset"))

		svc := NewService(repo, &inlineTx{}, nopLogger{})
		_, err := svc.UpdateState(context.Background(), &models.UpdateStateRequest{CourseID: 1, State: "buy"})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_UpdateSchedule(t *testing.T) {
	t.Run("waitlist gets first dates and becomes enroll", func(t *testing.T) {
		repo := &mockCourseRepo{}
		repo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(withDates(domain.StateWaitlist), nil)
		repo.On("ReplaceSchedule", mock.Anything, int64(1), mock.AnythingOfType("[]domain.DateSlot")).Return(nil)
		repo.On("UpdateState", mock.Anything, int64(1), domain.StateEnroll).Return(nil)

		svc := NewService(repo, &inlineTx{}, nopLogger{})
		resp, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
			CourseID: 1,
			Slots:    []models.ScheduleSlot{{Label: "2025-08-01", Capacity: ptr.Ptr(10)}},
		})
		require.NoError(t, err)
		assert.True(t, resp.Corrected)
		assert.Equal(t, "enroll", resp.AppliedState)
		assert.Equal(t, 1, resp.SlotsCount)
		repo.AssertExpectations(t)
	})

	t.Run("enroll loses all dates and becomes waitlist", func(t *testing.T) {
		repo := &mockCourseRepo{}
		repo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(withDates(domain.StateEnroll, "June"), nil)
		repo.On("ReplaceSchedule", mock.Anything, int64(1), mock.Anything).Return(nil)
		repo.On("UpdateState", mock.Anything, int64(1), domain.StateWaitlist).Return(nil)

		svc := NewService(repo, &inlineTx{}, nopLogger{})
		resp, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{CourseID: 1})
		require.NoError(t, err)
		assert.Equal(t, "waitlist", resp.AppliedState)
		repo.AssertExpectations(t)
	})

	t.Run("explicit waitlist with existing dates is kept", func(t *testing.T) {
		repo := &mockCourseRepo{}
		repo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(withDates(domain.StateWaitlist, "June"), nil)
		repo.On("ReplaceSchedule", mock.Anything, int64(1), mock.Anything).Return(nil)

		svc := NewService(repo, &inlineTx{}, nopLogger{})
		resp, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
			CourseID: 1,
			Slots:    []models.ScheduleSlot{{Label: "July"}},
		})
		require.NoError(t, err)
		assert.False(t, resp.Corrected)
		repo.AssertNotCalled(t, "UpdateState", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cleared dates fall back to legacy schedule", func(t *testing.T) {
		course := withDates(domain.StateEnroll, "June")
		course.LegacySchedule = []domain.LegacyDateSlot{{Label: "Webinar", Stock: "5"}}

		repo := &mockCourseRepo{}
		repo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(course, nil)
		repo.On("ReplaceSchedule", mock.Anything, int64(1), mock.Anything).Return(nil)

		svc := NewService(repo, &inlineTx{}, nopLogger{})
		resp, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{CourseID: 1})
		require.NoError(t, err)
		assert.Equal(t, "enroll", resp.AppliedState)
		assert.Equal(t, 1, resp.SlotsCount)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewService(&mockCourseRepo{}, &inlineTx{}, nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
			CourseID: 1,
			Slots:    []models.ScheduleSlot{{Label: "  "}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
			CourseID: 1,
			Slots:    []models.ScheduleSlot{{Label: "June", Capacity: ptr.Ptr(-1)}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetByID(t *testing.T) {
	repo := &mockCourseRepo{}
	repo.On("GetByID", mock.Anything, int64(1)).Return(withDates(domain.StateBuy), nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(nil, courseRepo.ErrCourseNotFound)

	svc := NewService(repo, &inlineTx{}, nopLogger{})

	course, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StateBuy, course.ManualState)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}
