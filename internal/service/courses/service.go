package courses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
	courseRepo "github.com/m04kA/SMC-CourseBoxService/internal/infra/storage/course"
	"github.com/m04kA/SMC-CourseBoxService/internal/service/courses/models"
)

// Service сервис записи курсов
// Отвечает за автокоррекцию enroll/waitlist: резолвер доверяет сохранённому состоянию
type Service struct {
	courseRepo CourseRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса курсов
func NewService(courseRepo CourseRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		courseRepo: courseRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetByID получает курс по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: courseID must be positive", ErrInvalidInput)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("GetByID: repository error for course id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return course, nil
}

// UpdateState сохраняет ручное состояние бокса
// enroll (или пустое) у курса без дат сохраняется как waitlist
func (s *Service) UpdateState(ctx context.Context, req *models.UpdateStateRequest) (*models.CourseStateResponse, error) {
	s.logger.Info("UpdateState: course=%d state=%q by user=%d", req.CourseID, req.State, req.UserID)

	if req.CourseID <= 0 {
		return nil, fmt.Errorf("%w: courseID must be positive", ErrInvalidInput)
	}

	requested := domain.ParseManualState(req.State)
	if !requested.IsKnown() {
		s.logger.Warn("UpdateState: unknown state %q for course=%d", req.State, req.CourseID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidState, req.State)
	}

	var resp *models.CourseStateResponse
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		course, err := s.courseRepo.GetByIDForUpdate(ctx, req.CourseID)
		if err != nil {
			return err
		}

		hasSchedule := course.HasSchedule()
		applied := domain.CorrectManualState(requested, hasSchedule, hasSchedule)

		if err := s.courseRepo.UpdateState(ctx, course.ID, applied); err != nil {
			return err
		}

		resp = &models.CourseStateResponse{
			CourseID:       course.ID,
			RequestedState: string(requested),
			AppliedState:   string(applied),
			Corrected:      applied != requested,
			SlotsCount:     len(course.EffectiveSchedule()),
		}
		return nil
	})
	if err != nil {
		return nil, s.mapRepoError("UpdateState", req.CourseID, err)
	}

	if resp.Corrected {
		s.logger.Info("UpdateState: course=%d state %q corrected to %q", resp.CourseID, resp.RequestedState, resp.AppliedState)
	}
	return resp, nil
}

// UpdateSchedule заменяет расписание курса и при необходимости переключает enroll/waitlist
// Выполняется в одной транзакции со строкой курса под блокировкой
func (s *Service) UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.CourseStateResponse, error) {
	s.logger.Info("UpdateSchedule: course=%d slots=%d by user=%d", req.CourseID, len(req.Slots), req.UserID)

	if err := validateSchedule(req); err != nil {
		s.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	slots := req.ToDomainSlots()

	var resp *models.CourseStateResponse
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		course, err := s.courseRepo.GetByIDForUpdate(ctx, req.CourseID)
		if err != nil {
			return err
		}

		hadSchedule := course.HasSchedule()
		if err := s.courseRepo.ReplaceSchedule(ctx, course.ID, slots); err != nil {
			return err
		}
		course.Schedule = slots
		hasSchedule := course.HasSchedule()

		applied := domain.CorrectManualState(course.ManualState, hadSchedule, hasSchedule)
		if applied != course.ManualState {
			if err := s.courseRepo.UpdateState(ctx, course.ID, applied); err != nil {
				return err
			}
		}

		resp = &models.CourseStateResponse{
			CourseID:       course.ID,
			RequestedState: string(course.ManualState),
			AppliedState:   string(applied),
			Corrected:      applied != course.ManualState,
			SlotsCount:     len(course.EffectiveSchedule()),
		}
		return nil
	})
	if err != nil {
		return nil, s.mapRepoError("UpdateSchedule", req.CourseID, err)
	}

	if resp.Corrected {
		s.logger.Info("UpdateSchedule: course=%d state %q corrected to %q", resp.CourseID, resp.RequestedState, resp.AppliedState)
	}
	return resp, nil
}

func (s *Service) mapRepoError(op string, courseID int64, err error) error {
	if errors.Is(err, courseRepo.ErrCourseNotFound) {
		s.logger.Warn("%s: course id=%d not found", op, courseID)
		return ErrCourseNotFound
	}
	s.logger.Error("%s: failed for course id=%d: %v", op, courseID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validateSchedule(req *models.UpdateScheduleRequest) error {
	if req.CourseID <= 0 {
		return fmt.Errorf("%w: courseID must be positive", ErrInvalidInput)
	}
	for i, slot := range req.Slots {
		if strings.TrimSpace(slot.Label) == "" {
			return fmt.Errorf("%w: slot %d: label is required", ErrInvalidInput, i)
		}
		if slot.Capacity != nil && *slot.Capacity < 0 {
			return fmt.Errorf("%w: slot %d: capacity must not be negative", ErrInvalidInput, i)
		}
	}
	return nil
}
