package resolve_box

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
	courseRepo "github.com/m04kA/SMC-CourseBoxService/internal/infra/storage/course"
	"github.com/m04kA/SMC-CourseBoxService/internal/service/boxstate"
)

// UseCase use case выбора бокса для одного курса
type UseCase struct {
	courseRepo CourseRepository
	builder    SnapshotBuilder
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courseRepo CourseRepository,
	builder SnapshotBuilder,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		courseRepo: courseRepo,
		builder:    builder,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute загружает курс и выбирает для него бокс
// Отсутствие подходящего бокса не ошибка: Response.Box == nil
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveBox: validation failed: %v", err)
		return nil, err
	}

	course, err := uc.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			uc.logger.Warn("ResolveBox: course id=%d not found", req.CourseID)
			return nil, ErrCourseNotFound
		}
		uc.logger.Error("ResolveBox: failed to get course id=%d: %v", req.CourseID, err)
		return nil, fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
	}

	return uc.ResolveCourse(ctx, course)
}

// ResolveCourse выбирает бокс для уже загруженного курса
func (uc *UseCase) ResolveCourse(ctx context.Context, course *domain.Course) (*Response, error) {
	snapshot, err := uc.builder.Build(ctx, course)
	if err != nil {
		uc.logger.Error("ResolveBox: failed to build snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to build snapshot: %v", ErrInternal, err)
	}

	box := boxstate.Resolve(snapshot)

	state := stateNone
	if box != nil {
		state = string(box.Kind())
	} else {
		uc.logger.Warn("ResolveBox: no box for course id=%d (state=%q, countdown=%t)",
			course.ID, course.RawState, snapshot.ShowCountdown)
	}
	if uc.metrics != nil {
		uc.metrics.IncBoxResolved(state)
	}

	uc.logger.Info("ResolveBox: course id=%d resolved to %s", course.ID, state)

	return &Response{
		CourseID: course.ID,
		Box:      box,
		Snapshot: snapshot,
	}, nil
}
