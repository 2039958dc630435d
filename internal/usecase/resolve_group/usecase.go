package resolve_group

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
	"github.com/m04kA/SMC-CourseBoxService/internal/usecase/resolve_box"
)

// DefaultConcurrency количество курсов, обрабатываемых параллельно
const DefaultConcurrency = 4

// UseCase use case выбора боксов для группы курсов
type UseCase struct {
	courseRepo  CourseRepository
	resolver    BoxResolver
	concurrency int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courseRepo CourseRepository,
	resolver BoxResolver,
	concurrency int,
	logger Logger,
) *UseCase {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &UseCase{
		courseRepo:  courseRepo,
		resolver:    resolver,
		concurrency: concurrency,
		logger:      logger,
	}
}

// outcome результат обработки одного курса
type outcome struct {
	courseID int64
	resp     *resolve_box.Response
	failed   bool
}

// Execute выбирает боксы для всех курсов запроса
// Курсы обрабатываются параллельно, порядок ответа совпадает с порядком входа.
// Ошибка одного курса не прерывает обработку остальных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveGroup: validation failed: %v", err)
		return nil, err
	}

	var outcomes []outcome
	if req.GroupID != nil {
		courses, err := uc.courseRepo.ListByGroup(ctx, *req.GroupID)
		if err != nil {
			uc.logger.Error("ResolveGroup: failed to list courses of group id=%d: %v", *req.GroupID, err)
			return nil, fmt.Errorf("%w: failed to list group courses: %v", ErrInternal, err)
		}
		outcomes = uc.resolveAll(ctx, len(courses), func(i int) (int64, *domain.Course, error) {
			return courses[i].ID, courses[i], nil
		})
	} else {
		outcomes = uc.resolveAll(ctx, len(req.CourseIDs), func(i int) (int64, *domain.Course, error) {
			course, err := uc.courseRepo.GetByID(ctx, req.CourseIDs[i])
			return req.CourseIDs[i], course, err
		})
	}

	resp := &Response{Items: make([]Item, 0, len(outcomes))}
	for _, o := range outcomes {
		switch {
		case o.failed:
			resp.Skipped = append(resp.Skipped, o.courseID)
		case !o.resp.HasBox():
			resp.NoBox = append(resp.NoBox, o.courseID)
		default:
			resp.Items = append(resp.Items, Item{
				CourseID: o.courseID,
				Box:      o.resp.Box,
				Snapshot: o.resp.Snapshot,
			})
		}
	}

	uc.logger.Info("ResolveGroup: resolved %d boxes, %d without box, %d skipped",
		len(resp.Items), len(resp.NoBox), len(resp.Skipped))

	return resp, nil
}

// resolveAll обрабатывает n курсов не более чем в uc.concurrency горутинах
// Результат i-го курса пишется в i-ю ячейку, поэтому порядок сохраняется
func (uc *UseCase) resolveAll(ctx context.Context, n int, load func(i int) (int64, *domain.Course, error)) []outcome {
	outcomes := make([]outcome, n)

	var g errgroup.Group
	g.SetLimit(uc.concurrency)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			outcomes[i] = uc.resolveOne(ctx, i, load)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (uc *UseCase) resolveOne(ctx context.Context, i int, load func(i int) (int64, *domain.Course, error)) (o outcome) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Error("ResolveGroup: panic while resolving course id=%d: %v", o.courseID, r)
			o.failed = true
			o.resp = nil
		}
	}()

	courseID, course, err := load(i)
	o.courseID = courseID
	if err != nil {
		uc.logger.Warn("ResolveGroup: skipping course id=%d: %v", courseID, err)
		o.failed = true
		return o
	}

	resp, err := uc.resolver.ResolveCourse(ctx, course)
	if err != nil {
		uc.logger.Warn("ResolveGroup: skipping course id=%d: %v", courseID, err)
		o.failed = true
		return o
	}

	o.resp = resp
	return o
}
