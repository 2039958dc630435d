package seat_summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
	courseRepo "github.com/m04kA/SMC-CourseBoxService/internal/infra/storage/course"
)

// UseCase use case сводки по местам курса для дашборда
type UseCase struct {
	courseRepo CourseRepository
	builder    SnapshotBuilder
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(courseRepo CourseRepository, builder SnapshotBuilder, logger Logger) *UseCase {
	return &UseCase{
		courseRepo: courseRepo,
		builder:    builder,
		logger:     logger,
	}
}

// Execute возвращает общее количество мест, проданные и свободные
// Если задана DateLabel, дополнительно возвращает места на эту дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SeatSummary: validation failed: %v", err)
		return nil, err
	}

	course, err := uc.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			uc.logger.Warn("SeatSummary: course id=%d not found", req.CourseID)
			return nil, ErrCourseNotFound
		}
		uc.logger.Error("SeatSummary: failed to get course id=%d: %v", req.CourseID, err)
		return nil, fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
	}

	snapshot, err := uc.builder.Build(ctx, course)
	if err != nil {
		uc.logger.Error("SeatSummary: failed to build snapshot for course id=%d: %v", req.CourseID, err)
		return nil, fmt.Errorf("%w: failed to build snapshot: %v", ErrInternal, err)
	}

	resp := &Response{
		CourseID:       course.ID,
		TotalCapacity:  snapshot.TotalCapacity,
		TotalSold:      snapshot.TotalSold,
		TotalAvailable: snapshot.TotalAvailable,
		SeatsPending:   snapshot.SeatsPending,
		Dates:          distinctDates(snapshot),
	}

	if req.DateLabel != nil {
		date, ok := findDate(resp.Dates, *req.DateLabel)
		if !ok {
			uc.logger.Warn("SeatSummary: course id=%d has no date %q", req.CourseID, *req.DateLabel)
			return nil, fmt.Errorf("%w: %q", ErrUnknownDateLabel, *req.DateLabel)
		}
		resp.Date = &date
	}

	uc.logger.Info("SeatSummary: course id=%d capacity=%d sold=%d available=%d",
		resp.CourseID, resp.TotalCapacity, resp.TotalSold, resp.TotalAvailable)

	return resp, nil
}

// distinctDates схлопывает слоты с одинаковой меткой в одну запись
func distinctDates(snapshot *domain.OfferingSnapshot) []DateSeats {
	dates := make([]DateSeats, 0, len(snapshot.Slots))
	seen := make(map[string]struct{}, len(snapshot.Slots))
	for _, slot := range snapshot.Slots {
		key := domain.NormalizeLabel(slot.Label)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dates = append(dates, DateSeats{
			Label:     slot.Label,
			Capacity:  slot.Capacity,
			Sold:      slot.Sold,
			Available: slot.Available,
			FewLeft:   slot.IsFewLeft(snapshot.LowSeatsLimit),
		})
	}
	return dates
}

func findDate(dates []DateSeats, label string) (DateSeats, bool) {
	for _, d := range dates {
		if domain.SameLabel(d.Label, label) {
			return d, true
		}
	}
	return DateSeats{}, false
}
