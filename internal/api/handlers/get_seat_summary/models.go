package get_seat_summary

import (
	"github.com/m04kA/SMC-CourseBoxService/internal/usecase/seat_summary"
)

// DateSeatsResponse места на одну дату
type DateSeatsResponse struct {
	Label     string `json:"label"`
	Capacity  int    `json:"capacity"`
	Sold      int    `json:"sold"`
	Available int    `json:"available"`
	FewLeft   bool   `json:"fewLeft"`
}

// SeatSummaryResponse HTTP response model
type SeatSummaryResponse struct {
	CourseID       int64               `json:"courseId"`
	TotalCapacity  int                 `json:"totalCapacity"`
	TotalSold      int                 `json:"totalSold"`
	TotalAvailable int                 `json:"totalAvailable"`
	SeatsPending   bool                `json:"seatsPending"`
	Dates          []DateSeatsResponse `json:"dates"`
	Date           *DateSeatsResponse  `json:"date,omitempty"`
}

// ToUseCaseRequest формирует запрос, пустой date означает все даты
func ToUseCaseRequest(courseID int64, dateLabel string) *seat_summary.Request {
	req := &seat_summary.Request{CourseID: courseID}
	if dateLabel != "" {
		req.DateLabel = &dateLabel
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *seat_summary.Response) *SeatSummaryResponse {
	out := &SeatSummaryResponse{
		CourseID:       resp.CourseID,
		TotalCapacity:  resp.TotalCapacity,
		TotalSold:      resp.TotalSold,
		TotalAvailable: resp.TotalAvailable,
		SeatsPending:   resp.SeatsPending,
		Dates:          make([]DateSeatsResponse, 0, len(resp.Dates)),
	}

	for _, d := range resp.Dates {
		out.Dates = append(out.Dates, toDateSeats(d))
	}
	if resp.Date != nil {
		date := toDateSeats(*resp.Date)
		out.Date = &date
	}

	return out
}

func toDateSeats(d seat_summary.DateSeats) DateSeatsResponse {
	return DateSeatsResponse{
		Label:     d.Label,
		Capacity:  d.Capacity,
		Sold:      d.Sold,
		Available: d.Available,
		FewLeft:   d.FewLeft,
	}
}
