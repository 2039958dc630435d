// Package boxview JSON-представление боксов витрины
package boxview

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
	"github.com/m04kA/SMC-CourseBoxService/internal/usecase/resolve_group"
)

// SlotResponse дата в боксе записи
type SlotResponse struct {
	Label      string `json:"label"`
	Capacity   int    `json:"capacity"`
	Available  int    `json:"available"`
	SoldOut    bool   `json:"soldOut"`
	FewLeft    bool   `json:"fewLeft"`
	ButtonText string `json:"buttonText"`
}

// BoxResponse бокс курса, поле kind определяет набор заполненных полей
type BoxResponse struct {
	Kind      string `json:"kind"`
	CourseID  int64  `json:"courseId"`
	Title     string `json:"title"`
	ProductID int64  `json:"productId,omitempty"`

	// countdown
	LaunchAt *time.Time `json:"launchAt,omitempty"`

	// buy_course, enroll
	Price          *decimal.Decimal `json:"price,omitempty"`
	PriceLabel     string           `json:"priceLabel,omitempty"`
	ButtonText     string           `json:"buttonText,omitempty"`
	ButtonDisabled bool             `json:"buttonDisabled,omitempty"`
	Purchasable    *bool            `json:"purchasable,omitempty"`

	// enroll
	Slots        []SlotResponse `json:"slots,omitempty"`
	AllSoldOut   bool           `json:"allSoldOut,omitempty"`
	SeatsPending bool           `json:"seatsPending,omitempty"`
}

// BoxListResponse боксы нескольких курсов
type BoxListResponse struct {
	Items   []BoxResponse `json:"items"`
	Skipped []int64       `json:"skipped"`
	NoBox   []int64       `json:"noBox"`
}

// NewBoxResponse конвертирует доменный бокс в HTTP модель
func NewBoxResponse(box domain.BoxState) *BoxResponse {
	if box == nil {
		return nil
	}

	info := box.Info()
	resp := &BoxResponse{
		Kind:      string(box.Kind()),
		CourseID:  info.CourseID,
		Title:     info.Title,
		ProductID: info.ProductID,
	}

	switch b := box.(type) {
	case *domain.CountdownBox:
		launchAt := b.LaunchAt
		resp.LaunchAt = &launchAt

	case *domain.BuyCourseBox:
		price := b.Price
		purchasable := b.Purchasable
		resp.Price = &price
		resp.PriceLabel = b.PriceLabel
		resp.ButtonText = b.ButtonText
		resp.Purchasable = &purchasable

	case *domain.EnrollBox:
		price := b.Price
		purchasable := b.Purchasable
		resp.Price = &price
		resp.PriceLabel = b.PriceLabel
		resp.ButtonText = b.ButtonText
		resp.ButtonDisabled = b.ButtonDisabled
		resp.Purchasable = &purchasable
		resp.AllSoldOut = b.AllSoldOut
		resp.SeatsPending = b.SeatsPending
		resp.Slots = make([]SlotResponse, 0, len(b.Slots))
		for _, s := range b.Slots {
			resp.Slots = append(resp.Slots, SlotResponse{
				Label:      s.Label,
				Capacity:   s.Capacity,
				Available:  s.Available,
				SoldOut:    s.SoldOut,
				FewLeft:    s.FewLeft,
				ButtonText: s.ButtonText,
			})
		}
	}

	return resp
}

// NewBoxListResponse конвертирует результат групповой выборки
func NewBoxListResponse(result *resolve_group.Response) *BoxListResponse {
	resp := &BoxListResponse{
		Items:   make([]BoxResponse, 0, len(result.Items)),
		Skipped: make([]int64, 0, len(result.Skipped)),
		NoBox:   make([]int64, 0, len(result.NoBox)),
	}

	for _, item := range result.Items {
		if box := NewBoxResponse(item.Box); box != nil {
			resp.Items = append(resp.Items, *box)
		}
	}
	resp.Skipped = append(resp.Skipped, result.Skipped...)
	resp.NoBox = append(resp.NoBox, result.NoBox...)

	return resp
}
