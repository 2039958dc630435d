package models

import (
	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
)

// Request модели

// UpdateStateRequest запрос на смену ручного состояния бокса
type UpdateStateRequest struct {
	UserID   int64  `json:"userId"`
	CourseID int64  `json:"courseId"`
	State    string `json:"state"` // enroll | buy | waitlist | sold_out | countdown | "" (по умолчанию)
}

// ScheduleSlot дата в запросе на замену расписания
type ScheduleSlot struct {
	Label      string  `json:"label"`
	Capacity   *int    `json:"capacity,omitempty"`   // nil = базовая вместимость курса
	ButtonText *string `json:"buttonText,omitempty"` // nil = текст по умолчанию
}

// UpdateScheduleRequest запрос на замену расписания курса
type UpdateScheduleRequest struct {
	UserID   int64          `json:"userId"`
	CourseID int64          `json:"courseId"`
	Slots    []ScheduleSlot `json:"slots"`
}

// ToDomainSlots конвертирует даты запроса в доменную модель
func (r *UpdateScheduleRequest) ToDomainSlots() []domain.DateSlot {
	slots := make([]domain.DateSlot, 0, len(r.Slots))
	for _, s := range r.Slots {
		slots = append(slots, domain.DateSlot{
			Label:      s.Label,
			Capacity:   s.Capacity,
			ButtonText: s.ButtonText,
		})
	}
	return slots
}

// Response модели

// CourseStateResponse результат записи курса
// AppliedState может отличаться от RequestedState из-за автокоррекции enroll/waitlist
type CourseStateResponse struct {
	CourseID       int64  `json:"courseId"`
	RequestedState string `json:"requestedState"`
	AppliedState   string `json:"appliedState"`
	Corrected      bool   `json:"corrected"`
	SlotsCount     int    `json:"slotsCount"`
}
