package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SlotAvailability доступность одной даты курса
// Для повторяющихся меток Capacity, Sold и Available общие для всех слотов с этой меткой
type SlotAvailability struct {
	Label      string
	Capacity   int
	Sold       int
	Available  int
	ButtonText string
}

// IsSoldOut возвращает true, если свободных мест не осталось
func (s SlotAvailability) IsSoldOut() bool {
	return s.Available <= 0
}

// IsFewLeft возвращает true, если мест осталось не больше limit
func (s SlotAvailability) IsFewLeft(limit int) bool {
	return s.Available > 0 && s.Available <= limit
}

// OfferingSnapshot набор фактов о курсе, по которым выбирается бокс
// Собирается заново на каждый запрос: ShowCountdown и доступность зависят от времени и журнала продаж
type OfferingSnapshot struct {
	CourseID    int64
	Title       string
	ManualState ManualState
	ProductID   int64 // 0 = товар не привязан

	CoursePrice decimal.Decimal
	EnrollPrice decimal.Decimal
	PriceFormat string
	ButtonText  string // переопределение текста кнопки на уровне курса, "" если не задано

	Slots []SlotAvailability // по одному на каждый слот расписания, в порядке расписания

	IsOutOfStock  bool
	LaunchAt      *time.Time
	ShowCountdown bool

	TotalCapacity  int
	TotalSold      int
	TotalAvailable int
	SeatsPending   bool // журнал продаж был недоступен, места показаны по полной вместимости

	LowSeatsLimit int
	EvaluatedAt   time.Time
}

// HasProduct возвращает true, если к курсу привязан товар
func (s *OfferingSnapshot) HasProduct() bool {
	return s.ProductID > 0
}
