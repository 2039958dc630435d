package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BoxKind вариант бокса на витрине
type BoxKind string

const (
	BoxSoldOut   BoxKind = "sold_out"
	BoxCountdown BoxKind = "countdown"
	BoxWaitlist  BoxKind = "waitlist"
	BoxBuyCourse BoxKind = "buy_course"
	BoxEnroll    BoxKind = "enroll"
)

// BoxState выбранный бокс курса
// Закрытый набор вариантов: реализуют только типы этого пакета
type BoxState interface {
	Kind() BoxKind
	Info() BoxCourse
	sealed()
}

// BoxCourse общие для всех боксов данные курса
type BoxCourse struct {
	CourseID  int64
	Title     string
	ProductID int64
}

// Info возвращает данные курса
func (c BoxCourse) Info() BoxCourse { return c }

func (BoxCourse) sealed() {}

// SoldOutBox курс распродан (выставлено оператором)
type SoldOutBox struct {
	BoxCourse
}

func (*SoldOutBox) Kind() BoxKind { return BoxSoldOut }

// CountdownBox отсчёт до запуска курса
type CountdownBox struct {
	BoxCourse
	LaunchAt time.Time
}

func (*CountdownBox) Kind() BoxKind { return BoxCountdown }

// WaitlistBox запись в лист ожидания
type WaitlistBox struct {
	BoxCourse
}

func (*WaitlistBox) Kind() BoxKind { return BoxWaitlist }

// BuyCourseBox покупка записи курса
type BuyCourseBox struct {
	BoxCourse
	Price       decimal.Decimal
	PriceLabel  string
	ButtonText  string
	Purchasable bool // false, если товар не привязан
}

func (*BuyCourseBox) Kind() BoxKind { return BoxBuyCourse }

// EnrollSlot дата в боксе записи
// Распроданные даты остаются в списке и отображаются неактивными
type EnrollSlot struct {
	Label      string
	Capacity   int
	Available  int
	SoldOut    bool
	FewLeft    bool
	ButtonText string
}

// EnrollBox запись на живой курс с выбором даты
type EnrollBox struct {
	BoxCourse
	Price          decimal.Decimal
	PriceLabel     string
	Slots          []EnrollSlot
	ButtonText     string
	ButtonDisabled bool
	AllSoldOut     bool
	Purchasable    bool
	SeatsPending   bool
}

func (*EnrollBox) Kind() BoxKind { return BoxEnroll }
