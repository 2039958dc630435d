package domain

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// addToCartParam параметр ссылки на товар в старом поле "enroll product link"
const addToCartParam = "add-to-cart"

// DateSlot одна дата (сессия) курса
// Label - произвольный текст, не обязательно дата
type DateSlot struct {
	Label      string
	Capacity   *int    // nil = базовая вместимость курса
	ButtonText *string // nil = текст кнопки по умолчанию
}

// EffectiveCapacity возвращает вместимость слота с учетом базовой вместимости курса
func (s DateSlot) EffectiveCapacity(base int) int {
	if s.Capacity == nil {
		return base
	}
	if *s.Capacity < 0 {
		return 0
	}
	return *s.Capacity
}

// CallToAction возвращает текст кнопки слота
func (s DateSlot) CallToAction() string {
	if s.ButtonText == nil || strings.TrimSpace(*s.ButtonText) == "" {
		return DefaultEnrollButtonText
	}
	return *s.ButtonText
}

// LegacyDateSlot дата из старого формата расписания (вебинары), stock хранится текстом
type LegacyDateSlot struct {
	Label string
	Stock string
}

// Course курс, продаваемый через витрину
type Course struct {
	ID      int64
	GroupID *int64
	Title   string

	RawState    string      // значение box_state как оно лежит в базе
	ManualState ManualState // разобранное значение

	LinkedProductID   *int64
	EnrollProductLink *string // старый способ привязки товара: ссылка с ?add-to-cart=ID

	BasePrice    *decimal.Decimal
	EnrollPrice  *decimal.Decimal
	BaseCapacity *int
	ButtonText   *string
	PriceFormat  *string

	Schedule       []DateSlot
	LegacySchedule []LegacyDateSlot

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductID возвращает ID связанного товара или 0, если товар не привязан
// Если linked_product_id не задан, пробует достать ID из старой ссылки add-to-cart
func (c *Course) ProductID() int64 {
	if c.LinkedProductID != nil && *c.LinkedProductID > 0 {
		return *c.LinkedProductID
	}
	if c.EnrollProductLink == nil || *c.EnrollProductLink == "" {
		return 0
	}

	u, err := url.Parse(*c.EnrollProductLink)
	if err != nil {
		return 0
	}
	id, err := strconv.ParseInt(u.Query().Get(addToCartParam), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// Capacity возвращает базовую вместимость курса
func (c *Course) Capacity(fallback int) int {
	if c.BaseCapacity != nil && *c.BaseCapacity > 0 {
		return *c.BaseCapacity
	}
	return fallback
}

// CoursePrice цена покупки курса
func (c *Course) CoursePrice() decimal.Decimal {
	if c.BasePrice == nil || c.BasePrice.IsZero() {
		return DefaultCoursePrice
	}
	return *c.BasePrice
}

// EnrollmentPrice цена участия в живом курсе
func (c *Course) EnrollmentPrice() decimal.Decimal {
	if c.EnrollPrice == nil || c.EnrollPrice.IsZero() {
		return DefaultEnrollPrice
	}
	return *c.EnrollPrice
}

// EffectiveSchedule возвращает расписание курса
// Слоты с пустой меткой пропускаются. Если нового расписания нет, используется старый формат,
// в котором нечисловой stock означает базовую вместимость.
func (c *Course) EffectiveSchedule() []DateSlot {
	slots := make([]DateSlot, 0, len(c.Schedule))
	for _, slot := range c.Schedule {
		if strings.TrimSpace(slot.Label) == "" {
			continue
		}
		slots = append(slots, slot)
	}
	if len(slots) > 0 {
		return slots
	}

	for _, legacy := range c.LegacySchedule {
		if strings.TrimSpace(legacy.Label) == "" {
			continue
		}
		slot := DateSlot{Label: legacy.Label}
		if stock, err := strconv.Atoi(strings.TrimSpace(legacy.Stock)); err == nil {
			slot.Capacity = &stock
		}
		slots = append(slots, slot)
	}
	return slots
}

// HasSchedule возвращает true, если у курса есть хотя бы одна дата
func (c *Course) HasSchedule() bool {
	return len(c.EffectiveSchedule()) > 0
}
