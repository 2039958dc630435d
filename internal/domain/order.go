package domain

import "time"

// CompletedOrderLine строка завершённого заказа - запись журнала продаж
type CompletedOrderLine struct {
	OrderID           int64
	ProductID         int64
	Quantity          int
	SelectedDateLabel *string // задаётся только при покупке конкретной даты
	CompletedAt       time.Time
}

// MatchesLabel проверяет, что строка куплена на указанную дату
func (l CompletedOrderLine) MatchesLabel(label string) bool {
	return l.SelectedDateLabel != nil && SameLabel(*l.SelectedDateLabel, label)
}
