package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Значения по умолчанию для курса
const (
	DefaultCapacity         = 10
	DefaultLowSeatsLimit    = 5
	DefaultPriceFormat      = "$%.2f"
	DefaultEnrollButtonText = "Enroll Now"
	DefaultBuyButtonText    = "Buy Course"
	SoldOutButtonText       = "Sold Out"
	DefaultLedgerTimeout    = 2 * time.Second
)

// Цены по умолчанию, если у курса они не заданы
var (
	DefaultCoursePrice = decimal.RequireFromString("749.99")
	DefaultEnrollPrice = decimal.RequireFromString("1249.99")
)

// OrderStatusCompleted статус завершённого заказа - только такие строки учитываются как проданные места
const OrderStatusCompleted = "completed"
