package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourseBoxService/pkg/ptr"
)

func TestCourse_ProductID(t *testing.T) {
	tests := []struct {
		name   string
		course Course
		want   int64
	}{
		{"linked product", Course{LinkedProductID: ptr.Ptr(int64(42))}, 42},
		{"nothing linked", Course{}, 0},
		{"zero linked id falls back to link", Course{
			LinkedProductID:   ptr.Ptr(int64(0)),
			EnrollProductLink: ptr.Ptr("https://shop.example.com/checkout/?add-to-cart=77&quantity=1"),
		}, 77},
		{"link without add-to-cart", Course{EnrollProductLink: ptr.Ptr("https://shop.example.com/course")}, 0},
		{"link with garbage id", Course{EnrollProductLink: ptr.Ptr("/?add-to-cart=abc")}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.course.ProductID())
		})
	}
}

func TestCourse_EffectiveSchedule(t *testing.T) {
	t.Run("new schedule skips empty labels", func(t *testing.T) {
		c := Course{Schedule: []DateSlot{
			{Label: "2025-08-01", Capacity: ptr.Ptr(8)},
			{Label: "  "},
			{Label: "Autumn cohort"},
		}}

		slots := c.EffectiveSchedule()
		require.Len(t, slots, 2)
		assert.Equal(t, "2025-08-01", slots[0].Label)
		assert.Equal(t, "Autumn cohort", slots[1].Label)
		assert.True(t, c.HasSchedule())
	})

	t.Run("legacy schedule used when new one is empty", func(t *testing.T) {
		c := Course{
			Schedule: []DateSlot{{Label: ""}},
			LegacySchedule: []LegacyDateSlot{
				{Label: "June 5", Stock: "12"},
				{Label: "June 12", Stock: "lots"},
				{Label: "", Stock: "3"},
			},
		}

		slots := c.EffectiveSchedule()
		require.Len(t, slots, 2)
		assert.Equal(t, 12, slots[0].EffectiveCapacity(10))
		assert.Nil(t, slots[1].Capacity)
		assert.Equal(t, 10, slots[1].EffectiveCapacity(10))
	})

	t.Run("no schedule at all", func(t *testing.T) {
		c := Course{}
		assert.Empty(t, c.EffectiveSchedule())
		assert.False(t, c.HasSchedule())
	})
}

func TestDateSlot_Defaults(t *testing.T) {
	slot := DateSlot{Label: "x", Capacity: ptr.Ptr(-3), ButtonText: ptr.Ptr(" ")}
	assert.Equal(t, 0, slot.EffectiveCapacity(10))
	assert.Equal(t, DefaultEnrollButtonText, slot.CallToAction())

	slot = DateSlot{Label: "x", ButtonText: ptr.Ptr("Reserve")}
	assert.Equal(t, 10, slot.EffectiveCapacity(10))
	assert.Equal(t, "Reserve", slot.CallToAction())
}

func TestCourse_PricesAndCapacity(t *testing.T) {
	c := Course{}
	assert.True(t, DefaultCoursePrice.Equal(c.CoursePrice()))
	assert.True(t, DefaultEnrollPrice.Equal(c.EnrollmentPrice()))
	assert.Equal(t, 10, c.Capacity(10))

	price := decimal.RequireFromString("99.50")
	c = Course{BasePrice: &price, EnrollPrice: &price, BaseCapacity: ptr.Ptr(25)}
	assert.True(t, price.Equal(c.CoursePrice()))
	assert.True(t, price.Equal(c.EnrollmentPrice()))
	assert.Equal(t, 25, c.Capacity(10))
}

func TestProduct_IsLaunchingAfter(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	var missing *Product
	assert.False(t, missing.IsLaunchingAfter(now))
	assert.False(t, (&Product{}).IsLaunchingAfter(now))
	assert.False(t, (&Product{LaunchAt: ptr.Ptr(now)}).IsLaunchingAfter(now))
	assert.True(t, (&Product{LaunchAt: ptr.Ptr(now.Add(time.Hour))}).IsLaunchingAfter(now))
}

func TestLabels(t *testing.T) {
	assert.True(t, SameLabel("  August 1 ", "august 1"))
	assert.False(t, SameLabel("August 1", "August 2"))

	line := CompletedOrderLine{SelectedDateLabel: ptr.Ptr("2025-08-01 ")}
	assert.True(t, line.MatchesLabel("2025-08-01"))
	assert.False(t, CompletedOrderLine{}.MatchesLabel("2025-08-01"))
}

func TestFormatPrice(t *testing.T) {
	price := decimal.RequireFromString("1249.99")

	assert.Equal(t, "$1249.99", FormatPrice(DefaultPriceFormat, price))
	assert.Equal(t, "1249.99 EUR", FormatPrice("%.2f EUR", price))
	assert.Equal(t, "$1249.99", FormatPrice("no verb", price))
	assert.Equal(t, "$1249.99", FormatPrice("%d%%", price))
}
