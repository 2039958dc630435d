package boxview

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
	"github.com/m04kA/SMC-CourseBoxService/internal/usecase/resolve_group"
)

func course() domain.BoxCourse {
	return domain.BoxCourse{CourseID: 7, Title: "Go Bootcamp", ProductID: 70}
}

func TestNewBoxResponse_Nil(t *testing.T) {
	assert.Nil(t, NewBoxResponse(nil))
}

func TestNewBoxResponse_SoldOut(t *testing.T) {
	resp := NewBoxResponse(&domain.SoldOutBox{BoxCourse: course()})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"sold_out","courseId":7,"title":"Go Bootcamp","productId":70}`, string(raw))
}

func TestNewBoxResponse_Countdown(t *testing.T) {
	launch := time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)
	resp := NewBoxResponse(&domain.CountdownBox{BoxCourse: course(), LaunchAt: launch})

	require.NotNil(t, resp.LaunchAt)
	assert.Equal(t, "countdown", resp.Kind)
	assert.True(t, launch.Equal(*resp.LaunchAt))
	assert.Nil(t, resp.Price)
}

func TestNewBoxResponse_BuyCourse(t *testing.T) {
	resp := NewBoxResponse(&domain.BuyCourseBox{
		BoxCourse:   course(),
		Price:       decimal.RequireFromString("749.99"),
		PriceLabel:  "$749.99",
		ButtonText:  "Buy Course",
		Purchasable: false,
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind":"buy_course","courseId":7,"title":"Go Bootcamp","productId":70,
		"price":"749.99","priceLabel":"$749.99","buttonText":"Buy Course","purchasable":false
	}`, string(raw))
}

func TestNewBoxResponse_Enroll(t *testing.T) {
	resp := NewBoxResponse(&domain.EnrollBox{
		BoxCourse:  course(),
		Price:      decimal.RequireFromString("1249.99"),
		PriceLabel: "$1,249.99",
		Slots: []domain.EnrollSlot{
			{Label: "Jan 10", Capacity: 10, Available: 0, SoldOut: true, ButtonText: "Enroll Now"},
			{Label: "Feb 14", Capacity: 10, Available: 3, FewLeft: true, ButtonText: "Join"},
		},
		ButtonText:   "Join",
		Purchasable:  true,
		SeatsPending: true,
	})

	assert.Equal(t, "enroll", resp.Kind)
	require.Len(t, resp.Slots, 2)
	assert.True(t, resp.Slots[0].SoldOut)
	assert.Equal(t, 3, resp.Slots[1].Available)
	assert.True(t, resp.Slots[1].FewLeft)
	assert.Equal(t, "Join", resp.ButtonText)
	assert.False(t, resp.ButtonDisabled)
	assert.True(t, resp.SeatsPending)
	require.NotNil(t, resp.Purchasable)
	assert.True(t, *resp.Purchasable)
}

func TestNewBoxListResponse(t *testing.T) {
	resp := NewBoxListResponse(&resolve_group.Response{
		Items: []resolve_group.Item{
			{CourseID: 1, Box: &domain.WaitlistBox{BoxCourse: domain.BoxCourse{CourseID: 1}}},
			{CourseID: 2, Box: &domain.SoldOutBox{BoxCourse: domain.BoxCourse{CourseID: 2}}},
		},
		Skipped: []int64{3},
	})

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "waitlist", resp.Items[0].Kind)
	assert.Equal(t, "sold_out", resp.Items[1].Kind)
	assert.Equal(t, []int64{3}, resp.Skipped)
	assert.NotNil(t, resp.NoBox)
	assert.Empty(t, resp.NoBox)
}
