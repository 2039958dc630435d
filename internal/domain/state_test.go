package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseManualState(t *testing.T) {
	tests := []struct {
		raw  string
		want ManualState
	}{
		{"", StateDefault},
		{"   ", StateDefault},
		{"enroll", StateEnroll},
		{"enroll-course", StateEnroll},
		{"Buy-Course", StateBuy},
		{"buy", StateBuy},
		{" waitlist ", StateWaitlist},
		{"soldout", StateSoldOut},
		{"sold_out", StateSoldOut},
		{"COUNTDOWN", StateCountdown},
		{"draft", ManualState("draft")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseManualState(tt.raw))
		})
	}
}

func TestManualState_IsKnown(t *testing.T) {
	assert.True(t, StateDefault.IsKnown())
	assert.True(t, StateCountdown.IsKnown())
	assert.False(t, ManualState("draft").IsKnown())
}

func TestCorrectManualState(t *testing.T) {
	tests := []struct {
		name        string
		state       ManualState
		hadSchedule bool
		hasSchedule bool
		want        ManualState
	}{
		{"enroll without dates becomes waitlist", StateEnroll, true, false, StateWaitlist},
		{"default without dates becomes waitlist", StateDefault, false, false, StateWaitlist},
		{"enroll with dates stays", StateEnroll, false, true, StateEnroll},
		{"waitlist gets first dates", StateWaitlist, false, true, StateEnroll},
		{"explicit waitlist with existing dates stays", StateWaitlist, true, true, StateWaitlist},
		{"waitlist without dates stays", StateWaitlist, true, false, StateWaitlist},
		{"buy without dates stays", StateBuy, false, false, StateBuy},
		{"sold out is not touched", StateSoldOut, false, true, StateSoldOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CorrectManualState(tt.state, tt.hadSchedule, tt.hasSchedule))
		})
	}
}
