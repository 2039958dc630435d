package domain

import "strings"

// ManualState ручное состояние бокса, выставленное оператором
type ManualState string

const (
	StateDefault   ManualState = ""
	StateEnroll    ManualState = "enroll"
	StateBuy       ManualState = "buy"
	StateWaitlist  ManualState = "waitlist"
	StateSoldOut   ManualState = "sold_out"
	StateCountdown ManualState = "countdown"
)

// legacyStates старые значения box_state, которые ещё встречаются в базе
var legacyStates = map[string]ManualState{
	"enroll-course": StateEnroll,
	"buy-course":    StateBuy,
	"soldout":       StateSoldOut,
	"sold-out":      StateSoldOut,
}

// ParseManualState приводит сохранённое значение к ManualState
// Неизвестные непустые значения возвращаются как есть - резолвер для них не выберет бокс
func ParseManualState(raw string) ManualState {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return StateDefault
	}
	if state, ok := legacyStates[normalized]; ok {
		return state
	}

	switch state := ManualState(normalized); state {
	case StateEnroll, StateBuy, StateWaitlist, StateSoldOut, StateCountdown:
		return state
	}
	return ManualState(strings.TrimSpace(raw))
}

// IsKnown возвращает true для пустого значения и пяти известных состояний
func (s ManualState) IsKnown() bool {
	switch s {
	case StateDefault, StateEnroll, StateBuy, StateWaitlist, StateSoldOut, StateCountdown:
		return true
	}
	return false
}

// IsEnrollOrDefault возвращает true для enroll и для незаданного состояния
func (s ManualState) IsEnrollOrDefault() bool {
	return s == StateDefault || s == StateEnroll
}

// CorrectManualState применяет правило автокоррекции при записи курса:
//   - enroll (или пустое) при пустом расписании превращается в waitlist;
//   - waitlist превращается обратно в enroll, когда расписание стало непустым.
//
// hadSchedule - было ли расписание непустым до изменения, hasSchedule - после.
func CorrectManualState(state ManualState, hadSchedule, hasSchedule bool) ManualState {
	if state.IsEnrollOrDefault() && !hasSchedule {
		return StateWaitlist
	}
	if state == StateWaitlist && !hadSchedule && hasSchedule {
		return StateEnroll
	}
	return state
}
