// Package boxstate выбирает бокс курса по снимку OfferingSnapshot.
//
// Правила проверяются в фиксированном порядке, побеждает первое совпавшее:
// SoldOut, Countdown, Waitlist, BuyCourse, Enroll. Пакет не выполняет ввод-вывод
// и не читает часы: всё, что зависит от времени, уже посчитано в снимке.
package boxstate

import (
	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
)

type rule struct {
	kind  domain.BoxKind
	match func(s *domain.OfferingSnapshot) bool
	build func(s *domain.OfferingSnapshot) domain.BoxState
}

// rules порядок важен
var rules = []rule{
	{
		kind: domain.BoxSoldOut,
		// ручной флаг главнее вычисленного остатка товара
		match: func(s *domain.OfferingSnapshot) bool { return s.ManualState == domain.StateSoldOut },
		build: buildSoldOut,
	},
	{
		kind: domain.BoxCountdown,
		match: func(s *domain.OfferingSnapshot) bool {
			return s.ManualState == domain.StateCountdown && s.ShowCountdown && s.LaunchAt != nil
		},
		build: buildCountdown,
	},
	{
		kind:  domain.BoxWaitlist,
		match: func(s *domain.OfferingSnapshot) bool { return s.ManualState == domain.StateWaitlist },
		build: buildWaitlist,
	},
	{
		kind:  domain.BoxBuyCourse,
		match: func(s *domain.OfferingSnapshot) bool { return s.ManualState == domain.StateBuy },
		build: buildBuyCourse,
	},
	{
		kind:  domain.BoxEnroll,
		match: func(s *domain.OfferingSnapshot) bool { return s.ManualState.IsEnrollOrDefault() },
		build: buildEnroll,
	},
}

// Resolve возвращает ровно один бокс или nil, если ни одно правило не подошло
// nil возможен для неизвестного ручного состояния и для countdown без будущей даты запуска
func Resolve(s *domain.OfferingSnapshot) domain.BoxState {
	if s == nil {
		return nil
	}
	for _, r := range rules {
		if r.match(s) {
			return r.build(s)
		}
	}
	return nil
}

// Order возвращает порядок проверки правил
func Order() []domain.BoxKind {
	kinds := make([]domain.BoxKind, 0, len(rules))
	for _, r := range rules {
		kinds = append(kinds, r.kind)
	}
	return kinds
}

func courseInfo(s *domain.OfferingSnapshot) domain.BoxCourse {
	return domain.BoxCourse{
		CourseID:  s.CourseID,
		Title:     s.Title,
		ProductID: s.ProductID,
	}
}

func buildSoldOut(s *domain.OfferingSnapshot) domain.BoxState {
	return &domain.SoldOutBox{BoxCourse: courseInfo(s)}
}

func buildCountdown(s *domain.OfferingSnapshot) domain.BoxState {
	return &domain.CountdownBox{BoxCourse: courseInfo(s), LaunchAt: *s.LaunchAt}
}

func buildWaitlist(s *domain.OfferingSnapshot) domain.BoxState {
	return &domain.WaitlistBox{BoxCourse: courseInfo(s)}
}

func buildBuyCourse(s *domain.OfferingSnapshot) domain.BoxState {
	buttonText := s.ButtonText
	if buttonText == "" {
		buttonText = domain.DefaultBuyButtonText
	}
	return &domain.BuyCourseBox{
		BoxCourse:   courseInfo(s),
		Price:       s.CoursePrice,
		PriceLabel:  domain.FormatPrice(s.PriceFormat, s.CoursePrice),
		ButtonText:  buttonText,
		Purchasable: s.HasProduct(),
	}
}

// buildEnroll распроданные даты остаются в списке, текст кнопки берётся у первой доступной даты
func buildEnroll(s *domain.OfferingSnapshot) domain.BoxState {
	box := &domain.EnrollBox{
		BoxCourse:    courseInfo(s),
		Price:        s.EnrollPrice,
		PriceLabel:   domain.FormatPrice(s.PriceFormat, s.EnrollPrice),
		Slots:        make([]domain.EnrollSlot, 0, len(s.Slots)),
		Purchasable:  s.HasProduct(),
		SeatsPending: s.SeatsPending,
	}

	for _, slot := range s.Slots {
		box.Slots = append(box.Slots, domain.EnrollSlot{
			Label:      slot.Label,
			Capacity:   slot.Capacity,
			Available:  slot.Available,
			SoldOut:    slot.IsSoldOut(),
			FewLeft:    slot.IsFewLeft(s.LowSeatsLimit),
			ButtonText: slot.ButtonText,
		})
		if box.ButtonText == "" && !slot.IsSoldOut() {
			box.ButtonText = slot.ButtonText
		}
	}

	if box.ButtonText == "" {
		box.ButtonText = domain.SoldOutButtonText
		box.ButtonDisabled = true
		box.AllSoldOut = true
	}

	return box
}
