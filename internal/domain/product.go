package domain

import "time"

// Product товар в каталоге магазина
type Product struct {
	ID       int64
	Name     string
	InStock  bool       // вычисляется каталогом по собственному счётчику остатков
	LaunchAt *time.Time // nil = дата запуска не задана
}

// IsLaunchingAfter возвращает true, если дата запуска строго позже now
func (p *Product) IsLaunchingAfter(now time.Time) bool {
	return p != nil && p.LaunchAt != nil && p.LaunchAt.After(now)
}
