package domain

import "strings"

// NormalizeLabel приводит метку даты к виду для сравнения: без пробелов по краям, в нижнем регистре
// Метки сравниваются только как строки, без разбора дат
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// SameLabel сравнивает две метки без учёта регистра и пробелов по краям
func SameLabel(a, b string) bool {
	return NormalizeLabel(a) == NormalizeLabel(b)
}
