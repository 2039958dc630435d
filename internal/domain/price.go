package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPrice форматирует цену по printf-шаблону курса (например "$%.2f")
// Некорректный шаблон заменяется шаблоном по умолчанию
func FormatPrice(format string, price decimal.Decimal) string {
	if strings.Count(format, "%")-2*strings.Count(format, "%%") != 1 {
		format = DefaultPriceFormat
	}

	out := fmt.Sprintf(format, price.InexactFloat64())
	if strings.Contains(out, "%!") {
		return fmt.Sprintf(DefaultPriceFormat, price.InexactFloat64())
	}
	return out
}
