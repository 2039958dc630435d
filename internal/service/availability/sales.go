package availability

import "github.com/m04kA/SMC-CourseBoxService/internal/domain"

// Sales проданные места одного товара, посчитанные за одно чтение журнала
// Все суммы внутри одного запроса берутся из одного Sales, поэтому строки не считаются дважды
type Sales struct {
	ProductID int64
	Total     int
	byLabel   map[string]int

	// Pending true, если журнал был недоступен и продажи приняты за ноль
	Pending bool
}

func emptySales(productID int64) *Sales {
	return &Sales{ProductID: productID, byLabel: map[string]int{}}
}

func (s *Sales) add(line domain.CompletedOrderLine) {
	s.Total += line.Quantity
	if line.SelectedDateLabel != nil {
		s.byLabel[domain.NormalizeLabel(*line.SelectedDateLabel)] += line.Quantity
	}
}

// Sold возвращает проданные места
// label == nil - все строки товара независимо от даты, иначе только строки этой даты
func (s *Sales) Sold(label *string) int {
	if s == nil {
		return 0
	}
	if label == nil {
		return s.Total
	}
	return s.byLabel[domain.NormalizeLabel(*label)]
}

// SoldForLabel возвращает проданные места на конкретную дату
func (s *Sales) SoldForLabel(label string) int {
	return s.Sold(&label)
}

// Available возвращает max(0, capacity - sold), отрицательная вместимость считается нулём
func Available(capacity, sold int) int {
	if capacity < 0 {
		capacity = 0
	}
	if sold >= capacity {
		return 0
	}
	return capacity - sold
}
