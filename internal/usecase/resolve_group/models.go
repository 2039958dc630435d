package resolve_group

import (
	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
)

// MaxCourses ограничение на количество курсов в одном запросе
const MaxCourses = 100

// Request модель запроса
// Задаётся либо GroupID, либо CourseIDs
type Request struct {
	GroupID   *int64
	CourseIDs []int64
}

// Item бокс одного курса группы
type Item struct {
	CourseID int64
	Box      domain.BoxState
	Snapshot *domain.OfferingSnapshot
}

// Response боксы в порядке входных курсов
// Курсы без бокса и курсы с ошибкой пропускаются
type Response struct {
	Items   []Item
	Skipped []int64 // курсы с ошибкой загрузки или расчёта
	NoBox   []int64 // курсы без подходящего бокса
}
