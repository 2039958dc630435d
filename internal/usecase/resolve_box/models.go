package resolve_box

import (
	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
)

// stateNone метка метрики для курса без бокса
const stateNone = "none"

// Request модель запроса на выбор бокса курса
type Request struct {
	CourseID int64
}

// Response результат выбора бокса
type Response struct {
	CourseID int64
	Box      domain.BoxState          // nil = бокс не выбран
	Snapshot *domain.OfferingSnapshot // факты, по которым выбран бокс
}

// HasBox возвращает true, если бокс выбран
func (r *Response) HasBox() bool {
	return r != nil && r.Box != nil
}
