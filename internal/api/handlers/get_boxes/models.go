package get_boxes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CourseBoxService/internal/usecase/resolve_group"
)

// ToUseCaseRequest разбирает courseIds=1,2,3 с сохранением порядка
func ToUseCaseRequest(courseIDsStr string) (*resolve_group.Request, error) {
	if strings.TrimSpace(courseIDsStr) == "" {
		return nil, fmt.Errorf("courseIds is required")
	}

	parts := strings.Split(courseIDsStr, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid course id %q: %w", part, err)
		}
		ids = append(ids, id)
	}

	return &resolve_group.Request{CourseIDs: ids}, nil
}
