package seat_summary

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.CourseID <= 0 {
		return fmt.Errorf("%w: courseID must be positive", ErrInvalidInput)
	}
	if req.DateLabel != nil && strings.TrimSpace(*req.DateLabel) == "" {
		return fmt.Errorf("%w: date label must not be empty", ErrInvalidInput)
	}
	return nil
}
