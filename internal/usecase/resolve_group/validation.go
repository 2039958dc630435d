package resolve_group

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.GroupID != nil {
		if *req.GroupID <= 0 {
			return fmt.Errorf("%w: groupID must be positive", ErrInvalidInput)
		}
		if len(req.CourseIDs) > 0 {
			return fmt.Errorf("%w: either groupID or courseIDs must be set, not both", ErrInvalidInput)
		}
		return nil
	}

	if len(req.CourseIDs) == 0 {
		return fmt.Errorf("%w: courseIDs are required", ErrInvalidInput)
	}
	if len(req.CourseIDs) > MaxCourses {
		return fmt.Errorf("%w: at most %d courses per request", ErrInvalidInput, MaxCourses)
	}
	for _, id := range req.CourseIDs {
		if id <= 0 {
			return fmt.Errorf("%w: courseID must be positive, got %d", ErrInvalidInput, id)
		}
	}

	return nil
}
