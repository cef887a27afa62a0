package create_reservation

import "fmt"

// validateRequest валидирует входные данные запроса
// Отклоняет нулевую и отрицательную длительность до обращения к ценообразованию
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ParkingSpot == "" {
		return fmt.Errorf("%w: parkingSpot is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return ErrInvalidTimePeriod
	}

	return nil
}
