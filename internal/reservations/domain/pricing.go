package domain

import "fmt"

// BaseRatePerHour базовый тариф парковки (денежных единиц в час)
const BaseRatePerHour = 10.0

// ComputeCost вычисляет стоимость бронирования
// Чистая функция: cost = BaseRatePerHour * durationHours * (1 - discountPercent/100)
// Корректность длительности проверяется до вызова (валидация в usecase)
func ComputeCost(durationHours, discountPercent float64) float64 {
	return BaseRatePerHour * durationHours * (1 - discountPercent/100)
}

// MeetsMinHours проверяет, удовлетворяет ли длительность минимальному порогу акции
// Порог 0 означает отсутствие ограничения; граница включительная -
// длительность, равная порогу, проходит проверку
func MeetsMinHours(durationHours, minHours float64) bool {
	if minHours == 0 {
		return true
	}
	return durationHours >= minHours
}

// MinHoursNotMetError возвращается, когда длительность бронирования
// меньше минимального порога акции. Несёт значение порога для диагностики клиента
type MinHoursNotMetError struct {
	MinHours float64
}

func (e *MinHoursNotMetError) Error() string {
	return fmt.Sprintf("reservation does not meet promotion minimum hours: %g", e.MinHours)
}
